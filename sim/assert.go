//go:build !simrelease

package sim

import "fmt"

const assertionsEnabled = true

// assert panics with the formatted message when cond is false.
func assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("sim: "+format, args...))
	}
}
