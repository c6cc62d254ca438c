//go:build !opencl

package sim

import "errors"

// ErrOpenCLUnavailable is returned when the binary was built without the
// opencl tag.
var ErrOpenCLUnavailable = errors.New("OpenCL support is not enabled; rebuild with -tags opencl")

type OpenCLStepper struct{}

func NewOpenCLStepper(width, height int, gravity int16) (*OpenCLStepper, error) {
	return nil, ErrOpenCLUnavailable
}

func (s *OpenCLStepper) Step(*Store) error { return ErrOpenCLUnavailable }

func (s *OpenCLStepper) Name() string { return "opencl" }

func (s *OpenCLStepper) DeviceName() string { return "" }

func (s *OpenCLStepper) Close() {}
