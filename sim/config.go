package sim

import (
	"errors"
	"fmt"
	"math"
)

// Default simulation parameters.
const (
	DefaultWidth       = 100
	DefaultHeight      = 100
	DefaultGravity     = 1
	DefaultTickDivisor = 4
	DefaultLaunchDRow  = -12
	DefaultLaunchDCol  = 0
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds the tunable constants of a simulation run.
type Config struct {
	Width, Height int

	// Gravity is added to DRow of every cell on each physics tick.
	Gravity int16

	// TickDivisor is the number of render frames per physics tick. It must be
	// a power of two.
	TickDivisor int

	LaunchMomentum Momentum
	SpawnRow       int
	SpawnCol       int
}

// DefaultConfig returns the stock configuration: a 100x100 grid spawning at
// the bottom centre with an upward launch of 12 cells per tick.
func DefaultConfig() Config {
	return Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Gravity:        DefaultGravity,
		TickDivisor:    DefaultTickDivisor,
		LaunchMomentum: Momentum{DRow: DefaultLaunchDRow, DCol: DefaultLaunchDCol},
		SpawnRow:       DefaultHeight - 1,
		SpawnCol:       DefaultWidth / 2,
	}
}

// Validate reports the first constraint the config violates.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	// Predicted rows are row+DRow; keep both inside int16 range so momentum
	// cannot wrap before the projectile leaves the grid.
	if c.Width > math.MaxInt16 || c.Height > math.MaxInt16 {
		return fmt.Errorf("%w: grid %dx%d exceeds %d cells per side", ErrInvalidConfig, c.Width, c.Height, math.MaxInt16)
	}
	if c.TickDivisor < 1 || c.TickDivisor&(c.TickDivisor-1) != 0 {
		return fmt.Errorf("%w: tick divisor %d is not a power of two", ErrInvalidConfig, c.TickDivisor)
	}
	if c.SpawnRow < 0 || c.SpawnRow >= c.Height || c.SpawnCol < 0 || c.SpawnCol >= c.Width {
		return fmt.Errorf("%w: spawn (%d,%d) outside %dx%d grid", ErrInvalidConfig, c.SpawnRow, c.SpawnCol, c.Width, c.Height)
	}
	return nil
}
