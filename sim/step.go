package sim

import "math"

// Stepper advances a store by one physics tick, reading the current
// generation and filling the cleared next generation. It does not swap.
type Stepper interface {
	Step(s *Store) error
	Name() string
}

// CPUStepper runs Step on the calling goroutine.
type CPUStepper struct {
	Gravity int16
}

// Step implements Stepper.
func (c CPUStepper) Step(s *Store) error {
	Step(s, c.Gravity)
	return nil
}

// Name implements Stepper.
func (CPUStepper) Name() string { return "cpu" }

// Step computes the next generation of s from its current generation.
// ClearNext must have been called since the last write into next.
//
// Only the row component of momentum moves a projectile; DCol is carried
// forward unchanged. A projectile whose predicted row leaves the grid is not
// written and so vanishes.
func Step(s *Store, gravity int16) {
	assert(s.nextClean, "step without ClearNext")
	s.nextClean = false
	for row := 0; row < s.height; row++ {
		for col := 0; col < s.width; col++ {
			m := s.ReadMomentum(row, col)
			m.DRow = addSaturated(m.DRow, gravity)
			if s.Read(row, col) != Projectile {
				continue
			}
			dst := row + int(m.DRow)
			if s.Read(dst, col) == OutOfBounds {
				continue
			}
			s.Write(dst, col, Projectile)
			s.WriteMomentum(dst, col, m)
		}
	}
}

// addSaturated returns a+b clamped to the int16 range.
func addSaturated(a, b int16) int16 {
	sum := int32(a) + int32(b)
	if sum > math.MaxInt16 {
		return math.MaxInt16
	}
	if sum < math.MinInt16 {
		return math.MinInt16
	}
	return int16(sum)
}
