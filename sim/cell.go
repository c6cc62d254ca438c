package sim

// Color is a 32-bit ARGB cell value with alpha in the high byte.
type Color uint32

// Cell colors understood by the simulation core. OutOfBounds is only ever
// returned by Read and is never stored in a buffer.
const (
	Empty       Color = 0x00000000
	OutOfBounds Color = 0x00000001
	Projectile  Color = 0xFFFF0000 // opaque red
)

// Momentum is a cell velocity in grid cells per physics tick. Positive DRow
// points down.
type Momentum struct {
	DRow int16
	DCol int16
}

// Alpha returns the alpha channel of c.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// RGB returns the red, green and blue channels of c.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}
