package world

import "momentum/sim"

// PlayerColor is translucent green.
const PlayerColor sim.Color = 0x8000FF00

// Rect is an axis-aligned block of cells anchored at its top-left corner.
type Rect struct {
	Row, Col int
	W, H     int
}

// Layer is a single-generation ARGB buffer the size of the grid, used for
// artwork that does not take part in the physics step.
type Layer struct {
	width, height int
	pixels        []sim.Color
}

// NewLayer allocates a transparent layer.
func NewLayer(width, height int) *Layer {
	return &Layer{width: width, height: height, pixels: make([]sim.Color, width*height)}
}

// Pixels returns the layer contents in row-major order.
func (l *Layer) Pixels() []sim.Color { return l.pixels }

// At returns the color at (row, col), or sim.OutOfBounds outside the layer.
func (l *Layer) At(row, col int) sim.Color {
	if row < 0 || col < 0 || row >= l.height || col >= l.width {
		return sim.OutOfBounds
	}
	return l.pixels[row*l.width+col]
}

// FillRect paints r with c, skipping cells that fall outside the layer.
func (l *Layer) FillRect(r Rect, c sim.Color) {
	for row := r.Row; row < r.Row+r.H; row++ {
		if row < 0 || row >= l.height {
			continue
		}
		for col := r.Col; col < r.Col+r.W; col++ {
			if col < 0 || col >= l.width {
				continue
			}
			l.pixels[row*l.width+col] = c
		}
	}
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// moveRect moves r by one rect-size step in the given direction, keeping it
// entirely inside a width x height grid.
func moveRect(r Rect, dRow, dCol, width, height int) Rect {
	r.Row = clampCoord(r.Row+dRow*r.H, 0, height-r.H)
	r.Col = clampCoord(r.Col+dCol*r.W, 0, width-r.W)
	return r
}
