package sim

// Store owns the double-buffered color and momentum grids. The current
// generation is the last completed physics step; the next generation is the
// write target of the step in progress. Both channels always swap together.
type Store struct {
	width, height int

	currColor []Color
	nextColor []Color
	currMom   []Momentum
	nextMom   []Momentum

	// nextClean is set by ClearNext and consumed by the first write into the
	// next generation or by a physics step.
	nextClean bool
}

// NewStore allocates a zeroed store for a width x height grid.
func NewStore(width, height int) *Store {
	size := width * height
	return &Store{
		width: width, height: height,
		currColor: make([]Color, size),
		nextColor: make([]Color, size),
		currMom:   make([]Momentum, size),
		nextMom:   make([]Momentum, size),
		nextClean: true,
	}
}

// Width returns the number of columns.
func (s *Store) Width() int { return s.width }

// Height returns the number of rows.
func (s *Store) Height() int { return s.height }

// InBounds reports whether (row, col) addresses a grid cell.
func (s *Store) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < s.height && col < s.width
}

func (s *Store) index(row, col int) int {
	return row*s.width + col
}

// Read returns the current color at (row, col), or OutOfBounds outside the grid.
func (s *Store) Read(row, col int) Color {
	if !s.InBounds(row, col) {
		return OutOfBounds
	}
	return s.currColor[s.index(row, col)]
}

// ReadMomentum returns the current momentum at (row, col), or zero outside
// the grid.
func (s *Store) ReadMomentum(row, col int) Momentum {
	if !s.InBounds(row, col) {
		return Momentum{}
	}
	return s.currMom[s.index(row, col)]
}

// Write sets the next-generation color at (row, col). Callers must have
// bounds-checked the coordinate.
func (s *Store) Write(row, col int, c Color) {
	if !s.InBounds(row, col) {
		assert(false, "write (%d,%d) outside %dx%d grid", row, col, s.width, s.height)
		return
	}
	s.nextColor[s.index(row, col)] = c
	s.nextClean = false
}

// WriteMomentum sets the next-generation momentum at (row, col). Callers must
// have bounds-checked the coordinate.
func (s *Store) WriteMomentum(row, col int, m Momentum) {
	if !s.InBounds(row, col) {
		assert(false, "momentum write (%d,%d) outside %dx%d grid", row, col, s.width, s.height)
		return
	}
	s.nextMom[s.index(row, col)] = m
	s.nextClean = false
}

// ClearNext empties the next generation ahead of a physics step.
func (s *Store) ClearNext() {
	for i := range s.nextColor {
		s.nextColor[i] = Empty
	}
	for i := range s.nextMom {
		s.nextMom[i] = Momentum{}
	}
	s.nextClean = true
}

// Swap makes next the current generation and recycles the old current
// generation as the next write target.
func (s *Store) Swap() {
	s.currColor, s.nextColor = s.nextColor, s.currColor
	s.currMom, s.nextMom = s.nextMom, s.currMom
	s.nextClean = false
}

// Launch places a projectile with momentum m at (row, col) in the current
// generation. It does nothing and returns false unless the cell reads Empty.
func (s *Store) Launch(row, col int, m Momentum) bool {
	if s.Read(row, col) != Empty {
		return false
	}
	idx := s.index(row, col)
	s.currColor[idx] = Projectile
	s.currMom[idx] = m
	return true
}

// CurrentColors exposes the current color generation in row-major order.
// The slice is owned by the store and must not be modified.
func (s *Store) CurrentColors() []Color {
	return s.currColor
}

// FindProjectile returns the first projectile cell of the current generation
// in row-major order.
func (s *Store) FindProjectile() (row, col int, ok bool) {
	for i, c := range s.currColor {
		if c == Projectile {
			return i / s.width, i % s.width, true
		}
	}
	return 0, 0, false
}

// Clone returns an independent deep copy of the store.
func (s *Store) Clone() *Store {
	c := &Store{
		width: s.width, height: s.height,
		currColor: append([]Color(nil), s.currColor...),
		nextColor: append([]Color(nil), s.nextColor...),
		currMom:   append([]Momentum(nil), s.currMom...),
		nextMom:   append([]Momentum(nil), s.nextMom...),
		nextClean: s.nextClean,
	}
	return c
}

// ProjectileCount returns the number of projectile cells in the current
// generation.
func (s *Store) ProjectileCount() int {
	n := 0
	for _, c := range s.currColor {
		if c == Projectile {
			n++
		}
	}
	return n
}
