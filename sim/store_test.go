package sim

import (
	"reflect"
	"testing"
)

func TestNewStoreIsEmpty(t *testing.T) {
	s := NewStore(8, 5)
	if s.Width() != 8 || s.Height() != 5 {
		t.Fatalf("Expected 8x5 store, got %dx%d", s.Width(), s.Height())
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 8; col++ {
			if c := s.Read(row, col); c != Empty {
				t.Errorf("Expected empty cell at (%d,%d), got %#08x", row, col, uint32(c))
			}
			if m := s.ReadMomentum(row, col); m != (Momentum{}) {
				t.Errorf("Expected zero momentum at (%d,%d), got %+v", row, col, m)
			}
		}
	}
}

func TestOutOfBoundsSentinel(t *testing.T) {
	if OutOfBounds == Empty {
		t.Fatal("OutOfBounds must differ from Empty")
	}
	if OutOfBounds == Projectile {
		t.Fatal("OutOfBounds must differ from Projectile")
	}

	s := NewStore(4, 3)
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			if s.Read(row, col) == OutOfBounds {
				t.Errorf("Expected in-bounds read at (%d,%d)", row, col)
			}
		}
	}

	outside := []struct{ row, col int }{
		{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {-1, -1}, {3, 4}, {100, 2}, {1, -100},
	}
	for _, tc := range outside {
		if c := s.Read(tc.row, tc.col); c != OutOfBounds {
			t.Errorf("Expected OutOfBounds at (%d,%d), got %#08x", tc.row, tc.col, uint32(c))
		}
		if m := s.ReadMomentum(tc.row, tc.col); m != (Momentum{}) {
			t.Errorf("Expected zero momentum at (%d,%d), got %+v", tc.row, tc.col, m)
		}
	}
}

func TestLaunchWritesCurrentGeneration(t *testing.T) {
	s := NewStore(10, 10)
	m := Momentum{DRow: -3, DCol: 2}
	if !s.Launch(9, 5, m) {
		t.Fatal("Expected launch onto empty cell to succeed")
	}
	if c := s.Read(9, 5); c != Projectile {
		t.Errorf("Expected projectile at spawn, got %#08x", uint32(c))
	}
	if got := s.ReadMomentum(9, 5); got != m {
		t.Errorf("Expected momentum %+v, got %+v", m, got)
	}
	for i, c := range s.nextColor {
		if c != Empty {
			t.Fatalf("Expected next generation untouched, found %#08x at %d", uint32(c), i)
		}
	}
}

func TestLaunchOnOccupiedCellIsNoop(t *testing.T) {
	s := NewStore(10, 10)
	s.Launch(9, 5, Momentum{DRow: -3})
	before := s.Clone()

	if s.Launch(9, 5, Momentum{DRow: -7, DCol: 1}) {
		t.Error("Expected launch onto occupied cell to be ignored")
	}
	if !reflect.DeepEqual(before.currColor, s.currColor) {
		t.Error("Expected current colors unchanged after ignored launch")
	}
	if !reflect.DeepEqual(before.currMom, s.currMom) {
		t.Error("Expected current momentum unchanged after ignored launch")
	}
}

func TestLaunchOutOfBoundsIsIgnored(t *testing.T) {
	s := NewStore(4, 4)
	if s.Launch(4, 0, Momentum{DRow: -1}) {
		t.Error("Expected launch outside the grid to be ignored")
	}
	if n := s.ProjectileCount(); n != 0 {
		t.Errorf("Expected no projectiles, got %d", n)
	}
}

func TestSwapMovesBothChannels(t *testing.T) {
	s := NewStore(3, 3)
	s.Launch(0, 0, Momentum{DRow: 4})
	s.ClearNext()
	s.Write(2, 1, Projectile)
	s.WriteMomentum(2, 1, Momentum{DRow: 1, DCol: -1})
	s.Swap()

	if c := s.Read(2, 1); c != Projectile {
		t.Errorf("Expected projectile at (2,1) after swap, got %#08x", uint32(c))
	}
	if m := s.ReadMomentum(2, 1); m != (Momentum{DRow: 1, DCol: -1}) {
		t.Errorf("Expected swapped momentum, got %+v", m)
	}
	if c := s.Read(0, 0); c != Empty {
		t.Errorf("Expected old generation to be the write target, got %#08x at (0,0)", uint32(c))
	}
	// The recycled generation still holds the old projectile until cleared.
	if s.nextColor[0] != Projectile || s.nextMom[0] != (Momentum{DRow: 4}) {
		t.Errorf("Expected previous current generation in next slot, got %#08x %+v", uint32(s.nextColor[0]), s.nextMom[0])
	}
}

func TestClearNext(t *testing.T) {
	s := NewStore(5, 5)
	for i := range s.nextColor {
		s.nextColor[i] = Projectile
		s.nextMom[i] = Momentum{DRow: 3, DCol: 3}
	}
	s.ClearNext()
	for i := range s.nextColor {
		if s.nextColor[i] != Empty {
			t.Fatalf("Expected empty next color at %d, got %#08x", i, uint32(s.nextColor[i]))
		}
		if s.nextMom[i] != (Momentum{}) {
			t.Fatalf("Expected zero next momentum at %d, got %+v", i, s.nextMom[i])
		}
	}
	if !s.nextClean {
		t.Error("Expected next generation to be marked clean")
	}
}

func TestWriteOutOfBoundsPanics(t *testing.T) {
	if !assertionsEnabled {
		t.Skip("assertions compiled out")
	}
	s := NewStore(3, 3)
	cases := map[string]func(){
		"color":    func() { s.Write(3, 0, Projectile) },
		"momentum": func() { s.WriteMomentum(0, -1, Momentum{DRow: 1}) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected panic on out-of-bounds write")
				}
			}()
			fn()
		})
	}
}

func TestFindProjectile(t *testing.T) {
	s := NewStore(6, 6)
	if _, _, ok := s.FindProjectile(); ok {
		t.Fatal("Expected no projectile in empty store")
	}
	s.Launch(4, 2, Momentum{})
	s.Launch(1, 5, Momentum{})
	row, col, ok := s.FindProjectile()
	if !ok || row != 1 || col != 5 {
		t.Errorf("Expected first projectile at (1,5), got (%d,%d) ok=%v", row, col, ok)
	}
	if n := s.ProjectileCount(); n != 2 {
		t.Errorf("Expected 2 projectiles, got %d", n)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewStore(4, 4)
	s.Launch(3, 2, Momentum{DRow: -1})
	c := s.Clone()
	c.Launch(0, 0, Momentum{})
	if s.Read(0, 0) != Empty {
		t.Error("Expected clone writes not to reach the original")
	}
	if c.Read(3, 2) != Projectile {
		t.Error("Expected clone to carry the original projectile")
	}
}
