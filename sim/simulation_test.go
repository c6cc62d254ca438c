package sim

import (
	"errors"
	"reflect"
	"testing"
)

func newTestSimulation(t *testing.T, cfg Config, stepper Stepper) *Simulation {
	t.Helper()
	s, err := NewSimulation(cfg, stepper)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return s
}

func TestAdvanceFrameTickDivisor(t *testing.T) {
	s := newTestSimulation(t, DefaultConfig(), nil)
	s.LaunchProjectile()
	if _, err := s.AdvanceFrame(); err != nil {
		t.Fatal(err)
	}
	snapshot := append([]Color(nil), s.CurrentColorBuffer()...)

	for i := 0; i < 2; i++ {
		res, err := s.AdvanceFrame()
		if err != nil {
			t.Fatal(err)
		}
		if res.Stepped {
			t.Fatalf("Expected no physics step on frame %d", res.Frame)
		}
	}
	if got := s.Stats().Ticks; got != 0 {
		t.Errorf("Expected 0 ticks after 3 frames, got %d", got)
	}
	if !reflect.DeepEqual(snapshot, s.CurrentColorBuffer()) {
		t.Error("Expected buffer unchanged between physics ticks")
	}

	res, err := s.AdvanceFrame()
	if err != nil {
		t.Fatal(err)
	}
	if !res.Stepped || res.Frame != 4 {
		t.Errorf("Expected step on frame 4, got %+v", res)
	}
	if got := s.Stats().Ticks; got != 1 {
		t.Errorf("Expected 1 tick after 4 frames, got %d", got)
	}
	row, _, ok := s.Store().FindProjectile()
	if !ok || row != DefaultHeight-1-11 {
		t.Errorf("Expected projectile at row %d, got %d ok=%v", DefaultHeight-1-11, row, ok)
	}
}

func TestAdvanceFrameStepCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickDivisor = 8
	s := newTestSimulation(t, cfg, nil)
	for i := 0; i < 64; i++ {
		if _, err := s.AdvanceFrame(); err != nil {
			t.Fatal(err)
		}
	}
	st := s.Stats()
	if st.Frames != 64 || st.Ticks != 8 {
		t.Errorf("Expected 64 frames and 8 ticks, got %d and %d", st.Frames, st.Ticks)
	}
}

func TestLaunchAppliedBeforeStep(t *testing.T) {
	cfg := Config{Width: 10, Height: 10, Gravity: 1, TickDivisor: 1, LaunchMomentum: Momentum{DRow: -3}, SpawnRow: 9, SpawnCol: 5}
	s := newTestSimulation(t, cfg, nil)
	s.LaunchProjectile()
	res, err := s.AdvanceFrame()
	if err != nil {
		t.Fatal(err)
	}
	if !res.Launched || !res.Stepped {
		t.Fatalf("Expected launch and step in the same frame, got %+v", res)
	}
	if c := s.Store().Read(7, 5); c != Projectile {
		t.Errorf("Expected projectile already advanced to row 7, got %#08x", uint32(c))
	}
	if c := s.Store().Read(9, 5); c != Empty {
		t.Errorf("Expected spawn cell vacated, got %#08x", uint32(c))
	}
}

func TestLaunchIgnoredWhileSpawnOccupied(t *testing.T) {
	s := newTestSimulation(t, DefaultConfig(), nil)
	s.LaunchProjectile()
	if res, _ := s.AdvanceFrame(); !res.Launched {
		t.Fatal("Expected first launch to fire")
	}
	s.LaunchProjectile()
	if res, _ := s.AdvanceFrame(); res.Launched {
		t.Error("Expected second launch onto occupied spawn to be ignored")
	}
	st := s.Stats()
	if st.Launches != 1 || st.IgnoredLaunches != 1 {
		t.Errorf("Expected 1 launch and 1 ignored, got %d and %d", st.Launches, st.IgnoredLaunches)
	}
	if n := s.Store().ProjectileCount(); n != 1 {
		t.Errorf("Expected a single projectile, got %d", n)
	}
}

func TestLaunchRequestIsConsumed(t *testing.T) {
	s := newTestSimulation(t, DefaultConfig(), nil)
	s.LaunchProjectile()
	s.LaunchProjectile()
	s.AdvanceFrame()
	s.AdvanceFrame()
	if st := s.Stats(); st.Launches != 1 || st.IgnoredLaunches != 0 {
		t.Errorf("Expected one launch per request edge, got %+v", st)
	}
}

func TestNewSimulationRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickDivisor = 3
	if _, err := NewSimulation(cfg, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

type failingStepper struct{ err error }

func (f failingStepper) Step(*Store) error { return f.err }
func (failingStepper) Name() string { return "failing" }

func TestAdvanceFramePropagatesStepperError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickDivisor = 1
	boom := errors.New("device lost")
	s := newTestSimulation(t, cfg, failingStepper{err: boom})
	if s.StepperName() != "failing" {
		t.Errorf("Expected stepper name failing, got %q", s.StepperName())
	}
	if _, err := s.AdvanceFrame(); !errors.Is(err, boom) {
		t.Errorf("Expected wrapped stepper error, got %v", err)
	}
	if got := s.Stats().Ticks; got != 0 {
		t.Errorf("Expected failed tick not to be counted, got %d", got)
	}
}

func TestDefaultStepperIsCPU(t *testing.T) {
	s := newTestSimulation(t, DefaultConfig(), nil)
	if s.StepperName() != "cpu" {
		t.Errorf("Expected cpu stepper, got %q", s.StepperName())
	}
}
