package sim

import "fmt"

// FrameResult describes what a single AdvanceFrame call did.
type FrameResult struct {
	Frame    uint64
	Launched bool
	Stepped  bool
}

// Stats accumulates counters over the lifetime of a Simulation.
type Stats struct {
	Frames          uint64 `json:"frames"`
	Ticks           uint64 `json:"ticks"`
	Launches        uint64 `json:"launches"`
	IgnoredLaunches uint64 `json:"ignored_launches"`
	Vanished        uint64 `json:"vanished"`
}

// Simulation drives a Store at a fixed number of render frames per physics
// tick. It is not safe for concurrent use.
type Simulation struct {
	cfg     Config
	store   *Store
	stepper Stepper

	frame         uint64
	pendingLaunch bool
	stats         Stats
}

// NewSimulation validates cfg and allocates its store. A nil stepper selects
// the CPU stepper.
func NewSimulation(cfg Config, stepper Stepper) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if stepper == nil {
		stepper = CPUStepper{Gravity: cfg.Gravity}
	}
	return &Simulation{
		cfg:     cfg,
		store:   NewStore(cfg.Width, cfg.Height),
		stepper: stepper,
	}, nil
}

// Config returns the configuration the simulation was built with.
func (sm *Simulation) Config() Config { return sm.cfg }

// Store returns the underlying grid store.
func (sm *Simulation) Store() *Store { return sm.store }

// StepperName reports which stepper runs the physics ticks.
func (sm *Simulation) StepperName() string { return sm.stepper.Name() }

// Stats returns a snapshot of the simulation counters.
func (sm *Simulation) Stats() Stats { return sm.stats }

// LaunchProjectile requests a launch at the spawn cell. The request is applied
// at the start of the next AdvanceFrame, before any physics tick.
func (sm *Simulation) LaunchProjectile() {
	sm.pendingLaunch = true
}

// AdvanceFrame runs one render iteration: apply a pending launch, then on
// every TickDivisor-th frame clear next, step and swap.
func (sm *Simulation) AdvanceFrame() (FrameResult, error) {
	sm.frame++
	sm.stats.Frames++
	res := FrameResult{Frame: sm.frame}

	if sm.pendingLaunch {
		sm.pendingLaunch = false
		if sm.store.Launch(sm.cfg.SpawnRow, sm.cfg.SpawnCol, sm.cfg.LaunchMomentum) {
			sm.stats.Launches++
			res.Launched = true
		} else {
			sm.stats.IgnoredLaunches++
		}
	}

	if sm.frame%uint64(sm.cfg.TickDivisor) != 0 {
		return res, nil
	}
	before := sm.store.ProjectileCount()
	sm.store.ClearNext()
	if err := sm.stepper.Step(sm.store); err != nil {
		return res, fmt.Errorf("physics tick %d: %w", sm.stats.Ticks+1, err)
	}
	sm.store.Swap()
	sm.stats.Ticks++
	if after := sm.store.ProjectileCount(); after < before {
		sm.stats.Vanished += uint64(before - after)
	}
	res.Stepped = true
	return res, nil
}

// CurrentColorBuffer returns the generation to present this frame. The slice
// must not be modified.
func (sm *Simulation) CurrentColorBuffer() []Color {
	return sm.store.CurrentColors()
}
