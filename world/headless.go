package world

import (
	"fmt"
	"time"

	"momentum/sim"
)

// Summary describes a completed headless run.
type Summary struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	TickDivisor int           `json:"tick_divisor"`
	Stepper     string        `json:"stepper"`
	Stats       sim.Stats     `json:"stats"`
	Airborne    bool          `json:"airborne"`
	FinalRow    int           `json:"final_row,omitempty"`
	FinalCol    int           `json:"final_col,omitempty"`
	Elapsed     time.Duration `json:"elapsed_ns"`
}

// RunHeadless advances w for frames render frames without presenting them.
// When fireEvery is positive a launch is requested on frame 1 and every
// fireEvery frames after it.
func RunHeadless(w *World, frames, fireEvery int) (Summary, error) {
	start := time.Now()
	for i := 0; i < frames; i++ {
		in := Input{Fire: fireEvery > 0 && i%fireEvery == 0}
		if _, err := w.Frame(in); err != nil {
			return Summary{}, fmt.Errorf("frame %d: %w", i+1, err)
		}
	}
	cfg := w.sim.Config()
	sum := Summary{
		Width:       cfg.Width,
		Height:      cfg.Height,
		TickDivisor: cfg.TickDivisor,
		Stepper:     w.sim.StepperName(),
		Stats:       w.sim.Stats(),
		Elapsed:     time.Since(start),
	}
	sum.FinalRow, sum.FinalCol, sum.Airborne = w.sim.Store().FindProjectile()
	return sum, nil
}
