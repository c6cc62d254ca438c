// Package world couples the projectile simulation with the player rectangle
// and the per-frame input sequence shared by every frontend.
package world

import (
	"momentum/sim"
)

// Direction is a one-step player move.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Input is the set of edge-triggered actions collected during one frame.
type Input struct {
	Fire  bool
	Moves []Direction
}

// World owns a simulation and the player layer drawn over it.
type World struct {
	sim    *sim.Simulation
	player Rect
	art    *Layer
}

// New builds a world around a simulation. The player starts as a 1x1 rect
// one row above the bottom-left corner.
func New(s *sim.Simulation) *World {
	cfg := s.Config()
	player := Rect{W: 1, H: 1}
	player.Row = clampCoord(cfg.Height-1-player.H, 0, cfg.Height-player.H)
	w := &World{
		sim:    s,
		player: player,
		art:    NewLayer(cfg.Width, cfg.Height),
	}
	w.art.FillRect(w.player, PlayerColor)
	return w
}

// Simulation returns the wrapped simulation.
func (w *World) Simulation() *sim.Simulation { return w.sim }

// Player returns the player rectangle.
func (w *World) Player() Rect { return w.player }

// PlayerLayer returns the player artwork for this frame.
func (w *World) PlayerLayer() []sim.Color { return w.art.Pixels() }

// Projectiles returns the projectile generation for this frame.
func (w *World) Projectiles() []sim.Color { return w.sim.CurrentColorBuffer() }

// Frame applies in, then advances the simulation by one render frame.
func (w *World) Frame(in Input) (sim.FrameResult, error) {
	cfg := w.sim.Config()
	if len(in.Moves) > 0 {
		w.art.FillRect(w.player, sim.Empty)
		for _, d := range in.Moves {
			dRow, dCol := d.delta()
			w.player = moveRect(w.player, dRow, dCol, cfg.Width, cfg.Height)
		}
		w.art.FillRect(w.player, PlayerColor)
	}
	if in.Fire {
		w.sim.LaunchProjectile()
	}
	return w.sim.AdvanceFrame()
}

func (d Direction) delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}
