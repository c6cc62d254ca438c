package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"momentum/sim"
)

// Draw uploads the player and projectile layers and blends them onto the
// screen, projectile on top.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Clear()
	g.uploadLayer(g.playerImg, g.world.PlayerLayer())
	g.uploadLayer(g.projectileImg, g.world.Projectiles())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.playerImg, op)
	screen.DrawImage(g.projectileImg, op)

	if *debugFlag {
		g.drawDebugOverlay(screen)
	}
}

// uploadLayer converts an ARGB layer into premultiplied RGBA and writes it
// into img.
func (g *Game) uploadLayer(img *ebiten.Image, layer []sim.Color) {
	g.pixelScratch = sim.PixelBytes(g.pixelScratch, layer)
	img.WritePixels(g.pixelScratch)
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	s := g.world.Simulation()
	stats := s.Stats()
	cfg := s.Config()
	projectile := "none"
	if row, col, ok := s.Store().FindProjectile(); ok {
		m := s.Store().ReadMomentum(row, col)
		projectile = fmt.Sprintf("(%d,%d) m=(%d,%d)", row, col, m.DRow, m.DCol)
	}
	msg := fmt.Sprintf("FPS: %.1f TPS: %.1f\nFrame %d tick %d (1/%d, %s)\nLaunches %d ignored %d vanished %d\nProjectile %s\nAdvance: %.3f ms",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		stats.Frames, stats.Ticks, cfg.TickDivisor, s.StepperName(),
		stats.Launches, stats.IgnoredLaunches, stats.Vanished,
		projectile,
		g.lastAdvanceTime.Seconds()*1000)
	ebitenutil.DebugPrint(screen, msg)
}

// Layout reports the logical screen size used by Ebiten; each cell covers a
// scale x scale block so the debug overlay stays legible.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.world.Simulation().Config()
	return cfg.Width * g.scale, cfg.Height * g.scale
}
