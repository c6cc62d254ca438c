package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"momentum/sim"
	"momentum/world"
)

// runTerminal drives w from a tcell screen until Escape, q or Ctrl-C. Each
// terminal cell shows two grid rows using an upper half block.
func runTerminal(w *world.World) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	var blip *terminalBlip
	if *enableAudioFlag {
		if blip, err = newTerminalBlip(); err != nil {
			// Non-fatal, the terminal frontend can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer blip.Close()
		}
	}

	done := make(chan struct{})
	defer close(done)
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(terminalFrameDelay)
	defer ticker.Stop()

	var in world.Input
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !applyTerminalKey(ev, &in) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			res, err := w.Frame(in)
			if err != nil {
				return err
			}
			in = world.Input{}
			if res.Launched && blip != nil {
				blip.Play()
			}
			drawTerminal(screen, w)
		}
	}
}

// applyTerminalKey folds a key event into in. It returns false when the key
// asks to quit.
func applyTerminalKey(ev *tcell.EventKey, in *world.Input) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		in.Moves = append(in.Moves, world.Up)
	case tcell.KeyDown:
		in.Moves = append(in.Moves, world.Down)
	case tcell.KeyLeft:
		in.Moves = append(in.Moves, world.Left)
	case tcell.KeyRight:
		in.Moves = append(in.Moves, world.Right)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			in.Fire = true
		case 'k':
			in.Moves = append(in.Moves, world.Up)
		case 'j':
			in.Moves = append(in.Moves, world.Down)
		case 'h':
			in.Moves = append(in.Moves, world.Left)
		case 'l':
			in.Moves = append(in.Moves, world.Right)
		}
	}
	return true
}

func drawTerminal(screen tcell.Screen, w *world.World) {
	cfg := w.Simulation().Config()
	player := w.PlayerLayer()
	projectiles := w.Projectiles()
	cols, rows := screen.Size()

	screen.Clear()
	for ty := 0; ty < rows && ty*2 < cfg.Height; ty++ {
		top := ty * 2
		bottom := top + 1
		for x := 0; x < cols && x < cfg.Width; x++ {
			fg := terminalColor(compositeCell(player[top*cfg.Width+x], projectiles[top*cfg.Width+x]))
			bg := tcell.ColorBlack
			if bottom < cfg.Height {
				bg = terminalColor(compositeCell(player[bottom*cfg.Width+x], projectiles[bottom*cfg.Width+x]))
			}
			screen.SetContent(x, ty, '▀', nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
	screen.Show()
}

// compositeCell returns the visible color of a cell, projectile over player.
func compositeCell(player, projectile sim.Color) sim.Color {
	if projectile != sim.Empty {
		return projectile
	}
	return player
}

// terminalColor flattens an ARGB color onto a black background.
func terminalColor(c sim.Color) tcell.Color {
	a := int32(c.Alpha())
	if a == 0 {
		return tcell.ColorBlack
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r)*a/255, int32(g)*a/255, int32(b)*a/255)
}
