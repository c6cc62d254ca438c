package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"momentum/world"
)

// moveKeys maps each player direction to its vi key and arrow key.
var moveKeys = []struct {
	dir  world.Direction
	keys []ebiten.Key
}{
	{world.Up, []ebiten.Key{ebiten.KeyK, ebiten.KeyArrowUp}},
	{world.Down, []ebiten.Key{ebiten.KeyJ, ebiten.KeyArrowDown}},
	{world.Left, []ebiten.Key{ebiten.KeyH, ebiten.KeyArrowLeft}},
	{world.Right, []ebiten.Key{ebiten.KeyL, ebiten.KeyArrowRight}},
}

// collectInput reads this frame's fire edge and player moves.
func collectInput() world.Input {
	in := world.Input{Fire: inpututil.IsKeyJustPressed(ebiten.KeySpace)}
	for _, mk := range moveKeys {
		for _, k := range mk.keys {
			if keyRepeated(k) {
				in.Moves = append(in.Moves, mk.dir)
				break
			}
		}
	}
	return in
}

// keyRepeated reports a press on the first frame a key is held and then at
// a fixed interval once the repeat delay has passed.
func keyRepeated(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

// quitRequested reports whether Escape was pressed this frame.
func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
