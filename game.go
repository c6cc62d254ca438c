package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"momentum/sim"
	"momentum/world"
)

// Game adapts a world to Ebiten's Update/Draw loop.
type Game struct {
	world *world.World
	scale int

	playerImg     *ebiten.Image
	projectileImg *ebiten.Image
	pixelScratch  []byte

	lastFrame       sim.FrameResult
	lastAdvanceTime time.Duration

	audioCtx     *audio.Context
	altitudeTone *altitudeAudioStream
	altitudePlay *audio.Player
	launchPlayer *audio.Player
}

// newGame wires a world to the window frontend and starts optional audio.
func newGame(w *world.World, scale int) *Game {
	cfg := w.Simulation().Config()
	if scale < 1 {
		scale = 1
	}
	g := &Game{
		world:         w,
		scale:         scale,
		playerImg:     ebiten.NewImage(cfg.Width, cfg.Height),
		projectileImg: ebiten.NewImage(cfg.Width, cfg.Height),
	}
	if *enableAudioFlag {
		g.initAudio(cfg.Height)
	}
	return g
}

// initAudio starts the altitude tone and loads the optional launch sample.
// Failures are logged and leave the game silent.
func (g *Game) initAudio(height int) {
	ctx := audio.NewContext(audioSampleRate)
	g.audioCtx = ctx
	g.altitudeTone = newAltitudeAudioStream(audioSampleRate, height)
	if player, err := ctx.NewPlayer(g.altitudeTone); err != nil {
		log.Printf("Audio player creation failed: %v", err)
	} else {
		g.altitudePlay = player
		g.altitudePlay.SetBufferSize(audioPlayerBufferLatency)
		g.altitudePlay.Play()
	}
	if *launchSoundFlag == "" {
		return
	}
	pcm, err := loadLaunchSample(audioSampleRate, *launchSoundFlag)
	if err != nil {
		log.Printf("Launch sound disabled: %v", err)
		return
	}
	g.launchPlayer = ctx.NewPlayerFromBytes(pcm)
}

// Update collects input, advances the world one frame and refreshes audio.
func (g *Game) Update() error {
	if quitRequested() {
		return ebiten.Termination
	}
	in := collectInput()
	start := time.Now()
	res, err := g.world.Frame(in)
	if err != nil {
		return err
	}
	g.lastAdvanceTime = time.Since(start)
	g.lastFrame = res

	if res.Launched {
		g.playLaunchSound()
	}
	if g.altitudeTone != nil {
		row, _, ok := g.world.Simulation().Store().FindProjectile()
		g.altitudeTone.SetRow(row, ok)
	}
	return nil
}

// playLaunchSound restarts the launch sample from the beginning.
func (g *Game) playLaunchSound() {
	if g.launchPlayer == nil {
		return
	}
	if err := g.launchPlayer.SetPosition(0); err != nil {
		log.Printf("Launch sound rewind failed: %v", err)
		return
	}
	g.launchPlayer.Play()
}

// Close stops audio playback.
func (g *Game) Close() {
	if g.altitudePlay != nil {
		_ = g.altitudePlay.Close()
	}
	if g.launchPlayer != nil {
		_ = g.launchPlayer.Close()
	}
}
