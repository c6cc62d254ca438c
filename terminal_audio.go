package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// terminalBlip plays a short sine blip through beep's speaker. It is only
// used by the terminal frontend, which never opens an Ebiten audio context.
type terminalBlip struct {
	sampleRate beep.SampleRate
}

func newTerminalBlip() (*terminalBlip, error) {
	sampleRate := beep.SampleRate(audioSampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &terminalBlip{sampleRate: sampleRate}, nil
}

// Play queues one blip on the speaker mixer.
func (b *terminalBlip) Play() {
	sine, err := generators.SineTone(b.sampleRate, terminalBlipHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(b.sampleRate.N(terminalBlipDuration), sine))
}

func (b *terminalBlip) Close() {
	speaker.Close()
}
