package main

import "time"

// Presentation and runtime constants. Simulation defaults live in sim.Config.
const (
	windowTitle              = "momentum"
	pixelScale               = 10
	defaultTPS               = 60
	keyRepeatDelay           = 15
	keyRepeatInterval        = 4
	audioSampleRate          = 48000
	audioPlayerBufferLatency = 40 * time.Millisecond
	toneLowHz                = 220.0
	toneHighHz               = 880.0
	toneGain                 = 0.15
	terminalFrameDelay       = 15 * time.Millisecond
	terminalBlipHz           = 660.0
	terminalBlipDuration     = 60 * time.Millisecond
)
