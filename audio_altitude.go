package main

import (
	"math"
	"sync"
)

// altitudeAudioStream is an endless 16-bit stereo sine whose pitch rises as
// the projectile climbs. It is silent while no projectile is airborne.
type altitudeAudioStream struct {
	mu         sync.Mutex
	sampleRate float64
	height     int
	freq       float64
	target     float64
	gain       float64
	phase      float64
}

func newAltitudeAudioStream(sampleRate, height int) *altitudeAudioStream {
	return &altitudeAudioStream{
		sampleRate: float64(sampleRate),
		height:     height,
		freq:       toneLowHz,
		target:     toneLowHz,
	}
}

// SetRow retunes the tone for a projectile at row, or mutes it when the grid
// holds no projectile.
func (s *altitudeAudioStream) SetRow(row int, airborne bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !airborne || s.height <= 1 {
		s.gain = 0
		return
	}
	altitude := 1 - float64(row)/float64(s.height-1)
	s.target = toneLowHz + altitude*(toneHighHz-toneLowHz)
	s.gain = toneGain
}

func (s *altitudeAudioStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	// Ensure we generate whole stereo frames (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < frameBytes; i += 4 {
		// Glide towards the target pitch to avoid clicks between ticks.
		s.freq += (s.target - s.freq) * 0.001
		s.phase += 2 * math.Pi * s.freq / s.sampleRate
		if s.phase > 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
		v := int16(math.Sin(s.phase) * s.gain * 32767)
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *altitudeAudioStream) Close() error {
	return nil
}
