package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// loadLaunchSample decodes the WAV at path into 16-bit stereo PCM resampled
// to sampleRate, ready for audio.Context.NewPlayerFromBytes.
func loadLaunchSample(sampleRate int, path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded %q: %w", path, err)
	}
	if len(decoded) < 4 {
		return nil, fmt.Errorf("wav %q has no audio data", path)
	}
	return decoded[:len(decoded)-len(decoded)%4], nil
}
