package audio

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Engine plays tones through the system audio device.
// A disabled engine (no device, or sound turned off) accepts every call and
// does nothing, so callers never need to branch on audio availability.
type Engine struct {
	ctx        *oto.Context
	sampleRate int
	volume     float64

	mu         sync.Mutex
	background *oto.Player
}

// NewEngine opens the audio device with a mono signed 16-bit stream.
// On failure it returns a disabled engine together with the error, so the
// caller can log a warning and keep going without sound.
func NewEngine(sampleRate int, volume float64) (*Engine, error) {
	e := &Engine{sampleRate: sampleRate, volume: volume}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return e, fmt.Errorf("audio: cannot open device: %w", err)
	}
	<-ready
	e.ctx = ctx
	return e, nil
}

// NewDisabledEngine returns an engine that silently drops all playback.
func NewDisabledEngine() *Engine {
	return &Engine{}
}

// Enabled reports whether the engine has a working audio device.
func (e *Engine) Enabled() bool {
	return e.ctx != nil
}

// Play starts tone playback in the background and returns immediately.
func (e *Engine) Play(tone Tone) {
	if e.ctx == nil || len(tone) == 0 {
		return
	}
	go e.playAndWait(tone)
}

// PlayBlocking plays the tone and returns only after playback finishes.
// Used for stingers that deliberately suspend the game loop.
func (e *Engine) PlayBlocking(tone Tone) {
	if e.ctx == nil || len(tone) == 0 {
		return
	}
	e.playAndWait(tone)
}

// PlayBackground starts a long-running track, stopping any previous one.
// The track is handed over as an immutable buffer; no further coordination
// with the simulation is needed.
func (e *Engine) PlayBackground(tone Tone) {
	if e.ctx == nil || len(tone) == 0 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.background != nil {
		e.background.Close()
	}
	player := e.ctx.NewPlayer(bytes.NewReader(tone.Bytes()))
	player.SetVolume(e.volume)
	player.Play()
	e.background = player
}

// StopBackground stops the current background track, if any.
func (e *Engine) StopBackground() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.background != nil {
		e.background.Close()
		e.background = nil
	}
}

// Close stops all playback and releases the device.
func (e *Engine) Close() {
	e.StopBackground()
	if e.ctx != nil {
		e.ctx.Suspend()
	}
}

func (e *Engine) playAndWait(tone Tone) {
	player := e.ctx.NewPlayer(bytes.NewReader(tone.Bytes()))
	player.SetVolume(e.volume)
	player.Play()
	for player.IsPlaying() {
		time.Sleep(5 * time.Millisecond)
	}
	player.Close()
}
