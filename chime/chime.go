// Package chime plays a short audio cue when a search finishes: two rising
// notes for Found, one low note for Unreachable.
package chime

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/katalvlaran/gridpath/search"
)

// SampleRate used by Player.
const SampleRate = beep.SampleRate(44100)

// ErrUnknownOutcome indicates a search.Outcome with no associated cue.
var ErrUnknownOutcome = errors.New("chime: unknown outcome")

// note is one sine tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[search.Outcome][]note{
	search.Found:       {{659.25, 90 * time.Millisecond}, {987.77, 160 * time.Millisecond}}, // E5, B5
	search.Unreachable: {{196.00, 280 * time.Millisecond}},                                   // G3
}

// volume is the cue gain as a linear factor.
const volume = 0.4

// Tone returns the finite streamer for outcome at sample rate sr.
func Tone(sr beep.SampleRate, outcome search.Outcome) (beep.Streamer, error) {
	notes, ok := cues[outcome]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownOutcome, outcome)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("chime: tone %.2f Hz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.dur), sine))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(volume),
	}, nil
}

// Duration returns the total length of the cue for outcome, or 0 if none.
func Duration(outcome search.Outcome) time.Duration {
	var d time.Duration
	for _, n := range cues[outcome] {
		d += n.dur
	}
	return d
}

// Player feeds cues to the system speaker through a shared mixer.
// A disabled Player accepts every call and plays nothing.
type Player struct {
	mu      sync.Mutex
	enabled bool
	mixer   *beep.Mixer
}

// NewPlayer returns a Player. With enabled=false no audio device is opened.
func NewPlayer(enabled bool) (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}}
	if !enabled {
		return p, nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("chime: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.enabled = true

	return p, nil
}

// Enabled reports whether the player drives a real speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues the cue for outcome. ErrUnknownOutcome is returned even by a
// disabled Player.
func (p *Player) Play(outcome search.Outcome) error {
	if _, ok := cues[outcome]; !ok {
		return fmt.Errorf("%w: %v", ErrUnknownOutcome, outcome)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return nil
	}
	s, err := Tone(SampleRate, outcome)
	if err != nil {
		return err
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()

	return nil
}

// Notify plays the cue for res; it matches the driver's OnFinish hook.
// A failure is logged, never returned.
func (p *Player) Notify(res search.Result) {
	if err := p.Play(res.Outcome); err != nil {
		Logger().Warn("chime: cue not played", "outcome", res.Outcome.String(), "err", err)
	}
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.enabled = false
}
