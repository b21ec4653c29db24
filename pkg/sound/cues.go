// Package sound synthesizes the page's audio: a chime when the proposal
// is accepted, a rustle when a gift is unwrapped and a soft looping
// melody. Everything is generated with beep oscillators, so no audio
// files ship with the program.
package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies a one-shot sound.
type Cue int

const (
	CueNone Cue = iota
	// CueAccept plays when the proposal is accepted.
	CueAccept
	// CueUnwrap plays when a gift is opened.
	CueUnwrap
)

func (c Cue) String() string {
	switch c {
	case CueAccept:
		return "accept"
	case CueUnwrap:
		return "unwrap"
	default:
		return "none"
	}
}

// AllCues lists every playable cue.
var AllCues = []Cue{CueAccept, CueUnwrap}

const (
	chimeNoteDuration  = 110 * time.Millisecond
	chimeTailDuration  = 600 * time.Millisecond
	unwrapDuration     = 320 * time.Millisecond
	unwrapSparkleDelay = 120 * time.Millisecond
	melodyNoteDuration = 420 * time.Millisecond
)

// C major arpeggio, C6 E6 G6 and a ringing C7.
var chimeNotes = []float64{1046.50, 1318.51, 1567.98}

const chimeTail = 2093.00

// Stream returns a fresh streamer for c at rate.
func Stream(c Cue, rate beep.SampleRate) (beep.Streamer, error) {
	switch c {
	case CueAccept:
		return acceptChime(rate), nil
	case CueUnwrap:
		return unwrapRustle(rate), nil
	default:
		return nil, fmt.Errorf("unknown sound cue %d", int(c))
	}
}

func acceptChime(rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(chimeNotes)+1)
	for _, f := range chimeNotes {
		parts = append(parts, beep.Mix(
			newVolume(note(f, chimeNoteDuration, WaveSine, rate), 0.7),
			newVolume(note(f*2, chimeNoteDuration, WaveSine, rate), 0.2),
		))
	}
	parts = append(parts, beep.Mix(
		newVolume(note(chimeTail, chimeTailDuration, WaveSine, rate), 0.7),
		newVolume(note(chimeTail*1.5, chimeTailDuration, WaveTriangle, rate), 0.15),
	))
	return newVolume(beep.Seq(parts...), 0.8)
}

func unwrapRustle(rate beep.SampleRate) beep.Streamer {
	rustle := NewEnvelope(
		NewOscillator(0, unwrapDuration, WaveNoise, rate),
		unwrapDuration, 20*time.Millisecond, unwrapDuration/2, rate,
	)
	sparkle := beep.Seq(
		beep.Silence(rate.N(unwrapSparkleDelay)),
		newVolume(note(1760, 90*time.Millisecond, WaveSine, rate), 0.5),
		newVolume(note(2637, 140*time.Millisecond, WaveSine, rate), 0.4),
	)
	return beep.Mix(newVolume(rustle, 0.35), sparkle)
}

// melody is one bar-pair of a gentle waltz in F major; the music player
// loops it.
var melody = []struct {
	lead, bass float64
}{
	{698.46, 174.61}, {880.00, 174.61}, {1046.50, 174.61},
	{932.33, 233.08}, {880.00, 233.08}, {783.99, 233.08},
	{698.46, 261.63}, {659.25, 261.63}, {783.99, 261.63},
	{698.46, 174.61}, {523.25, 174.61}, {698.46, 174.61},
}

// Melody returns one pass of the background melody.
func Melody(rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(melody))
	for _, n := range melody {
		parts = append(parts, beep.Mix(
			newVolume(note(n.lead, melodyNoteDuration, WaveTriangle, rate), 0.45),
			newVolume(note(n.bass, melodyNoteDuration, WaveSine, rate), 0.35),
		))
	}
	return beep.Seq(parts...)
}
