// Package evasion decides where the decline button runs to, how fast it
// gets there, and what it shouts while doing so.
package evasion

import (
	"math/rand"

	"github.com/Mandrupnicolai/ValentinePage/pkg/types"
)

const (
	// DefaultMargin keeps the button this far from the viewport edges.
	DefaultMargin = 10.0

	speedBase  = 1.0
	speedStep  = 0.04
	speedFloor = 0.35
)

// phrases escalate with each attempt; the last one repeats forever.
var phrases = []string{
	"Wait—!",
	"Hey!",
	"That was close!",
	"Are you sure?!",
	"My heart😱",
	"Rethink this!",
	"Choose love!",
}

// Phrases returns a copy of the escalation list in order.
func Phrases() []string {
	out := make([]string, len(phrases))
	copy(out, phrases)
	return out
}

// EscalationPhrase returns the phrase for the n-th attempt (1-based),
// saturating at the final phrase. Counts below 1 are treated as 1.
func EscalationPhrase(n int) string {
	if n < 1 {
		n = 1
	}
	if n > len(phrases) {
		n = len(phrases)
	}
	return phrases[n-1]
}

// TransitionSpeed is the duration in seconds of the n-th escape move:
// 1.0s shrinking by 0.04s per attempt, never below 0.35s.
func TransitionSpeed(n int) float64 {
	speed := speedBase - float64(n)*speedStep
	if speed < speedFloor {
		return speedFloor
	}
	return speed
}

// ChooseEscapePosition picks a new top-left corner for an element of size
// target so that it stays inside viewport with margin on every side.
// x is drawn from [margin, vw-tw-margin) and y from [margin, vh-th-margin);
// rng.Float64 never returns 1, so neither upper bound is reached.
// When the viewport cannot fit the element plus margins on an axis, that
// axis collapses to margin.
func ChooseEscapePosition(rng *rand.Rand, target, viewport types.Size, margin float64) types.Point {
	spanX := viewport.Width - target.Width - 2*margin
	spanY := viewport.Height - target.Height - 2*margin
	if spanX < 0 {
		spanX = 0
	}
	if spanY < 0 {
		spanY = 0
	}
	return types.Point{
		X: margin + rng.Float64()*spanX,
		Y: margin + rng.Float64()*spanY,
	}
}

// Escape is everything the presentation needs for one evasion.
type Escape struct {
	Attempt  int
	Position types.Point
	Speed    float64 // seconds
	Phrase   string
}

// Controller turns an attempt count and the current geometry into an Escape.
type Controller struct {
	rng    *rand.Rand
	margin float64
}

// NewController returns a controller drawing positions from rng.
func NewController(rng *rand.Rand, margin float64) *Controller {
	if margin < 0 {
		margin = 0
	}
	return &Controller{rng: rng, margin: margin}
}

// Evade computes the escape for the given attempt number.
func (c *Controller) Evade(attempt int, target, viewport types.Size) Escape {
	return Escape{
		Attempt:  attempt,
		Position: ChooseEscapePosition(c.rng, target, viewport, c.margin),
		Speed:    TransitionSpeed(attempt),
		Phrase:   EscalationPhrase(attempt),
	}
}
