// Package countdown computes the time left until the next Valentine's Day
// and drives the once-per-second countdown display.
package countdown

import (
	"fmt"
	"log"
	"time"

	"github.com/Mandrupnicolai/ValentinePage/pkg/clock"
	"github.com/Mandrupnicolai/ValentinePage/pkg/schedule"
)

// TickInterval is how often a running countdown emits a breakdown.
const TickInterval = time.Second

// NextTargetDate returns Feb 14 00:00:00 of now's year in now's location,
// or of the following year when that instant is not strictly after now.
func NextTargetDate(now time.Time) time.Time {
	target := time.Date(now.Year(), time.February, 14, 0, 0, 0, 0, now.Location())
	if !target.After(now) {
		target = time.Date(now.Year()+1, time.February, 14, 0, 0, 0, 0, now.Location())
	}
	return target
}

// Breakdown is the remaining time split into display units.
type Breakdown struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Compute splits max(0, target-now), truncated to whole seconds, into days,
// hours, minutes and seconds. Past targets yield the zero Breakdown.
func Compute(target, now time.Time) Breakdown {
	diff := target.Sub(now)
	if diff < 0 {
		diff = 0
	}
	total := int64(diff / time.Second)
	return Breakdown{
		Days:    total / 86400,
		Hours:   (total % 86400) / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// TotalSeconds recombines the fields.
func (b Breakdown) TotalSeconds() int64 {
	return b.Days*86400 + b.Hours*3600 + b.Minutes*60 + b.Seconds
}

// Fields returns days, hours, minutes and seconds as zero-padded two-digit
// strings. Day counts above 99 keep all their digits.
func (b Breakdown) Fields() [4]string {
	return [4]string{
		fmt.Sprintf("%02d", b.Days),
		fmt.Sprintf("%02d", b.Hours),
		fmt.Sprintf("%02d", b.Minutes),
		fmt.Sprintf("%02d", b.Seconds),
	}
}

func (b Breakdown) String() string {
	f := b.Fields()
	return f[0] + ":" + f[1] + ":" + f[2] + ":" + f[3]
}

// Labels name the four Fields in order.
var Labels = [4]string{"Days", "Hours", "Minutes", "Seconds"}

// Engine owns the repeating countdown task. Callers hold the Handle it
// returns and hand it back to Start or Stop; the zero Handle means no
// countdown is running.
type Engine struct {
	sched *schedule.Scheduler
	clock clock.Clock
	live  map[schedule.Handle]struct{}
}

// NewEngine builds an engine ticking on sched and reading time from c.
func NewEngine(sched *schedule.Scheduler, c clock.Clock) *Engine {
	if c == nil {
		c = clock.Real()
	}
	return &Engine{
		sched: sched,
		clock: c,
		live:  make(map[schedule.Handle]struct{}),
	}
}

// Start cancels existing (if any), picks a fresh target, emits one
// breakdown to sink right away and then one per TickInterval until the
// returned Handle is stopped.
func (e *Engine) Start(existing schedule.Handle, sink func(Breakdown)) schedule.Handle {
	e.Stop(existing)

	target := NextTargetDate(e.clock.Now())
	update := func() {
		if sink != nil {
			sink(Compute(target, e.clock.Now()))
		}
	}

	update()
	h := e.sched.Every(TickInterval, update)
	e.live[h] = struct{}{}
	log.Printf("[Countdown] Started countdown to %s", target.Format("2006-01-02 15:04 MST"))
	return h
}

// Stop cancels h when it is non-zero and always returns the zero Handle,
// so callers can write `h = engine.Stop(h)`.
func (e *Engine) Stop(h schedule.Handle) schedule.Handle {
	if h != 0 {
		e.sched.Cancel(h)
		delete(e.live, h)
	}
	return 0
}

// Active counts countdown tasks started by this engine that are still
// scheduled.
func (e *Engine) Active() int {
	n := 0
	for h := range e.live {
		if e.sched.Active(h) {
			n++
		} else {
			delete(e.live, h)
		}
	}
	return n
}
