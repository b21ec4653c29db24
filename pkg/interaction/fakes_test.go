package interaction

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/Mandrupnicolai/ValentinePage/pkg/clock"
	"github.com/Mandrupnicolai/ValentinePage/pkg/config"
	"github.com/Mandrupnicolai/ValentinePage/pkg/countdown"
	"github.com/Mandrupnicolai/ValentinePage/pkg/ecs"
	"github.com/Mandrupnicolai/ValentinePage/pkg/evasion"
	"github.com/Mandrupnicolai/ValentinePage/pkg/schedule"
	"github.com/Mandrupnicolai/ValentinePage/pkg/sound"
	"github.com/Mandrupnicolai/ValentinePage/pkg/types"
)

type fakeViewport struct {
	size   types.Size
	bounds map[types.Element]types.Rect
}

func (v *fakeViewport) Viewport() types.Size { return v.size }

func (v *fakeViewport) Bounds(e types.Element) (types.Rect, bool) {
	r, ok := v.bounds[e]
	return r, ok
}

type move struct {
	pos   types.Point
	speed float64
}

type fakeSink struct {
	pages      []types.Page
	opened     []Presentation
	closes     int
	breakdowns []countdown.Breakdown
	marked     []types.GiftKind
	phrases    []string
	hides      int
	panic      bool
	moves      []move
}

func (s *fakeSink) ShowPage(p types.Page)                   { s.pages = append(s.pages, p) }
func (s *fakeSink) OpenModal(p Presentation)                { s.opened = append(s.opened, p) }
func (s *fakeSink) CloseModal()                             { s.closes++ }
func (s *fakeSink) RenderCountdown(b countdown.Breakdown)   { s.breakdowns = append(s.breakdowns, b) }
func (s *fakeSink) MarkGiftOpened(k types.GiftKind)         { s.marked = append(s.marked, k) }
func (s *fakeSink) ShowDeclinePhrase(p string)              { s.phrases = append(s.phrases, p) }
func (s *fakeSink) HideDeclinePhrase()                      { s.hides++ }
func (s *fakeSink) SetDeclinePanic(on bool)                 { s.panic = on }
func (s *fakeSink) MoveDecline(pos types.Point, sp float64) { s.moves = append(s.moves, move{pos, sp}) }

type fakeAudio struct {
	fail   bool
	played []sound.Cue
	starts int
	stops  int
}

var errAudioDenied = errors.New("audio denied")

func (a *fakeAudio) PlaySound(c sound.Cue) error {
	a.played = append(a.played, c)
	if a.fail {
		return errAudioDenied
	}
	return nil
}

func (a *fakeAudio) StartMusic() error {
	a.starts++
	if a.fail {
		return errAudioDenied
	}
	return nil
}

func (a *fakeAudio) StopMusic() { a.stops++ }

type burst struct {
	origin types.Point
	count  int
}

type fakeBurster struct {
	bursts []burst
}

func (b *fakeBurster) SpawnExplosion(origin types.Point, count int) []ecs.EntityID {
	b.bursts = append(b.bursts, burst{origin, count})
	return make([]ecs.EntityID, count)
}

type harness struct {
	o        *Orchestrator
	state    *State
	sched    *schedule.Scheduler
	clock    *clock.Fake
	engine   *countdown.Engine
	sink     *fakeSink
	audio    *fakeAudio
	burster  *fakeBurster
	viewport *fakeViewport
}

var (
	acceptRect  = types.Rect{X: 220, Y: 300, Width: 160, Height: 52}
	declineRect = types.Rect{X: 420, Y: 300, Width: 120, Height: 48}
)

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		state:   NewState(),
		sched:   schedule.New(),
		clock:   clock.NewFake(time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)),
		sink:    &fakeSink{},
		audio:   &fakeAudio{},
		burster: &fakeBurster{},
		viewport: &fakeViewport{
			size: types.Size{Width: 800, Height: 600},
			bounds: map[types.Element]types.Rect{
				types.ElementAccept:  acceptRect,
				types.ElementDecline: declineRect,
			},
		},
	}
	h.engine = countdown.NewEngine(h.sched, h.clock)

	o, err := NewOrchestrator(h.state, Options{
		Scheduler:      h.sched,
		Countdown:      h.engine,
		Evasion:        evasion.NewController(rand.New(rand.NewSource(1)), config.EvasionMargin),
		Burster:        h.burster,
		Viewport:       h.viewport,
		Sink:           h.sink,
		Audio:          h.audio,
		Rand:           rand.New(rand.NewSource(2)),
		ChocolateImage: "assets/chocolate.png",
	})
	if err != nil {
		t.Fatalf("NewOrchestrator: %v", err)
	}
	h.o = o
	return h
}

// advance moves scheduler time and the wall clock together.
func (h *harness) advance(d time.Duration) {
	h.clock.Advance(d)
	h.sched.Advance(d)
}
