package interaction

import (
	"errors"
	"log"
	"math/rand"

	"github.com/Mandrupnicolai/ValentinePage/pkg/config"
	"github.com/Mandrupnicolai/ValentinePage/pkg/countdown"
	"github.com/Mandrupnicolai/ValentinePage/pkg/evasion"
	"github.com/Mandrupnicolai/ValentinePage/pkg/schedule"
	"github.com/Mandrupnicolai/ValentinePage/pkg/sound"
	"github.com/Mandrupnicolai/ValentinePage/pkg/types"
)

// Options are the collaborators of an Orchestrator. Audio may be nil.
type Options struct {
	Scheduler *schedule.Scheduler
	Countdown *countdown.Engine
	Evasion   *evasion.Controller
	Burster   Burster
	Viewport  ViewportQuery
	Sink      PresentationSink
	Audio     AudioCues
	Rand      *rand.Rand

	ChocolateImage string
}

// Orchestrator maps user events to state changes and presentation calls.
// It runs on the game loop goroutine only.
//
// Modes: the greeting page, the gift page, and a gift modal over the
// gift page. The greeting page is the initial mode.
type Orchestrator struct {
	state *State
	opts  Options

	panicTask schedule.Handle
}

// NewOrchestrator wires an orchestrator over state.
func NewOrchestrator(state *State, opts Options) (*Orchestrator, error) {
	switch {
	case state == nil:
		return nil, errors.New("orchestrator: nil state")
	case opts.Scheduler == nil, opts.Countdown == nil, opts.Evasion == nil:
		return nil, errors.New("orchestrator: scheduler, countdown and evasion are required")
	case opts.Burster == nil, opts.Viewport == nil, opts.Sink == nil:
		return nil, errors.New("orchestrator: burster, viewport and sink are required")
	case opts.Rand == nil:
		return nil, errors.New("orchestrator: nil rand")
	}
	if opts.Audio == nil {
		opts.Audio = silentAudio{}
	}
	return &Orchestrator{state: state, opts: opts}, nil
}

// State returns the orchestrator's state for reading.
func (o *Orchestrator) State() *State {
	return o.state
}

// Dispatch routes ev to its handler.
func (o *Orchestrator) Dispatch(ev Event) {
	switch e := ev.(type) {
	case AcceptEvent:
		o.OnAccept()
	case DeclineHoverEvent:
		o.OnDeclineHover()
	case DeclineLeaveEvent:
		o.OnDeclineLeave()
	case GiftOpenEvent:
		o.OnGiftOpen(e.Kind)
	case ModalCloseEvent:
		o.OnModalClose()
	case BackToHomeEvent:
		o.OnBackToHome()
	case ToggleMusicEvent:
		o.OnToggleMusic()
	case GestureEvent:
		o.OnGesture()
	default:
		log.Printf("[Orchestrator] Warning: unhandled event %T", ev)
	}
}

// OnAccept celebrates at the accept button, switches to the gift page and
// starts the music.
func (o *Orchestrator) OnAccept() {
	if rect, ok := o.opts.Viewport.Bounds(types.ElementAccept); ok {
		o.opts.Burster.SpawnExplosion(rect.Center(), config.AcceptBurstCount)
	} else {
		log.Printf("[Orchestrator] Warning: accept button not found, skipping burst")
	}

	o.state.HasInteracted = true
	o.showPage(types.PageGifts)

	o.playSound(sound.CueAccept)
	o.startMusic()
}

// OnDeclineHover makes the decline button dodge: it moves to a random
// spot, shows an escalating phrase and shakes for a moment.
func (o *Orchestrator) OnDeclineHover() {
	if o.state.Page != types.PageGreeting || o.state.ModalOpen() {
		return
	}
	rect, ok := o.opts.Viewport.Bounds(types.ElementDecline)
	if !ok {
		log.Printf("[Orchestrator] Warning: decline button not found, skipping evasion")
		return
	}

	o.state.HasInteracted = true
	o.state.DeclineAttemptCount++
	esc := o.opts.Evasion.Evade(o.state.DeclineAttemptCount, rect.Size(), o.opts.Viewport.Viewport())
	log.Printf("[Orchestrator] Decline attempt %d, escaping to (%.0f, %.0f)", esc.Attempt, esc.Position.X, esc.Position.Y)

	o.opts.Sink.ShowDeclinePhrase(esc.Phrase)
	o.opts.Sink.SetDeclinePanic(true)
	o.opts.Scheduler.Cancel(o.panicTask)
	o.panicTask = o.opts.Scheduler.After(config.DeclinePanicDuration, func() {
		o.panicTask = 0
		o.opts.Sink.SetDeclinePanic(false)
	})
	o.opts.Sink.MoveDecline(esc.Position, esc.Speed)
}

// OnDeclineLeave hides the dodge phrase.
func (o *Orchestrator) OnDeclineLeave() {
	o.opts.Sink.HideDeclinePhrase()
}

// OnGiftOpen reveals a gift. The first opening of each kind is counted;
// the opening that completes the set is celebrated with a burst in the
// middle of the screen. Any running countdown is replaced.
func (o *Orchestrator) OnGiftOpen(kind types.GiftKind) {
	pres, ok := NewPresentation(kind, o.opts.Rand, o.opts.ChocolateImage)
	if !ok {
		log.Printf("[Orchestrator] Warning: unknown gift %v", kind)
		return
	}

	completed := false
	if !o.state.OpenedKinds[kind] {
		o.state.OpenedKinds[kind] = true
		o.state.GiftsOpenedCount++
		o.opts.Sink.MarkGiftOpened(kind)
		completed = o.state.AllGiftsOpened()
	}

	o.playSound(sound.CueUnwrap)

	o.state.ActiveCountdown = o.opts.Countdown.Stop(o.state.ActiveCountdown)
	o.opts.Sink.OpenModal(pres)
	o.state.Modal = kind

	if kind == types.GiftCountdown {
		o.state.ActiveCountdown = o.opts.Countdown.Start(0, o.opts.Sink.RenderCountdown)
	}

	if completed {
		log.Printf("[Orchestrator] All gifts opened")
		o.opts.Scheduler.After(config.CelebrationDelay, func() {
			center := o.opts.Viewport.Viewport().Center()
			o.opts.Burster.SpawnExplosion(center, config.CelebrationBurstCount)
		})
	}
}

// OnModalClose returns to the gift page and stops the countdown.
func (o *Orchestrator) OnModalClose() {
	o.state.ActiveCountdown = o.opts.Countdown.Stop(o.state.ActiveCountdown)
	if !o.state.ModalOpen() {
		return
	}
	o.state.Modal = types.GiftUnknown
	o.opts.Sink.CloseModal()
}

// OnBackToHome returns to the greeting page from anywhere.
func (o *Orchestrator) OnBackToHome() {
	o.OnModalClose()
	o.showPage(types.PageGreeting)
}

// OnToggleMusic turns the music on or off once the user has interacted.
func (o *Orchestrator) OnToggleMusic() {
	if !o.state.HasInteracted {
		return
	}
	if o.state.MusicEnabled {
		o.state.MusicEnabled = false
		o.opts.Audio.StopMusic()
		return
	}
	o.startMusic()
}

// OnGesture records that the user has interacted with the page.
func (o *Orchestrator) OnGesture() {
	o.state.HasInteracted = true
}

func (o *Orchestrator) showPage(p types.Page) {
	o.state.Page = p
	o.opts.Sink.ShowPage(p)
}

func (o *Orchestrator) startMusic() {
	o.state.MusicEnabled = true
	if err := o.opts.Audio.StartMusic(); err != nil {
		log.Printf("[Orchestrator] Warning: music did not start: %v", err)
	}
}

func (o *Orchestrator) playSound(c sound.Cue) {
	if err := o.opts.Audio.PlaySound(c); err != nil {
		log.Printf("[Orchestrator] Warning: failed to play %s: %v", c, err)
	}
}

type silentAudio struct{}

func (silentAudio) PlaySound(sound.Cue) error { return nil }
func (silentAudio) StartMusic() error         { return nil }
func (silentAudio) StopMusic()                {}
