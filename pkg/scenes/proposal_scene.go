package scenes

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Mandrupnicolai/ValentinePage/pkg/clock"
	"github.com/Mandrupnicolai/ValentinePage/pkg/components"
	"github.com/Mandrupnicolai/ValentinePage/pkg/config"
	"github.com/Mandrupnicolai/ValentinePage/pkg/countdown"
	"github.com/Mandrupnicolai/ValentinePage/pkg/ecs"
	"github.com/Mandrupnicolai/ValentinePage/pkg/effects"
	"github.com/Mandrupnicolai/ValentinePage/pkg/evasion"
	"github.com/Mandrupnicolai/ValentinePage/pkg/interaction"
	"github.com/Mandrupnicolai/ValentinePage/pkg/schedule"
	"github.com/Mandrupnicolai/ValentinePage/pkg/systems"
	"github.com/Mandrupnicolai/ValentinePage/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// ProposalOptions configure a ProposalScene. Audio, Clock and KeyToggle
// may be left nil.
type ProposalOptions struct {
	Config *config.AppConfig
	Audio  interaction.AudioCues
	Input  systems.InputSource
	Clock  clock.Clock
	Rand   *rand.Rand

	// KeyToggle reports whether the music toggle key was pressed this
	// frame. Defaults to the M key.
	KeyToggle func() bool
}

// ProposalScene is the whole program on screen: the greeting with its
// evasive decline button, the gift page and the gift modals, over a field
// of floating hearts.
//
// It is the presentation side of the interaction package: it implements
// ViewportQuery and PresentationSink and turns button callbacks into
// events for the Orchestrator.
type ProposalScene struct {
	cfg  *config.AppConfig
	size types.Size

	entityManager *ecs.EntityManager
	scheduler     *schedule.Scheduler

	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	particleSystem     *systems.ParticleSystem
	lifetimeSystem     *systems.LifetimeSystem
	tweenSystem        *systems.TweenSystem
	renderSystem       *systems.RenderSystem

	effects      *effects.Engine
	orchestrator *interaction.Orchestrator
	keyToggle    func() bool

	// events raised by button callbacks, handled after the button pass
	pending []interaction.Event

	face text.Face

	page      types.Page
	acceptID  ecs.EntityID
	declineID ecs.EntityID
	giftIDs   map[types.GiftKind]ecs.EntityID
	backID    ecs.EntityID

	modal interaction.Presentation
	// hearts rising through the countdown modal, destroyed with it
	modalHearts []ecs.EntityID
	breakdown   countdown.Breakdown

	chocolate       *ebiten.Image
	chocolateLoaded bool

	ambientTasks []schedule.Handle
}

// NewProposalScene builds the scene, its entities and the orchestrator.
func NewProposalScene(opts ProposalOptions) (*ProposalScene, error) {
	if opts.Config == nil {
		return nil, errors.New("proposal scene: nil config")
	}
	if opts.Input == nil {
		return nil, errors.New("proposal scene: nil input")
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.KeyToggle == nil {
		opts.KeyToggle = func() bool { return inpututil.IsKeyJustPressed(ebiten.KeyM) }
	}

	em := ecs.NewEntityManager()
	sched := schedule.New()

	s := &ProposalScene{
		cfg:  opts.Config,
		size: types.Size{Width: float64(opts.Config.Window.Width), Height: float64(opts.Config.Window.Height)},

		entityManager: em,
		scheduler:     sched,

		buttonSystem:   systems.NewButtonSystem(em, opts.Input),
		particleSystem: systems.NewParticleSystem(em),
		lifetimeSystem: systems.NewLifetimeSystem(em),
		tweenSystem:    systems.NewTweenSystem(em),
		renderSystem:   systems.NewRenderSystem(em),

		keyToggle: opts.KeyToggle,
		face:      text.NewGoXFace(basicfont.Face7x13),
		page:      types.PageGreeting,
		giftIDs:   make(map[types.GiftKind]ecs.EntityID, len(types.AllGifts)),
	}
	s.buttonRenderSystem = systems.NewButtonRenderSystem(em, s.face)
	s.effects = effects.NewEngine(em, sched, opts.Rand, s)

	o, err := interaction.NewOrchestrator(interaction.NewState(), interaction.Options{
		Scheduler:      sched,
		Countdown:      countdown.NewEngine(sched, opts.Clock),
		Evasion:        evasion.NewController(opts.Rand, config.EvasionMargin),
		Burster:        s.effects,
		Viewport:       s,
		Sink:           s,
		Audio:          opts.Audio,
		Rand:           opts.Rand,
		ChocolateImage: opts.Config.Assets.ChocolateImage,
	})
	if err != nil {
		return nil, fmt.Errorf("proposal scene: %w", err)
	}
	s.orchestrator = o

	s.initGreetingButtons()
	s.initGiftButtons()
	s.initModalButtons()

	if s.cfg.Effects.Ambient {
		s.ambientTasks = s.effects.InitAmbientField()
	}

	log.Printf("[ProposalScene] Ready (%vx%v)", s.size.Width, s.size.Height)
	return s, nil
}

// Orchestrator exposes the scene's orchestrator, mainly for tests.
func (s *ProposalScene) Orchestrator() *interaction.Orchestrator {
	return s.orchestrator
}

// Update runs one frame: scheduled tasks, input, events, then animation.
func (s *ProposalScene) Update(deltaTime float64) {
	s.scheduler.Advance(time.Duration(deltaTime * float64(time.Second)))

	if s.keyToggle() {
		s.raise(interaction.ToggleMusicEvent{})
	}

	s.buttonSystem.SetContext(s.page, s.modal != nil)
	s.buttonSystem.Update(deltaTime)

	ptr := s.buttonSystem.LastPointer()
	if ptr.JustReleased {
		s.raise(interaction.GestureEvent{})
	}
	if ptr.Moved && s.cfg.Effects.CursorTrail {
		s.effects.SpawnCursorHeart(types.Point{X: ptr.X, Y: ptr.Y})
	}

	s.flushEvents()

	s.tweenSystem.Update(deltaTime)
	s.particleSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

func (s *ProposalScene) raise(ev interaction.Event) {
	s.pending = append(s.pending, ev)
}

func (s *ProposalScene) flushEvents() {
	for len(s.pending) > 0 {
		ev := s.pending[0]
		s.pending = s.pending[1:]
		s.orchestrator.Dispatch(ev)
	}
}

// Dispose stops the ambient spawners and any running countdown.
func (s *ProposalScene) Dispose() {
	for _, h := range s.ambientTasks {
		s.scheduler.Cancel(h)
	}
	s.ambientTasks = nil
	s.orchestrator.OnModalClose()
}

// Viewport implements interaction.ViewportQuery.
func (s *ProposalScene) Viewport() types.Size {
	return s.size
}

// Bounds implements interaction.ViewportQuery. Only elements of the page
// on screen have bounds.
func (s *ProposalScene) Bounds(e types.Element) (types.Rect, bool) {
	var id ecs.EntityID
	switch e {
	case types.ElementAccept:
		id = s.acceptID
	case types.ElementDecline:
		id = s.declineID
	default:
		return types.Rect{}, false
	}
	if s.page != types.PageGreeting {
		return types.Rect{}, false
	}
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
	if !ok {
		return types.Rect{}, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return types.Rect{}, false
	}
	return systems.ButtonRect(button, pos), true
}

// ShowPage implements interaction.PresentationSink.
func (s *ProposalScene) ShowPage(p types.Page) {
	s.page = p
}

// OpenModal implements interaction.PresentationSink.
func (s *ProposalScene) OpenModal(p interaction.Presentation) {
	s.clearModalHearts()
	s.modal = p
	switch p := p.(type) {
	case interaction.ChocolateBox:
		s.loadChocolate(p.ImagePath)
	case interaction.CountdownPresentation:
		s.spawnModalHearts(p.Hearts)
	}
}

// CloseModal implements interaction.PresentationSink.
func (s *ProposalScene) CloseModal() {
	s.clearModalHearts()
	s.modal = nil
}

func (s *ProposalScene) spawnModalHearts(hearts []interaction.FloatingHeart) {
	mx, my := config.ModalOrigin(s.size.Width, s.size.Height)
	area := types.Rect{X: mx, Y: my, Width: config.ModalWidth, Height: config.ModalHeight}
	for i, h := range hearts {
		s.modalHearts = append(s.modalHearts, s.effects.SpawnModalHeart(area, h.X, h.Delay, i))
	}
}

func (s *ProposalScene) clearModalHearts() {
	for _, id := range s.modalHearts {
		s.entityManager.DestroyEntity(id)
	}
	s.modalHearts = nil
}

// ModalHearts returns the heart entities of the open countdown modal.
func (s *ProposalScene) ModalHearts() []ecs.EntityID {
	return s.modalHearts
}

// RenderCountdown implements interaction.PresentationSink.
func (s *ProposalScene) RenderCountdown(b countdown.Breakdown) {
	s.breakdown = b
}

// MarkGiftOpened implements interaction.PresentationSink.
func (s *ProposalScene) MarkGiftOpened(kind types.GiftKind) {
	id, ok := s.giftIDs[kind]
	if !ok {
		return
	}
	if card, ok := ecs.GetComponent[*components.GiftCardComponent](s.entityManager, id); ok {
		card.Opened = true
	}
}

// ShowDeclinePhrase implements interaction.PresentationSink.
func (s *ProposalScene) ShowDeclinePhrase(phrase string) {
	if ev, ok := s.declineEvasive(); ok {
		ev.Phrase = phrase
		ev.ShowPhrase = true
	}
}

// HideDeclinePhrase implements interaction.PresentationSink.
func (s *ProposalScene) HideDeclinePhrase() {
	if ev, ok := s.declineEvasive(); ok {
		ev.ShowPhrase = false
	}
}

// SetDeclinePanic implements interaction.PresentationSink.
func (s *ProposalScene) SetDeclinePanic(on bool) {
	if ev, ok := s.declineEvasive(); ok {
		ev.Panic = on
	}
}

// MoveDecline implements interaction.PresentationSink.
func (s *ProposalScene) MoveDecline(pos types.Point, speed float64) {
	if ev, ok := s.declineEvasive(); ok {
		ev.Free = true
	}
	systems.StartTween(s.entityManager, s.declineID, pos.X, pos.Y, speed)
}

func (s *ProposalScene) declineEvasive() (*components.EvasiveComponent, bool) {
	return ecs.GetComponent[*components.EvasiveComponent](s.entityManager, s.declineID)
}
