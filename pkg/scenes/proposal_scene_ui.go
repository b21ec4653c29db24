package scenes

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"log"

	"github.com/Mandrupnicolai/ValentinePage/pkg/components"
	"github.com/Mandrupnicolai/ValentinePage/pkg/config"
	"github.com/Mandrupnicolai/ValentinePage/pkg/ecs"
	"github.com/Mandrupnicolai/ValentinePage/pkg/embedded"
	"github.com/Mandrupnicolai/ValentinePage/pkg/interaction"
	"github.com/Mandrupnicolai/ValentinePage/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// giftTitles are the captions under each gift card.
var giftTitles = map[types.GiftKind]string{
	types.GiftFlowers:   "Flowers",
	types.GiftChocolate: "Chocolate",
	types.GiftCountdown: "Countdown",
}

// newButton creates a button entity. Entities created later are drawn and
// hit-tested on top.
func (s *ProposalScene) newButton(b *components.ButtonComponent, x, y float64) ecs.EntityID {
	b.Enabled = true
	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, b)
	ecs.AddComponent(s.entityManager, id, &components.PositionComponent{X: x, Y: y})
	return id
}

func (s *ProposalScene) initGreetingButtons() {
	acceptX, declineX := config.ButtonRowX(s.size.Width)

	s.acceptID = s.newButton(&components.ButtonComponent{
		Role:    components.ButtonAccept,
		Label:   "Yes",
		Width:   config.ButtonWidth,
		Height:  config.ButtonHeight,
		Page:    types.PageGreeting,
		OnClick: func() { s.raise(interaction.AcceptEvent{}) },
	}, acceptX, config.ButtonRowY)

	s.declineID = s.newButton(&components.ButtonComponent{
		Role:         components.ButtonDecline,
		Label:        "No",
		Width:        config.ButtonWidth,
		Height:       config.ButtonHeight,
		Page:         types.PageGreeting,
		OnHoverEnter: func() { s.raise(interaction.DeclineHoverEvent{}) },
		OnHoverLeave: func() { s.raise(interaction.DeclineLeaveEvent{}) },
	}, declineX, config.ButtonRowY)
	ecs.AddComponent(s.entityManager, s.declineID, &components.EvasiveComponent{})
}

func (s *ProposalScene) initGiftButtons() {
	for i, kind := range types.AllGifts {
		id := s.newButton(&components.ButtonComponent{
			Role:    components.ButtonGift,
			Label:   giftTitles[kind],
			Width:   config.GiftCardWidth,
			Height:  config.GiftCardHeight,
			Page:    types.PageGifts,
			OnClick: func() { s.raise(interaction.GiftOpenEvent{Kind: kind}) },
		}, config.GiftCardX(s.size.Width, i, len(types.AllGifts)), config.GiftRowY)
		ecs.AddComponent(s.entityManager, id, &components.GiftCardComponent{Kind: kind})
		s.giftIDs[kind] = id
	}

	s.backID = s.newButton(&components.ButtonComponent{
		Role:    components.ButtonBackToHome,
		Label:   "Back to home",
		Width:   config.BackButtonWidth,
		Height:  config.BackButtonHeight,
		Page:    types.PageGifts,
		OnClick: func() { s.raise(interaction.BackToHomeEvent{}) },
	}, (s.size.Width-config.BackButtonWidth)/2, config.BackButtonY)
}

func (s *ProposalScene) initModalButtons() {
	closeModal := func() { s.raise(interaction.ModalCloseEvent{}) }
	mx, my := config.ModalOrigin(s.size.Width, s.size.Height)

	s.newButton(&components.ButtonComponent{
		Role:    components.ButtonBackdrop,
		Width:   s.size.Width,
		Height:  s.size.Height,
		Modal:   true,
		OnClick: closeModal,
	}, 0, 0)

	// absorbs clicks on the card so only clicks outside it close the modal
	s.newButton(&components.ButtonComponent{
		Role:   components.ButtonModalCard,
		Width:  config.ModalWidth,
		Height: config.ModalHeight,
		Modal:  true,
	}, mx, my)

	s.newButton(&components.ButtonComponent{
		Role:    components.ButtonModalClose,
		Label:   "Close",
		Width:   config.CloseButtonWidth,
		Height:  config.CloseButtonHeight,
		Modal:   true,
		OnClick: closeModal,
	}, mx+(config.ModalWidth-config.CloseButtonWidth)/2, my+config.ModalHeight-config.CloseButtonHeight-config.CloseButtonInset)
}

// loadChocolate loads the chocolate picture once. A missing or unreadable
// file leaves the placeholder in place.
func (s *ProposalScene) loadChocolate(path string) {
	if s.chocolateLoaded {
		return
	}
	s.chocolateLoaded = true
	if path == "" {
		return
	}
	img, err := loadImage(path)
	if err != nil {
		log.Printf("[ProposalScene] Warning: chocolate image unavailable: %v", err)
		return
	}
	s.chocolate = img
}

// loadImage decodes an embedded image, or reads path from disk when it
// names a file outside the binary (a --config override).
func loadImage(path string) (*ebiten.Image, error) {
	if !embedded.Exists(path) {
		img, _, err := ebitenutil.NewImageFromFile(path)
		return img, err
	}
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, err
	}
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(decoded), nil
}
