package systems

import (
	"image/color"

	"github.com/Mandrupnicolai/ValentinePage/pkg/components"
	"github.com/Mandrupnicolai/ValentinePage/pkg/ecs"
	"github.com/Mandrupnicolai/ValentinePage/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button fill colours per role, normal and hovered.
var (
	buttonFill = map[components.ButtonRole][2]color.RGBA{
		components.ButtonAccept:     {{0xff, 0x4d, 0x6d, 0xff}, {0xff, 0x6f, 0x8a, 0xff}},
		components.ButtonDecline:    {{0x9e, 0x9e, 0xa8, 0xff}, {0xb8, 0xb8, 0xc2, 0xff}},
		components.ButtonBackToHome: {{0xc9, 0x18, 0x4a, 0xff}, {0xe0, 0x3a, 0x66, 0xff}},
		components.ButtonModalClose: {{0xc9, 0x18, 0x4a, 0xff}, {0xe0, 0x3a, 0x66, 0xff}},
	}
	buttonText   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	buttonShadow = color.RGBA{0, 0, 0, 110}
	phraseText   = color.RGBA{0xc9, 0x18, 0x4a, 0xff}

	// horizontal jitter per frame while an evasive button panics
	panicShake = []float64{0, 3, -3, 2, -2, 1, -1}
)

// PhraseOffsetY places an evasive button's phrase above its top edge.
const PhraseOffsetY = -14.0

// ButtonRenderSystem draws labelled buttons: a filled pill with its label
// centred on top. Gift cards, the modal card and the backdrop are drawn by
// the scene, so only roles with a fill colour are rendered here. An
// evasive button shakes while panicking and carries its phrase above it.
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	face          text.Face

	page  types.Page
	frame int
}

// NewButtonRenderSystem creates a button renderer drawing labels with face.
func NewButtonRenderSystem(em *ecs.EntityManager, face text.Face) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
		face:          face,
		page:          types.PageGreeting,
	}
}

// SetPage selects which page's buttons DrawPage renders.
func (s *ButtonRenderSystem) SetPage(page types.Page) {
	s.page = page
}

// DrawPage renders the buttons of the current page.
func (s *ButtonRenderSystem) DrawPage(screen *ebiten.Image) {
	s.frame++
	s.draw(screen, func(b *components.ButtonComponent) bool {
		return !b.Modal && b.Page == s.page
	})
}

// DrawModal renders the buttons that belong to the modal.
func (s *ButtonRenderSystem) DrawModal(screen *ebiten.Image) {
	s.draw(screen, func(b *components.ButtonComponent) bool { return b.Modal })
}

func (s *ButtonRenderSystem) draw(screen *ebiten.Image, visible func(*components.ButtonComponent) bool) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		if visible(button) {
			s.DrawButton(screen, id)
		}
	}
}

// DrawButton renders a single button regardless of context.
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, id ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	fill, ok := buttonFill[button.Role]
	if !ok {
		return
	}

	x, y := float32(pos.X), float32(pos.Y)
	evasive, isEvasive := ecs.GetComponent[*components.EvasiveComponent](s.entityManager, id)
	if isEvasive && evasive.Panic {
		x += float32(panicShake[s.frame%len(panicShake)])
	}

	c := fill[0]
	if button.State == components.UIHovered || button.State == components.UIClicked {
		c = fill[1]
	}
	w, h := float32(button.Width), float32(button.Height)
	r := h / 2

	// pill: body plus round caps
	vector.DrawFilledRect(screen, x+r, y+2, w-2*r, h, buttonShadow, true)
	vector.DrawFilledRect(screen, x+r, y, w-2*r, h, c, true)
	vector.DrawFilledCircle(screen, x+r, y+r, r, c, true)
	vector.DrawFilledCircle(screen, x+w-r, y+r, r, c, true)

	if s.face == nil {
		return
	}
	cx := float64(x) + button.Width/2
	if button.Label != "" {
		s.drawLabel(screen, button.Label, cx, pos.Y+button.Height/2, buttonText)
	}
	if isEvasive && evasive.ShowPhrase && evasive.Phrase != "" {
		s.drawLabel(screen, evasive.Phrase, cx, pos.Y+PhraseOffsetY, phraseText)
	}
}

func (s *ButtonRenderSystem) drawLabel(screen *ebiten.Image, str string, cx, cy float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}
