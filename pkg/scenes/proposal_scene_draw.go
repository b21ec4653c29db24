package scenes

import (
	"image/color"
	"math"

	"github.com/Mandrupnicolai/ValentinePage/pkg/components"
	"github.com/Mandrupnicolai/ValentinePage/pkg/config"
	"github.com/Mandrupnicolai/ValentinePage/pkg/ecs"
	"github.com/Mandrupnicolai/ValentinePage/pkg/interaction"
	"github.com/Mandrupnicolai/ValentinePage/pkg/systems"
	"github.com/Mandrupnicolai/ValentinePage/pkg/types"
	"github.com/Mandrupnicolai/ValentinePage/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorBackground = color.RGBA{0xff, 0xe4, 0xec, 0xff}
	colorTitle      = color.RGBA{0xc9, 0x18, 0x4a, 0xff}
	colorBody       = color.RGBA{0x5a, 0x2a, 0x3a, 0xff}
	colorMuted      = color.RGBA{0x9a, 0x6a, 0x7a, 0xff}
	colorCard       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorCardEdge   = color.RGBA{0xff, 0x8f, 0xa3, 0xff}
	colorRibbon     = color.RGBA{0xff, 0x4d, 0x6d, 0xff}
	colorOpened     = color.RGBA{0x3a, 0xa8, 0x6b, 0xff}
	colorBackdrop   = color.RGBA{0x30, 0x10, 0x20, 0x99}
	colorDigitBox   = color.RGBA{0xff, 0xf0, 0xf4, 0xff}
	colorChocolate  = color.RGBA{0x6b, 0x3e, 0x26, 0xff}
)

const modalPadding = 24.0

// Draw renders the frame: ambient particles, the page, the modal if any,
// then bursts and the cursor trail on top.
func (s *ProposalScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	s.renderSystem.DrawBackground(screen)

	switch s.page {
	case types.PageGreeting:
		s.drawGreeting(screen)
	case types.PageGifts:
		s.drawGiftPage(screen)
	}
	s.buttonRenderSystem.SetPage(s.page)
	s.buttonRenderSystem.DrawPage(screen)

	if s.modal != nil {
		s.drawModal(screen)
		s.buttonRenderSystem.DrawModal(screen)
	}

	s.renderSystem.DrawForeground(screen)

	// no keyboard on touch devices
	if !utils.IsMobile() {
		s.drawText(screen, "Press M to toggle music", s.size.Width/2, s.size.Height-16, 1, colorMuted)
	}
}

// drawText draws str centred on (x, y) at the given scale.
func (s *ProposalScene) drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}

// drawWrapped draws str wrapped to width, starting with its first line
// centred on (x, y). It returns the y below the last line.
func (s *ProposalScene) drawWrapped(screen *ebiten.Image, str string, x, y, width, scale float64, clr color.Color) float64 {
	lineHeight := s.face.Metrics().HAscent + s.face.Metrics().HDescent + 4
	for _, line := range utils.WrapText(str, s.face, width/scale) {
		s.drawText(screen, line, x, y, scale, clr)
		y += lineHeight * scale
	}
	return y
}

func (s *ProposalScene) drawGreeting(screen *ebiten.Image) {
	cx := s.size.Width / 2
	systems.DrawHeart(screen, cx, config.TitleY-70, 28, systems.ParticlePalette[0], 1)
	s.drawText(screen, "Will you be my Valentine?", cx, config.TitleY, 3, colorTitle)
	s.drawText(screen, "Choose wisely...", cx, config.TitleY+50, 1.5, colorBody)
}

func (s *ProposalScene) drawGiftPage(screen *ebiten.Image) {
	cx := s.size.Width / 2
	s.drawText(screen, "Yay! Pick your gifts", cx, config.GiftRowY-90, 3, colorTitle)
	s.drawText(screen, "Open all three for a surprise", cx, config.GiftRowY-45, 1.5, colorBody)

	for _, kind := range types.AllGifts {
		s.drawGiftCard(screen, s.giftIDs[kind])
	}
}

func (s *ProposalScene) drawGiftCard(screen *ebiten.Image, id ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	card, _ := ecs.GetComponent[*components.GiftCardComponent](s.entityManager, id)

	x, y := pos.X, pos.Y
	if button.State == components.UIHovered || button.State == components.UIClicked {
		y -= 6
	}
	w, h := button.Width, button.Height

	edge := colorCardEdge
	if card.Opened {
		edge = colorOpened
	}
	vector.DrawFilledRect(screen, float32(x-2), float32(y-2), float32(w+4), float32(h+4), edge, true)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), colorCard, true)

	// wrapped box with a ribbon
	boxSize := w * 0.45
	bx, by := x+(w-boxSize)/2, y+30
	vector.DrawFilledRect(screen, float32(bx), float32(by), float32(boxSize), float32(boxSize), colorCardEdge, true)
	vector.DrawFilledRect(screen, float32(bx+boxSize/2-5), float32(by), 10, float32(boxSize), colorRibbon, true)
	vector.DrawFilledRect(screen, float32(bx), float32(by+boxSize/2-5), float32(boxSize), 10, colorRibbon, true)
	systems.DrawHeart(screen, bx+boxSize/2, by-6, 10, systems.ParticlePalette[2], 1)

	s.drawText(screen, button.Label, x+w/2, y+h-48, 1.5, colorBody)
	if card.Opened {
		s.drawText(screen, "Opened", x+w/2, y+h-20, 1, colorOpened)
	} else {
		s.drawText(screen, "Click to open", x+w/2, y+h-20, 1, colorMuted)
	}
}

func (s *ProposalScene) drawModal(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.size.Width), float32(s.size.Height), colorBackdrop, false)

	mx, my := config.ModalOrigin(s.size.Width, s.size.Height)
	vector.DrawFilledRect(screen, float32(mx-3), float32(my-3), float32(config.ModalWidth+6), float32(config.ModalHeight+6), colorCardEdge, true)
	vector.DrawFilledRect(screen, float32(mx), float32(my), float32(config.ModalWidth), float32(config.ModalHeight), colorCard, true)

	cx := mx + config.ModalWidth/2
	inner := config.ModalWidth - 2*modalPadding

	switch p := s.modal.(type) {
	case interaction.FlowerVoucher:
		s.drawText(screen, "Flower voucher", cx, my+modalPadding+10, 2, colorTitle)
		s.drawFlower(screen, cx, my+130)
		s.drawWrapped(screen, p.VoucherText, cx, my+200, inner, 1.5, colorBody)

	case interaction.ChocolateBox:
		s.drawText(screen, "Chocolates", cx, my+modalPadding+10, 2, colorTitle)
		s.drawChocolate(screen, cx, my+150)
		s.drawWrapped(screen, p.Caption, cx, my+240, inner, 1.5, colorBody)

	case interaction.CountdownPresentation:
		s.renderSystem.DrawLayer(screen, systems.LayerModal)
		s.drawWrapped(screen, p.Message, cx, my+modalPadding+10, inner, 1.5, colorTitle)
		s.drawCountdown(screen, p.Labels, cx, my+150)
	}
}

func (s *ProposalScene) drawFlower(screen *ebiten.Image, cx, cy float64) {
	vector.DrawFilledRect(screen, float32(cx-2), float32(cy), 4, 50, colorOpened, true)
	for i := 0; i < 6; i++ {
		a := float64(i) / 6 * 2 * math.Pi
		px, py := cx+math.Cos(a)*18, cy+math.Sin(a)*18
		vector.DrawFilledCircle(screen, float32(px), float32(py), 13, systems.ParticlePalette[1], true)
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 11, systems.ParticlePalette[4], true)
}

// drawChocolate shows the chocolate picture fitted into a 200x140 box, or a
// placeholder when it could not be loaded.
func (s *ProposalScene) drawChocolate(screen *ebiten.Image, cx, cy float64) {
	const boxW, boxH = 200.0, 140.0
	if s.chocolate == nil {
		vector.StrokeRect(screen, float32(cx-boxW/2), float32(cy-boxH/2), boxW, boxH, 2, colorChocolate, true)
		s.drawText(screen, "Image not available", cx, cy, 1.2, colorMuted)
		return
	}

	b := s.chocolate.Bounds()
	scale := math.Min(boxW/float64(b.Dx()), boxH/float64(b.Dy()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-float64(b.Dx())*scale/2, cy-float64(b.Dy())*scale/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.chocolate, op)
}

func (s *ProposalScene) drawCountdown(screen *ebiten.Image, labels [4]string, cx, cy float64) {
	const boxW, boxH, gap = 90.0, 80.0, 12.0
	fields := s.breakdown.Fields()
	left := cx - (4*boxW+3*gap)/2

	for i := range fields {
		x := left + float64(i)*(boxW+gap)
		vector.DrawFilledRect(screen, float32(x), float32(cy-boxH/2), boxW, boxH, colorDigitBox, true)
		s.drawText(screen, fields[i], x+boxW/2, cy-8, 3, colorTitle)
		s.drawText(screen, labels[i], x+boxW/2, cy+boxH/2-12, 1, colorBody)
	}
}

// CountdownText is the countdown as currently shown, for tests and logs.
func (s *ProposalScene) CountdownText() string {
	return s.breakdown.String()
}
