package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/Mandrupnicolai/ValentinePage/pkg/components"
	"github.com/Mandrupnicolai/ValentinePage/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// ParticlePalette is indexed by ParticleComponent.Hue.
var ParticlePalette = []color.RGBA{
	{R: 0xff, G: 0x4d, B: 0x6d, A: 0xff},
	{R: 0xff, G: 0x8f, B: 0xa3, A: 0xff},
	{R: 0xc9, G: 0x18, B: 0x4a, A: 0xff},
	{R: 0xff, G: 0xc2, B: 0xd1, A: 0xff},
	{R: 0xff, G: 0xd1, B: 0x66, A: 0xff},
}

const (
	heartSegments = 24
	maxBatchVerts = 60000
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	// unit heart outline, centred on the origin, roughly 2 units wide
	heartOutline [heartSegments][2]float64
)

func init() {
	whiteImage.Fill(color.White)
	for i := range heartOutline {
		t := float64(i) / heartSegments * 2 * math.Pi
		s := math.Sin(t)
		x := 16 * s * s * s
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		heartOutline[i] = [2]float64{x / 16, -y / 16}
	}
}

// RenderSystem draws particle entities. Each layer goes out in one
// batched DrawTriangles call per vertex budget.
type RenderSystem struct {
	entityManager *ecs.EntityManager

	vertices []ebiten.Vertex // reused each frame
	indices  []uint16
}

// NewRenderSystem creates a particle renderer over em.
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		vertices:      make([]ebiten.Vertex, 0, 4096),
		indices:       make([]uint16, 0, 8192),
	}
}

// Layer is the depth a particle kind is drawn at.
type Layer int

const (
	// LayerBackground sits under the page: ambient hearts and sparkles.
	LayerBackground Layer = iota
	// LayerModal sits on the modal card, under its text.
	LayerModal
	// LayerForeground sits over everything: bursts and the cursor trail.
	LayerForeground
)

// LayerOf returns the layer particles of kind k are drawn in.
func LayerOf(k components.ParticleKind) Layer {
	switch k {
	case components.ParticleAmbientHeart, components.ParticleAmbientSparkle:
		return LayerBackground
	case components.ParticleModalHeart:
		return LayerModal
	default:
		return LayerForeground
	}
}

// Draw renders every particle, back to front.
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.DrawLayer(screen, LayerBackground)
	s.DrawLayer(screen, LayerModal)
	s.DrawLayer(screen, LayerForeground)
}

// DrawBackground renders the ambient hearts and sparkles.
func (s *RenderSystem) DrawBackground(screen *ebiten.Image) {
	s.DrawLayer(screen, LayerBackground)
}

// DrawForeground renders bursts and the cursor trail.
func (s *RenderSystem) DrawForeground(screen *ebiten.Image) {
	s.DrawLayer(screen, LayerForeground)
}

// DrawLayer renders the particles of one layer in a single batch.
func (s *RenderSystem) DrawLayer(screen *ebiten.Image, layer Layer) {
	entities := ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](s.entityManager)

	s.reset()
	for _, id := range entities {
		p, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		if LayerOf(p.Kind) != layer {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.appendParticle(screen, p, pos)
	}
	s.flush(screen)
}

func (s *RenderSystem) appendParticle(screen *ebiten.Image, p *components.ParticleComponent, pos *components.PositionComponent) {
	alpha := ParticleAlpha(p)
	if alpha <= 0 {
		return
	}
	if len(s.vertices)+heartSegments+1 > maxBatchVerts {
		s.flush(screen)
		s.reset()
	}

	c := paletteColor(p.Hue)
	size := p.Size * ParticleScale(p)

	switch p.Kind {
	case components.ParticleExplosionConfetti:
		s.appendQuad(pos.X, pos.Y, size, size*0.4, p.Rotation+Progress(p)*4*math.Pi, c, alpha)
	case components.ParticleAmbientSparkle:
		s.appendStar(pos.X, pos.Y, size, c, alpha)
	default:
		s.appendHeart(pos.X, pos.Y, size/2, p.Rotation, c, alpha)
	}
}

func paletteColor(hue int) color.RGBA {
	if hue < 0 {
		hue = -hue
	}
	return ParticlePalette[hue%len(ParticlePalette)]
}

func (s *RenderSystem) vertex(x, y float32, c color.RGBA, alpha float64) ebiten.Vertex {
	a := float32(alpha)
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 0xff * a,
		ColorG: float32(c.G) / 0xff * a,
		ColorB: float32(c.B) / 0xff * a,
		ColorA: a,
	}
}

func (s *RenderSystem) appendHeart(cx, cy, radius, rotation float64, c color.RGBA, alpha float64) {
	base := uint16(len(s.vertices))
	sin, cos := math.Sincos(rotation)
	s.vertices = append(s.vertices, s.vertex(float32(cx), float32(cy), c, alpha))
	for _, pt := range heartOutline {
		x := pt[0]*cos - pt[1]*sin
		y := pt[0]*sin + pt[1]*cos
		s.vertices = append(s.vertices, s.vertex(float32(cx+x*radius), float32(cy+y*radius), c, alpha))
	}
	for i := 0; i < heartSegments; i++ {
		next := (i + 1) % heartSegments
		s.indices = append(s.indices, base, base+1+uint16(i), base+1+uint16(next))
	}
}

func (s *RenderSystem) appendQuad(cx, cy, w, h, rotation float64, c color.RGBA, alpha float64) {
	base := uint16(len(s.vertices))
	sin, cos := math.Sincos(rotation)
	for _, corner := range [4][2]float64{{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}} {
		x := corner[0]*cos - corner[1]*sin
		y := corner[0]*sin + corner[1]*cos
		s.vertices = append(s.vertices, s.vertex(float32(cx+x), float32(cy+y), c, alpha))
	}
	s.indices = append(s.indices, base, base+1, base+2, base, base+2, base+3)
}

// appendStar draws a four-pointed sparkle.
func (s *RenderSystem) appendStar(cx, cy, size float64, c color.RGBA, alpha float64) {
	base := uint16(len(s.vertices))
	s.vertices = append(s.vertices, s.vertex(float32(cx), float32(cy), c, alpha))
	const points = 8
	for i := 0; i < points; i++ {
		r := size / 2
		if i%2 == 1 {
			r = size / 8
		}
		a := float64(i) / points * 2 * math.Pi
		s.vertices = append(s.vertices, s.vertex(float32(cx+math.Cos(a)*r), float32(cy+math.Sin(a)*r), c, alpha))
	}
	for i := 0; i < points; i++ {
		s.indices = append(s.indices, base, base+1+uint16(i), base+1+uint16((i+1)%points))
	}
}

func (s *RenderSystem) reset() {
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
}

func (s *RenderSystem) flush(screen *ebiten.Image) {
	if len(s.indices) == 0 {
		return
	}
	screen.DrawTriangles(s.vertices, s.indices, whiteSubImage, nil)
}

// DrawHeart draws a single filled heart outside the particle batch, for
// UI decorations.
func DrawHeart(screen *ebiten.Image, cx, cy, radius float64, c color.RGBA, alpha float64) {
	s := RenderSystem{
		vertices: make([]ebiten.Vertex, 0, heartSegments+1),
		indices:  make([]uint16, 0, heartSegments*3),
	}
	s.appendHeart(cx, cy, radius, 0, c, alpha)
	s.flush(screen)
}
