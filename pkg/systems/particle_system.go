package systems

import (
	"math"

	"github.com/Mandrupnicolai/ValentinePage/pkg/components"
	"github.com/Mandrupnicolai/ValentinePage/pkg/ecs"
	"github.com/Mandrupnicolai/ValentinePage/pkg/utils"
)

// ParticleSystem animates every particle entity and removes non-looping
// particles the frame their animation ends.
type ParticleSystem struct {
	entityManager *ecs.EntityManager
}

// NewParticleSystem creates a particle system over em.
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{entityManager: em}
}

// Update advances each particle by dt seconds and recomputes its position.
func (ps *ParticleSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](ps.entityManager)

	for _, id := range entities {
		p, _ := ecs.GetComponent[*components.ParticleComponent](ps.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.entityManager, id)

		step := dt
		if p.Delay > 0 {
			p.Delay -= step
			if p.Delay > 0 {
				continue
			}
			step = -p.Delay
			p.Delay = 0
		}

		p.Age += step
		if p.Duration <= 0 || p.Age >= p.Duration {
			if !p.Loops {
				ps.entityManager.DestroyEntity(id)
				continue
			}
			if p.Duration > 0 {
				p.Age = math.Mod(p.Age, p.Duration)
			}
		}

		x, y := ParticleOffset(p)
		pos.X = p.OriginX + x
		pos.Y = p.OriginY + y
	}
}

// Progress returns how far p is through its current animation cycle, 0..1.
func Progress(p *components.ParticleComponent) float64 {
	if p.Duration <= 0 {
		return 1
	}
	return utils.Clamp01(p.Age / p.Duration)
}

// ParticleOffset is p's displacement from its origin at its current age.
func ParticleOffset(p *components.ParticleComponent) (float64, float64) {
	t := Progress(p)
	switch p.Kind {
	case components.ParticleExplosionHeart, components.ParticleExplosionConfetti:
		e := utils.EaseOutCubic(t)
		// Confetti falls a little as it slows down.
		drop := 0.0
		if p.Kind == components.ParticleExplosionConfetti {
			drop = 40 * utils.EaseInQuad(t)
		}
		return p.DX * e, p.DY*e + drop
	case components.ParticleAmbientHeart:
		sway := math.Sin(t*2*math.Pi) * 12
		return p.DX*t + sway, p.DY * t
	case components.ParticleCursorHeart:
		e := utils.EaseOutQuad(t)
		return p.DX * e, p.DY * e
	case components.ParticleModalHeart:
		return 0, p.DY * t
	default:
		return 0, 0
	}
}

// ParticleAlpha is p's opacity at its current age.
func ParticleAlpha(p *components.ParticleComponent) float64 {
	if p.Delay > 0 {
		return 0
	}
	t := Progress(p)
	switch p.Kind {
	case components.ParticleAmbientSparkle:
		// twinkle: fade in and out once per cycle
		return utils.EaseInOutSine(1 - math.Abs(2*t-1))
	case components.ParticleAmbientHeart:
		switch {
		case t < 0.1:
			return t / 0.1 * 0.8
		case t > 0.85:
			return (1 - t) / 0.15 * 0.8
		default:
			return 0.8
		}
	case components.ParticleModalHeart:
		return modalHeartAlpha * (1 - t)
	default:
		return 1 - utils.EaseInQuad(t)
	}
}

// modalHeartAlpha is a countdown heart's opacity as it starts to rise.
const modalHeartAlpha = 0.35

// ParticleScale is p's size multiplier at its current age.
func ParticleScale(p *components.ParticleComponent) float64 {
	t := Progress(p)
	switch p.Kind {
	case components.ParticleExplosionHeart, components.ParticleExplosionConfetti:
		return 1 - 0.4*t
	case components.ParticleAmbientSparkle:
		return 0.6 + 0.6*ParticleAlpha(p)
	case components.ParticleCursorHeart:
		return 1 - 0.5*t
	default:
		return 1
	}
}
