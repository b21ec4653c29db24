// Package effects spawns the decorative particles: celebration bursts,
// the ambient field of floating hearts and sparkles, and the cursor trail.
//
// Every particle is an ECS entity that owns its own end: burst and trail
// particles are removed by the ParticleSystem when their animation
// finishes, ambient particles carry a LifetimeComponent that removes them
// shortly after one animation duration. There is no central registry.
// Modal hearts loop until whoever opened the modal destroys them.
package effects

import (
	"math"
	"math/rand"
	"time"

	"github.com/Mandrupnicolai/ValentinePage/pkg/components"
	"github.com/Mandrupnicolai/ValentinePage/pkg/ecs"
	"github.com/Mandrupnicolai/ValentinePage/pkg/schedule"
	"github.com/Mandrupnicolai/ValentinePage/pkg/types"
)

const (
	// DefaultBurst is the particle count of a burst when none is given.
	DefaultBurst = 26

	heartProbability = 0.6
	minBurstSpeed    = 80.0
	burstSpeedRange  = 160.0

	explosionHeartDuration    = 1.1
	explosionConfettiDuration = 1.3
	cursorHeartDuration       = 0.9

	ambientHeartMinDuration     = 10.0
	ambientHeartDurationRange   = 16.0
	ambientHeartGrace           = 1.0
	ambientSparkleMinDuration   = 2.0
	ambientSparkleDurationRange = 2.5
	ambientSparkleGrace         = 0.5
	ambientHeartDriftRange      = 60.0
	ambientHeartSpawnBelow      = 20.0
	initialAmbientHearts        = 14
	initialAmbientSparkles      = 18
	initialHeartStagger         = 800 * time.Millisecond
	initialSparkleStagger       = 260 * time.Millisecond
	ambientHeartInterval        = 4200 * time.Millisecond
	ambientSparkleInterval      = 1900 * time.Millisecond
	cursorTrailThrottle         = 45 * time.Millisecond
	modalHeartRise              = 4.0
	modalHeartInset             = 20.0
	modalHeartSize              = 18.0
	paletteSize                 = 5
)

// Viewport reports the current logical screen size.
type Viewport interface {
	Viewport() types.Size
}

// Engine creates particle entities.
type Engine struct {
	em       *ecs.EntityManager
	sched    *schedule.Scheduler
	rng      *rand.Rand
	viewport Viewport

	lastCursorHeart time.Duration
	cursorSpawned   bool
}

// NewEngine returns an engine that adds particles to em and schedules
// ambient spawns on sched.
func NewEngine(em *ecs.EntityManager, sched *schedule.Scheduler, rng *rand.Rand, viewport Viewport) *Engine {
	return &Engine{
		em:       em,
		sched:    sched,
		rng:      rng,
		viewport: viewport,
	}
}

// SpawnExplosion flings count particles out of origin (DefaultBurst when
// count is not positive). Each particle independently picks heart or
// confetti (60/40), a direction in [0, 2π) and a speed in [80, 240); the
// resulting vector is where its animation ends relative to origin.
func (e *Engine) SpawnExplosion(origin types.Point, count int) []ecs.EntityID {
	if count <= 0 {
		count = DefaultBurst
	}

	ids := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		kind := components.ParticleExplosionConfetti
		duration := explosionConfettiDuration
		size := 4 + e.rng.Float64()*4
		if e.rng.Float64() < heartProbability {
			kind = components.ParticleExplosionHeart
			duration = explosionHeartDuration
			size = 8 + e.rng.Float64()*6
		}

		angle := e.rng.Float64() * 2 * math.Pi
		speed := minBurstSpeed + e.rng.Float64()*burstSpeedRange

		id := e.em.CreateEntity()
		ecs.AddComponent(e.em, id, &components.PositionComponent{X: origin.X, Y: origin.Y})
		ecs.AddComponent(e.em, id, &components.ParticleComponent{
			Kind:     kind,
			OriginX:  origin.X,
			OriginY:  origin.Y,
			DX:       math.Cos(angle) * speed,
			DY:       math.Sin(angle) * speed,
			Duration: duration,
			Size:     size,
			Rotation: e.rng.Float64() * 2 * math.Pi,
			Hue:      e.rng.Intn(paletteSize),
		})
		ids = append(ids, id)
	}
	return ids
}

// SpawnAmbientHeart releases one heart from below a random horizontal
// position. It floats up over 10-26s and is removed one second after.
func (e *Engine) SpawnAmbientHeart() ecs.EntityID {
	vp := e.viewport.Viewport()
	x := e.rng.Float64() * vp.Width
	duration := ambientHeartMinDuration + e.rng.Float64()*ambientHeartDurationRange

	id := e.em.CreateEntity()
	ecs.AddComponent(e.em, id, &components.PositionComponent{X: x, Y: vp.Height + ambientHeartSpawnBelow})
	ecs.AddComponent(e.em, id, &components.ParticleComponent{
		Kind:     components.ParticleAmbientHeart,
		OriginX:  x,
		OriginY:  vp.Height + ambientHeartSpawnBelow,
		DX:       e.rng.Float64()*ambientHeartDriftRange - ambientHeartDriftRange/2,
		DY:       -(vp.Height + 2*ambientHeartSpawnBelow),
		Duration: duration,
		Loops:    true,
		Size:     10 + e.rng.Float64()*10,
		Hue:      e.rng.Intn(paletteSize),
	})
	ecs.AddComponent(e.em, id, &components.LifetimeComponent{MaxLifetime: duration + ambientHeartGrace})
	return id
}

// SpawnAmbientSparkle places one sparkle at a random spot. It twinkles
// for 2-4.5s and is removed half a second after.
func (e *Engine) SpawnAmbientSparkle() ecs.EntityID {
	vp := e.viewport.Viewport()
	x := e.rng.Float64() * vp.Width
	y := e.rng.Float64() * vp.Height
	duration := ambientSparkleMinDuration + e.rng.Float64()*ambientSparkleDurationRange

	id := e.em.CreateEntity()
	ecs.AddComponent(e.em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(e.em, id, &components.ParticleComponent{
		Kind:     components.ParticleAmbientSparkle,
		OriginX:  x,
		OriginY:  y,
		Duration: duration,
		Loops:    true,
		Size:     2 + e.rng.Float64()*3,
	})
	ecs.AddComponent(e.em, id, &components.LifetimeComponent{MaxLifetime: duration + ambientSparkleGrace})
	return id
}

// InitAmbientField seeds 14 hearts 800ms apart and 18 sparkles 260ms
// apart, then keeps spawning a heart every 4.2s and a sparkle every 1.9s
// for as long as the scheduler runs. The returned handles include the two
// repeating tasks last.
func (e *Engine) InitAmbientField() []schedule.Handle {
	handles := make([]schedule.Handle, 0, initialAmbientHearts+initialAmbientSparkles+2)
	for i := 0; i < initialAmbientHearts; i++ {
		handles = append(handles, e.sched.After(time.Duration(i)*initialHeartStagger, func() { e.SpawnAmbientHeart() }))
	}
	for i := 0; i < initialAmbientSparkles; i++ {
		handles = append(handles, e.sched.After(time.Duration(i)*initialSparkleStagger, func() { e.SpawnAmbientSparkle() }))
	}
	handles = append(handles,
		e.sched.Every(ambientHeartInterval, func() { e.SpawnAmbientHeart() }),
		e.sched.Every(ambientSparkleInterval, func() { e.SpawnAmbientSparkle() }),
	)
	return handles
}

// SpawnCursorHeart drops a small heart at p unless one was dropped less
// than 45ms ago (scheduler time). It reports whether a heart was spawned.
func (e *Engine) SpawnCursorHeart(p types.Point) bool {
	now := e.sched.Now()
	if e.cursorSpawned && now-e.lastCursorHeart < cursorTrailThrottle {
		return false
	}
	e.lastCursorHeart = now
	e.cursorSpawned = true

	id := e.em.CreateEntity()
	ecs.AddComponent(e.em, id, &components.PositionComponent{X: p.X, Y: p.Y})
	ecs.AddComponent(e.em, id, &components.ParticleComponent{
		Kind:     components.ParticleCursorHeart,
		OriginX:  p.X,
		OriginY:  p.Y,
		DY:       -30,
		Duration: cursorHeartDuration,
		Size:     8,
		Hue:      e.rng.Intn(paletteSize),
	})
	return true
}

// SpawnModalHeart adds a heart that rises from the bottom of area to its
// top every 4s, starting after delay seconds. xFrac in [0, 1) places it
// across area, inset 20px from each side. The heart loops until the
// caller destroys it.
func (e *Engine) SpawnModalHeart(area types.Rect, xFrac, delay float64, hue int) ecs.EntityID {
	x := area.X + modalHeartInset + xFrac*(area.Width-2*modalHeartInset)
	y := area.Y + area.Height

	id := e.em.CreateEntity()
	ecs.AddComponent(e.em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(e.em, id, &components.ParticleComponent{
		Kind:     components.ParticleModalHeart,
		OriginX:  x,
		OriginY:  y,
		DY:       -area.Height,
		Duration: modalHeartRise,
		Delay:    delay,
		Loops:    true,
		Size:     modalHeartSize,
		Hue:      hue,
	})
	return id
}
