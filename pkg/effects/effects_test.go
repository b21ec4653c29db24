package effects

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/Mandrupnicolai/ValentinePage/pkg/components"
	"github.com/Mandrupnicolai/ValentinePage/pkg/ecs"
	"github.com/Mandrupnicolai/ValentinePage/pkg/schedule"
	"github.com/Mandrupnicolai/ValentinePage/pkg/systems"
	"github.com/Mandrupnicolai/ValentinePage/pkg/types"
)

type fixedViewport types.Size

func (v fixedViewport) Viewport() types.Size { return types.Size(v) }

func newTestEngine(seed int64) (*Engine, *ecs.EntityManager, *schedule.Scheduler) {
	em := ecs.NewEntityManager()
	sched := schedule.New()
	e := NewEngine(em, sched, rand.New(rand.NewSource(seed)), fixedViewport{Width: 800, Height: 600})
	return e, em, sched
}

func countKind(em *ecs.EntityManager, kinds ...components.ParticleKind) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		for _, k := range kinds {
			if p.Kind == k {
				n++
			}
		}
	}
	return n
}

func TestSpawnExplosionCount(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"default", 0, DefaultBurst},
		{"negative", -3, DefaultBurst},
		{"accept", 30, 30},
		{"celebration", 42, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, em, _ := newTestEngine(1)
			ids := e.SpawnExplosion(types.Point{X: 400, Y: 300}, tt.count)
			if len(ids) != tt.want {
				t.Errorf("spawned %d ids, want %d", len(ids), tt.want)
			}
			if em.Count() != tt.want {
				t.Errorf("entity count = %d, want %d", em.Count(), tt.want)
			}
		})
	}
}

func TestSpawnExplosionParticles(t *testing.T) {
	e, em, _ := newTestEngine(7)
	origin := types.Point{X: 120, Y: 80}
	ids := e.SpawnExplosion(origin, 500)

	hearts := 0
	for _, id := range ids {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		switch p.Kind {
		case components.ParticleExplosionHeart:
			hearts++
		case components.ParticleExplosionConfetti:
		default:
			t.Fatalf("unexpected kind %v", p.Kind)
		}
		if p.OriginX != origin.X || p.OriginY != origin.Y {
			t.Errorf("origin = (%v, %v), want %v", p.OriginX, p.OriginY, origin)
		}
		speed := math.Hypot(p.DX, p.DY)
		if speed < minBurstSpeed-1e-9 || speed >= minBurstSpeed+burstSpeedRange {
			t.Errorf("speed %v outside [80, 240)", speed)
		}
		if p.Loops {
			t.Error("burst particle must not loop")
		}
	}

	// 60/40 split, loosely
	if ratio := float64(hearts) / 500; ratio < 0.5 || ratio > 0.7 {
		t.Errorf("heart ratio = %v, want about 0.6", ratio)
	}
}

func TestExplosionParticlesRemoveThemselves(t *testing.T) {
	e, em, _ := newTestEngine(3)
	ps := systems.NewParticleSystem(em)

	e.SpawnExplosion(types.Point{X: 10, Y: 10}, 0)

	ps.Update(1.0)
	em.RemoveMarkedEntities()
	if em.Count() == 0 {
		t.Fatal("all particles gone before the longest animation ended")
	}

	ps.Update(0.4)
	em.RemoveMarkedEntities()
	if em.Count() != 0 {
		t.Errorf("%d particles left after every animation ended", em.Count())
	}
}

func TestAmbientParticlesExpire(t *testing.T) {
	e, em, _ := newTestEngine(5)
	lifetimes := systems.NewLifetimeSystem(em)

	heart := e.SpawnAmbientHeart()
	sparkle := e.SpawnAmbientSparkle()

	hp, _ := ecs.GetComponent[*components.ParticleComponent](em, heart)
	if hp.Duration < ambientHeartMinDuration || hp.Duration >= ambientHeartMinDuration+ambientHeartDurationRange {
		t.Errorf("heart duration %v outside [10, 26)", hp.Duration)
	}
	if hp.OriginY <= 600 {
		t.Errorf("heart starts at y=%v, want below the viewport", hp.OriginY)
	}
	sp, _ := ecs.GetComponent[*components.ParticleComponent](em, sparkle)
	if sp.Duration < ambientSparkleMinDuration || sp.Duration >= ambientSparkleMinDuration+ambientSparkleDurationRange {
		t.Errorf("sparkle duration %v outside [2, 4.5)", sp.Duration)
	}

	lifetimes.Update(sp.Duration + ambientSparkleGrace)
	em.RemoveMarkedEntities()
	if em.Exists(sparkle) {
		t.Error("sparkle outlived its duration plus grace")
	}
	if !em.Exists(heart) {
		t.Error("heart removed before its duration")
	}

	lifetimes.Update(ambientHeartMinDuration + ambientHeartDurationRange + ambientHeartGrace)
	em.RemoveMarkedEntities()
	if em.Exists(heart) {
		t.Error("heart outlived its duration plus grace")
	}
}

func TestInitAmbientField(t *testing.T) {
	e, em, sched := newTestEngine(11)
	handles := e.InitAmbientField()

	if len(handles) != initialAmbientHearts+initialAmbientSparkles+2 {
		t.Fatalf("got %d handles", len(handles))
	}

	sched.Advance(0)
	if h, s := countKind(em, components.ParticleAmbientHeart), countKind(em, components.ParticleAmbientSparkle); h != 1 || s != 1 {
		t.Errorf("at t=0: hearts=%d sparkles=%d, want 1 and 1", h, s)
	}

	// 13 * 800ms: every staggered spawn has happened, plus the repeats at
	// 4.2s, 8.4s (hearts) and 1.9s .. 9.5s (sparkles).
	sched.Advance(10400 * time.Millisecond)
	if h := countKind(em, components.ParticleAmbientHeart); h != 16 {
		t.Errorf("hearts = %d, want 16", h)
	}
	if s := countKind(em, components.ParticleAmbientSparkle); s != 23 {
		t.Errorf("sparkles = %d, want 23", s)
	}

	// only the two repeating tasks remain
	if sched.Len() != 2 {
		t.Errorf("scheduler has %d tasks, want 2", sched.Len())
	}
	for _, h := range handles[len(handles)-2:] {
		if !sched.Active(h) {
			t.Errorf("repeating handle %d not active", h)
		}
	}
}

func TestSpawnCursorHeartThrottle(t *testing.T) {
	e, em, sched := newTestEngine(2)
	p := types.Point{X: 50, Y: 50}

	if !e.SpawnCursorHeart(p) {
		t.Fatal("first cursor heart not spawned")
	}
	if e.SpawnCursorHeart(p) {
		t.Error("second heart in the same instant was spawned")
	}
	sched.Advance(44 * time.Millisecond)
	if e.SpawnCursorHeart(p) {
		t.Error("heart spawned 44ms after the previous one")
	}
	sched.Advance(time.Millisecond)
	if !e.SpawnCursorHeart(p) {
		t.Error("heart not spawned 45ms after the previous one")
	}
	if n := countKind(em, components.ParticleCursorHeart); n != 2 {
		t.Errorf("cursor hearts = %d, want 2", n)
	}
}

func TestSpawnModalHeart(t *testing.T) {
	e, em, _ := newTestEngine(3)
	ps := systems.NewParticleSystem(em)
	ls := systems.NewLifetimeSystem(em)

	area := types.Rect{X: 160, Y: 130, Width: 480, Height: 340}
	id := e.SpawnModalHeart(area, 0.5, 2.0, 7)

	p, ok := ecs.GetComponent[*components.ParticleComponent](em, id)
	if !ok {
		t.Fatal("modal heart has no particle component")
	}
	if p.Kind != components.ParticleModalHeart || !p.Loops || p.Delay != 2.0 || p.Hue != 7 {
		t.Errorf("particle = %+v", p)
	}
	// 160 + 20 + 0.5*(480-40)
	if p.OriginX != 400 || p.OriginY != 470 || p.DY != -340 {
		t.Errorf("origin (%v, %v) dy %v, want (400, 470) dy -340", p.OriginX, p.OriginY, p.DY)
	}
	if ecs.HasComponent[*components.LifetimeComponent](em, id) {
		t.Error("modal heart must not carry a lifetime")
	}

	for i := 0; i < 20; i++ {
		ps.Update(1)
		ls.Update(1)
		em.RemoveMarkedEntities()
	}
	if !em.Exists(id) {
		t.Fatal("modal heart removed while its modal is still open")
	}

	em.DestroyEntity(id)
	em.RemoveMarkedEntities()
	if countKind(em, components.ParticleModalHeart) != 0 {
		t.Error("modal heart survived explicit destruction")
	}
}
