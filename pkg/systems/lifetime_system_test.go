package systems

import (
	"testing"

	"github.com/Mandrupnicolai/ValentinePage/pkg/components"
	"github.com/Mandrupnicolai/ValentinePage/pkg/ecs"
)

func TestLifetimeSystemRemovesExpired(t *testing.T) {
	tests := []struct {
		name      string
		max       float64
		steps     []float64
		wantAlive bool
		wantAge   float64
	}{
		{"half way", 10, []float64{5}, true, 5},
		{"overshoot", 10, []float64{12}, false, 12},
		{"exact end", 2, []float64{1, 1}, false, 2},
		{"one frame short", 1, []float64{0.25, 0.25, 0.25, 0.2}, true, 0.95},
		{"sparkle grace", 3.5, []float64{3, 0.4, 0.2}, false, 3.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			ls := NewLifetimeSystem(em)
			id := em.CreateEntity()
			lt := &components.LifetimeComponent{MaxLifetime: tt.max}
			ecs.AddComponent(em, id, lt)

			for _, dt := range tt.steps {
				ls.Update(dt)
				em.RemoveMarkedEntities()
			}

			if got := em.Exists(id); got != tt.wantAlive {
				t.Errorf("alive = %v, want %v", got, tt.wantAlive)
			}
			if diff := lt.CurrentLifetime - tt.wantAge; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("age = %v, want %v", lt.CurrentLifetime, tt.wantAge)
			}
			if lt.IsExpired == tt.wantAlive {
				t.Errorf("IsExpired = %v with alive = %v", lt.IsExpired, tt.wantAlive)
			}
		})
	}
}

func TestLifetimeSystemLeavesOtherEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	ls := NewLifetimeSystem(em)

	timed := em.CreateEntity()
	ecs.AddComponent(em, timed, &components.LifetimeComponent{MaxLifetime: 0.5})
	plain := addParticle(em, &components.ParticleComponent{Kind: components.ParticleModalHeart, Duration: 4, Loops: true})

	ls.Update(1)
	em.RemoveMarkedEntities()

	if em.Exists(timed) {
		t.Error("expired entity still present")
	}
	if !em.Exists(plain) {
		t.Error("entity without a lifetime was removed")
	}
}
