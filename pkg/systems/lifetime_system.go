package systems

import (
	"github.com/Mandrupnicolai/ValentinePage/pkg/components"
	"github.com/Mandrupnicolai/ValentinePage/pkg/ecs"
)

// LifetimeSystem is the removal timer for particles that loop their
// animation: once a LifetimeComponent runs out, its entity is marked for
// the end-of-frame sweep.
type LifetimeSystem struct {
	em *ecs.EntityManager
}

// NewLifetimeSystem creates a lifetime system over em.
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{em: em}
}

// Update charges dt seconds against every lifetime.
func (s *LifetimeSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.em) {
		lt, _ := ecs.GetComponent[*components.LifetimeComponent](s.em, id)
		if age(lt, dt) {
			s.em.DestroyEntity(id)
		}
	}
}

// age adds dt to lt and reports whether it has run out. Expiry is sticky.
func age(lt *components.LifetimeComponent, dt float64) bool {
	lt.CurrentLifetime += dt
	lt.IsExpired = lt.IsExpired || lt.CurrentLifetime >= lt.MaxLifetime
	return lt.IsExpired
}
