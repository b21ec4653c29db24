package systems

import (
	"github.com/Mandrupnicolai/ValentinePage/pkg/components"
	"github.com/Mandrupnicolai/ValentinePage/pkg/ecs"
	"github.com/Mandrupnicolai/ValentinePage/pkg/utils"
)

// TweenSystem drives TweenComponents, moving their entity's position.
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem creates a tween system over em.
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{entityManager: em}
}

// Update advances every active tween by dt seconds.
func (s *TweenSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith2[*components.TweenComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		tw, _ := ecs.GetComponent[*components.TweenComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !tw.Active {
			continue
		}

		tw.Elapsed += dt
		t := 1.0
		if tw.Duration > 0 {
			t = utils.Clamp01(tw.Elapsed / tw.Duration)
		}
		e := utils.EaseOutBack(t)
		pos.X = utils.Lerp(tw.FromX, tw.ToX, e)
		pos.Y = utils.Lerp(tw.FromY, tw.ToY, e)

		if t >= 1 {
			pos.X, pos.Y = tw.ToX, tw.ToY
			tw.Active = false
		}
	}
}

// StartTween retargets id's tween from its current position to (x, y).
// A tween already in flight is replaced, starting from wherever the entity
// is right now.
func StartTween(em *ecs.EntityManager, id ecs.EntityID, x, y, duration float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return
	}
	tw, ok := ecs.GetComponent[*components.TweenComponent](em, id)
	if !ok {
		tw = &components.TweenComponent{}
		ecs.AddComponent(em, id, tw)
	}
	*tw = components.TweenComponent{
		FromX:    pos.X,
		FromY:    pos.Y,
		ToX:      x,
		ToY:      y,
		Duration: duration,
		Active:   true,
	}
}
