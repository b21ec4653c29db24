package systems

import (
	"github.com/Mandrupnicolai/ValentinePage/pkg/components"
	"github.com/Mandrupnicolai/ValentinePage/pkg/ecs"
	"github.com/Mandrupnicolai/ValentinePage/pkg/types"
)

// ButtonSystem resolves pointer input against button entities.
//
// Only the topmost button under the pointer is hovered; later-created
// buttons sit on top. Buttons on another page, or modal buttons while no
// modal is open (and page buttons while one is), are inert. Hover changes
// fire OnHoverEnter/OnHoverLeave; a release over the hovered button fires
// OnClick.
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	input         InputSource

	page      types.Page
	modalOpen bool

	last PointerState
}

// NewButtonSystem creates a button system reading pointer state from input.
func NewButtonSystem(em *ecs.EntityManager, input InputSource) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		input:         input,
		page:          types.PageGreeting,
	}
}

// SetContext tells the system which page is showing and whether a modal
// covers it.
func (s *ButtonSystem) SetContext(page types.Page, modalOpen bool) {
	s.page = page
	s.modalOpen = modalOpen
}

// LastPointer returns the pointer state sampled by the latest Update.
func (s *ButtonSystem) LastPointer() PointerState {
	return s.last
}

// Update samples the pointer and updates every button's state.
func (s *ButtonSystem) Update(deltaTime float64) {
	ptr := s.input.Pointer()
	s.last = ptr
	pointer := types.Point{X: ptr.X, Y: ptr.Y}

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	// topmost = last in creation order
	var target ecs.EntityID
	for i := len(entities) - 1; i >= 0; i-- {
		id := entities[i]
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !s.isLive(button) {
			continue
		}
		if ButtonRect(button, pos).Contains(pointer) {
			target = id
			break
		}
	}

	for _, id := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)

		if !s.isLive(button) {
			if button.Hovered {
				button.Hovered = false
				if button.OnHoverLeave != nil {
					button.OnHoverLeave()
				}
			}
			if !button.Enabled {
				button.State = components.UIDisabled
			} else {
				button.State = components.UINormal
			}
			continue
		}

		isHovered := id == target
		switch {
		case isHovered && !button.Hovered:
			button.Hovered = true
			if button.OnHoverEnter != nil {
				button.OnHoverEnter()
			}
		case !isHovered && button.Hovered:
			button.Hovered = false
			if button.OnHoverLeave != nil {
				button.OnHoverLeave()
			}
		}

		if !isHovered {
			button.State = components.UINormal
			continue
		}

		if ptr.Pressed {
			button.State = components.UIClicked
		} else if ptr.JustReleased {
			// fire on release
			if button.OnClick != nil {
				button.OnClick()
			}
			button.State = components.UIHovered
		} else {
			button.State = components.UIHovered
		}
	}
}

func (s *ButtonSystem) isLive(button *components.ButtonComponent) bool {
	if !button.Enabled {
		return false
	}
	if button.Modal {
		return s.modalOpen
	}
	return !s.modalOpen && button.Page == s.page
}

// ButtonRect is the clickable area of a button at pos.
func ButtonRect(button *components.ButtonComponent, pos *components.PositionComponent) types.Rect {
	return types.Rect{X: pos.X, Y: pos.Y, Width: button.Width, Height: button.Height}
}
