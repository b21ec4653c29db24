package components

import "github.com/Mandrupnicolai/ValentinePage/pkg/types"

// ButtonRole tells the renderer which widget a button entity is.
type ButtonRole int

const (
	ButtonAccept ButtonRole = iota
	ButtonDecline
	ButtonGift
	ButtonBackToHome
	ButtonModalClose
	ButtonBackdrop
	// ButtonModalCard absorbs clicks on the modal body so they never reach
	// the backdrop.
	ButtonModalCard
)

// ButtonComponent holds a clickable element's data: label, size, state and
// the callbacks the ButtonSystem fires. Pure data; the system owns behaviour.
type ButtonComponent struct {
	Role  ButtonRole
	Label string

	Width  float64
	Height float64

	// Page the button lives on; buttons on other pages are inert.
	Page types.Page
	// Modal buttons only respond while a modal is open; page buttons only
	// while none is.
	Modal bool

	State   UIState
	Enabled bool
	Hovered bool

	OnClick      func()
	OnHoverEnter func()
	OnHoverLeave func()
}
