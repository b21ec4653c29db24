package interaction

import "github.com/Mandrupnicolai/ValentinePage/pkg/types"

// Event is a user action delivered to Orchestrator.Dispatch.
type Event interface {
	event()
}

type (
	// AcceptEvent: the accept button was clicked.
	AcceptEvent struct{}
	// DeclineHoverEvent: the pointer reached the decline button.
	DeclineHoverEvent struct{}
	// DeclineLeaveEvent: the pointer left the decline button.
	DeclineLeaveEvent struct{}
	// GiftOpenEvent: a gift card was clicked.
	GiftOpenEvent struct{ Kind types.GiftKind }
	// ModalCloseEvent: the close button or the backdrop was clicked.
	ModalCloseEvent struct{}
	// BackToHomeEvent: the back-to-home button was clicked.
	BackToHomeEvent struct{}
	// ToggleMusicEvent: the music toggle key was pressed.
	ToggleMusicEvent struct{}
	// GestureEvent: a click anywhere. Key presses do not count.
	GestureEvent struct{}
)

func (AcceptEvent) event()       {}
func (DeclineHoverEvent) event() {}
func (DeclineLeaveEvent) event() {}
func (GiftOpenEvent) event()     {}
func (ModalCloseEvent) event()   {}
func (BackToHomeEvent) event()   {}
func (ToggleMusicEvent) event()  {}
func (GestureEvent) event()      {}
