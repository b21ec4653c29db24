package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState is one frame's pointer input, mouse or touch.
type PointerState struct {
	X, Y         float64
	Pressed      bool
	JustReleased bool
	// Moved is set when the position differs from the previous frame.
	Moved bool
}

// InputSource supplies pointer state once per frame.
type InputSource interface {
	Pointer() PointerState
}

// EbitenInput reads the pointer from ebiten, preferring an active touch
// over the mouse.
type EbitenInput struct {
	lastX, lastY int
	touchID      ebiten.TouchID
	touching     bool
}

// NewEbitenInput returns an InputSource backed by ebiten's input state.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// Pointer samples the current frame.
func (in *EbitenInput) Pointer() PointerState {
	var x, y int
	var pressed, released bool

	touchIDs := ebiten.AppendTouchIDs(nil)
	switch {
	case len(touchIDs) > 0:
		in.touchID = touchIDs[0]
		in.touching = true
		x, y = ebiten.TouchPosition(in.touchID)
		pressed = true
	case in.touching && inpututil.IsTouchJustReleased(in.touchID):
		in.touching = false
		x, y = in.lastX, in.lastY
		released = true
	default:
		x, y = ebiten.CursorPosition()
		pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	}

	moved := x != in.lastX || y != in.lastY
	in.lastX, in.lastY = x, y

	return PointerState{
		X:            float64(x),
		Y:            float64(y),
		Pressed:      pressed,
		JustReleased: released,
		Moved:        moved,
	}
}
