package components

// UIState is the interaction state of a UI element.
type UIState int

const (
	// UINormal is the resting state.
	UINormal UIState = iota
	// UIHovered means the pointer is over the element.
	UIHovered
	// UIClicked means the primary button is held over the element.
	UIClicked
	// UIDisabled means the element ignores input.
	UIDisabled
)
