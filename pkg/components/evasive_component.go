package components

// EvasiveComponent is the decline button's visual state.
type EvasiveComponent struct {
	// Free is set after the first escape; the button then ignores its page
	// layout slot and stays where the tween put it.
	Free bool
	// Panic is the short-lived jitter tag applied on each escape.
	Panic bool
	// Phrase is the micro-text shown above the button while ShowPhrase.
	Phrase     string
	ShowPhrase bool
}
