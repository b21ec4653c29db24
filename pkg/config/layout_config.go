package config

import "time"

// Window defaults. The logical screen is the window size; nothing scales.
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultWindowTitle  = "Will you be my Valentine? 💕"

	DefaultMusicVolume = 0.15
	DefaultSoundVolume = 1.0
	DefaultSampleRate  = 48000

	DefaultChocolateImage = "assets/chocolate.png"
)

// Behaviour constants of the proposal flow.
const (
	// AcceptBurstCount is the burst size at the accept button.
	AcceptBurstCount = 30

	// CelebrationBurstCount is the burst at the screen centre once every
	// gift is open.
	CelebrationBurstCount = 42

	// CelebrationDelay separates the third gift opening and its burst.
	CelebrationDelay = 350 * time.Millisecond

	// DeclinePanicDuration is how long the decline button shakes after
	// dodging.
	DeclinePanicDuration = 250 * time.Millisecond

	// EvasionMargin keeps the decline button this far from screen edges.
	EvasionMargin = 10.0

	// CountdownHearts is the number of hearts drifting in the countdown
	// modal, each at a random x with a start delay below
	// CountdownHeartMaxDelay.
	CountdownHearts        = 8
	CountdownHeartMaxDelay = 3.0
)

// Greeting page layout.
const (
	TitleY = 150.0

	ButtonWidth  = 160.0
	ButtonHeight = 52.0
	ButtonGap    = 40.0
	ButtonRowY   = 300.0
)

// Gift page layout.
const (
	GiftCardWidth  = 180.0
	GiftCardHeight = 200.0
	GiftCardGap    = 36.0
	GiftRowY       = 200.0

	BackButtonWidth  = 200.0
	BackButtonHeight = 44.0
	BackButtonY      = 480.0
)

// Modal layout.
const (
	ModalWidth  = 480.0
	ModalHeight = 340.0

	CloseButtonWidth  = 120.0
	CloseButtonHeight = 40.0
	// CloseButtonInset is the distance from the modal's bottom edge.
	CloseButtonInset = 24.0
)

// ButtonRowX returns the x of the accept and decline buttons, centred as a
// pair on a screen screenWidth wide.
func ButtonRowX(screenWidth float64) (accept, decline float64) {
	total := 2*ButtonWidth + ButtonGap
	accept = (screenWidth - total) / 2
	decline = accept + ButtonWidth + ButtonGap
	return accept, decline
}

// GiftCardX returns the x of gift card i (0-based) of n, centred on the
// screen.
func GiftCardX(screenWidth float64, i, n int) float64 {
	total := float64(n)*GiftCardWidth + float64(n-1)*GiftCardGap
	return (screenWidth-total)/2 + float64(i)*(GiftCardWidth+GiftCardGap)
}

// ModalOrigin returns the top-left corner of the centred modal card.
func ModalOrigin(screenWidth, screenHeight float64) (float64, float64) {
	return (screenWidth - ModalWidth) / 2, (screenHeight - ModalHeight) / 2
}
