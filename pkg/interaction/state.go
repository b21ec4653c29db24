// Package interaction drives the proposal flow. The Orchestrator receives
// user events, keeps the single State and tells the presentation layer,
// the countdown and the particle effects what to do. It never touches
// input devices or drawing; everything outside goes through the ports in
// ports.go.
package interaction

import (
	"github.com/Mandrupnicolai/ValentinePage/pkg/schedule"
	"github.com/Mandrupnicolai/ValentinePage/pkg/types"
)

// State is the whole mutable state of the flow.
//
// Invariants: GiftsOpenedCount == len(OpenedKinds), so each gift kind
// counts once; ActiveCountdown is the only live countdown task, zero when
// none runs.
type State struct {
	MusicEnabled bool
	// HasInteracted is set by the first gesture and never reset.
	HasInteracted bool

	GiftsOpenedCount int
	OpenedKinds      map[types.GiftKind]bool

	DeclineAttemptCount int

	ActiveCountdown schedule.Handle

	Page types.Page
	// Modal is the open presentation, GiftUnknown when none is open.
	Modal types.GiftKind
}

// NewState returns the state of a freshly loaded page: the greeting, no
// modal, nothing opened.
func NewState() *State {
	return &State{
		OpenedKinds: make(map[types.GiftKind]bool, len(types.AllGifts)),
		Page:        types.PageGreeting,
		Modal:       types.GiftUnknown,
	}
}

// ModalOpen reports whether a gift presentation covers the page.
func (s *State) ModalOpen() bool {
	return s.Modal != types.GiftUnknown
}

// AllGiftsOpened reports whether every gift has been opened at least once.
func (s *State) AllGiftsOpened() bool {
	return s.GiftsOpenedCount == len(types.AllGifts)
}
