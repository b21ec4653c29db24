package interaction

import (
	"github.com/Mandrupnicolai/ValentinePage/pkg/countdown"
	"github.com/Mandrupnicolai/ValentinePage/pkg/ecs"
	"github.com/Mandrupnicolai/ValentinePage/pkg/sound"
	"github.com/Mandrupnicolai/ValentinePage/pkg/types"
)

// ViewportQuery answers geometry questions about the rendered page.
type ViewportQuery interface {
	Viewport() types.Size
	// Bounds returns the on-screen rectangle of e, false if e is not shown.
	Bounds(e types.Element) (types.Rect, bool)
}

// PresentationSink applies the orchestrator's decisions to the screen.
type PresentationSink interface {
	ShowPage(p types.Page)
	OpenModal(p Presentation)
	CloseModal()
	RenderCountdown(b countdown.Breakdown)
	MarkGiftOpened(kind types.GiftKind)

	ShowDeclinePhrase(phrase string)
	HideDeclinePhrase()
	SetDeclinePanic(on bool)
	// MoveDecline glides the decline button to pos over speed seconds.
	MoveDecline(pos types.Point, speed float64)
}

// AudioCues plays sound. Any call may fail; callers treat failures as
// non-fatal.
type AudioCues interface {
	PlaySound(c sound.Cue) error
	StartMusic() error
	StopMusic()
}

// Burster spawns particle explosions.
type Burster interface {
	SpawnExplosion(origin types.Point, count int) []ecs.EntityID
}
