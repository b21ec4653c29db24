package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the program with its own update and rendering.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to screen.
	Draw(screen *ebiten.Image)
}

// Disposable is implemented by scenes that hold resources (audio players,
// scheduled tasks) to release when the window closes or the scene is
// replaced.
type Disposable interface {
	Dispose()
}
