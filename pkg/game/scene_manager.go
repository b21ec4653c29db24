package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager runs exactly one active scene at a time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates a manager with no active scene; use SwitchTo to
// set the first one.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo makes scene the active scene, disposing of the previous one if
// it holds resources.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	if d, ok := sm.currentScene.(Disposable); ok {
		log.Printf("[SceneManager] Disposing %T", sm.currentScene)
		d.Dispose()
	}
	sm.currentScene = scene
}

// GetCurrentScene returns the active scene, nil if none.
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Shutdown disposes of the active scene. Called when the window closes.
func (sm *SceneManager) Shutdown() {
	if d, ok := sm.currentScene.(Disposable); ok {
		d.Dispose()
	}
	sm.currentScene = nil
}

// Update updates the active scene, if any.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the active scene, if any.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
