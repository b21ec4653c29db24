// Package app wraps start-up: it reads the configuration, opens audio,
// builds the proposal scene and exposes the result as an ebiten.Game.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/Mandrupnicolai/ValentinePage/pkg/clock"
	"github.com/Mandrupnicolai/ValentinePage/pkg/config"
	"github.com/Mandrupnicolai/ValentinePage/pkg/embedded"
	"github.com/Mandrupnicolai/ValentinePage/pkg/game"
	"github.com/Mandrupnicolai/ValentinePage/pkg/interaction"
	"github.com/Mandrupnicolai/ValentinePage/pkg/scenes"
	"github.com/Mandrupnicolai/ValentinePage/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config holds the command-line options.
type Config struct {
	// Verbose enables log output; logs are discarded otherwise.
	Verbose bool
	// ConfigPath names a YAML file to use instead of the embedded default.
	ConfigPath string
	// Seed seeds evasion and heart placement; 0 picks a time-based seed.
	Seed int64
	// Fullscreen starts in fullscreen mode.
	Fullscreen bool
	// NoAudio disables sound regardless of the config file.
	NoAudio bool
}

// App implements ebiten.Game around a single SceneManager.
type App struct {
	cfg          *config.AppConfig
	sceneManager *game.SceneManager
	audioManager *game.AudioManager
	closed       bool
}

// NewApp loads configuration and builds the scene graph.
//
// embedded.Init must run first unless cfg.ConfigPath is set.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	appCfg, err := loadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.NoAudio {
		appCfg.Audio.Enabled = false
	}
	log.Printf("[Config] window %dx%d, audio=%v, ambient=%v",
		appCfg.Window.Width, appCfg.Window.Height, appCfg.Audio.Enabled, appCfg.Effects.Ambient)

	var audioContext *audio.Context
	if appCfg.Audio.Enabled {
		audioContext = audio.NewContext(appCfg.Audio.SampleRate)
	}
	audioManager := game.NewAudioManager(audioContext, appCfg.Audio)
	log.Printf("[App] AudioManager initialized (enabled=%v)", audioManager.Enabled())

	var cues interaction.AudioCues
	if audioManager.Enabled() {
		cues = audioManager
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	scene, err := scenes.NewProposalScene(scenes.ProposalOptions{
		Config: appCfg,
		Audio:  cues,
		Input:  systems.NewEbitenInput(),
		Clock:  clock.Real(),
		Rand:   rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create proposal scene: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		cfg:          appCfg,
		sceneManager: sceneManager,
		audioManager: audioManager,
	}, nil
}

// loadConfig reads path, or the embedded default when path is empty.
func loadConfig(path string) (*config.AppConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading %s", path)
		return config.LoadAppConfig(path)
	}
	data, err := embedded.ReadFile(embedded.DefaultConfigPath)
	if err != nil {
		log.Printf("[Config] Warning: embedded config unavailable, using defaults: %v", err)
		return config.DefaultAppConfig(), nil
	}
	cfg, err := config.ParseAppConfig(data)
	if err != nil {
		return nil, fmt.Errorf("embedded config: %w", err)
	}
	return cfg, nil
}

// WindowConfig returns the window settings main applies before RunGame.
func (a *App) WindowConfig() config.WindowConfig {
	return a.cfg.Window
}

// Update advances one tick. It returns ebiten.Termination once the window
// is being closed and everything has shut down.
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.Shutdown()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw renders the current scene.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen letterboxes the scaled screen in black.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout returns the logical screen size from the config; ebiten scales
// it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// Shutdown disposes the scene and stops all audio. Safe to call twice.
func (a *App) Shutdown() {
	if a.closed {
		return
	}
	a.closed = true
	a.sceneManager.Shutdown()
	a.audioManager.Close()
	log.Printf("[App] Shutdown complete")
}
