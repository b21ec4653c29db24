package main

import (
	"fmt"
	"os"

	"github.com/Mandrupnicolai/ValentinePage/pkg/app"
	"github.com/Mandrupnicolai/ValentinePage/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

var (
	verbose    = pflag.BoolP("verbose", "v", false, "Enable verbose logging")
	configPath = pflag.String("config", "", "Path to a YAML config file (default: embedded data/valentine.yaml)")
	seed       = pflag.Int64("seed", 0, "Random seed for evasion and heart placement (0 = time based)")
	fullscreen = pflag.Bool("fullscreen", false, "Start in fullscreen (F11 toggles)")
	noAudio    = pflag.Bool("no-audio", false, "Disable all sound")
)

func main() {
	pflag.Parse()

	embedded.Init(assetsFS, dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		Fullscreen: *fullscreen,
		NoAudio:    *noAudio,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}

	win := a.WindowConfig()
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(a); err != nil {
		fmt.Fprintf(os.Stderr, "game loop: %v\n", err)
		os.Exit(1)
	}
}
