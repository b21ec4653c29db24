//go:build mobile

// Package mobile is the ebitenmobile binding entry point for Android (.aar)
// and iOS (.xcframework) builds.
//
// Build with the mobile tag:
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.valentine.page -o build/android/valentine.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Valentine.xcframework ./mobile
//
// No data files are embedded here; the app runs on the built-in defaults
// and touch input drives the same buttons as the mouse.
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/Mandrupnicolai/ValentinePage/pkg/app"
)

func init() {
	a, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	mobile.SetGame(a)
}

// Dummy is exported so ebitenmobile recognizes the package.
func Dummy() {}
