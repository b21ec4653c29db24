package scenes

import (
	"github.com/Mandrupnicolai/ValentinePage/pkg/game"
)

// Scene is game.Scene, re-exported so callers can stay in this package.
type Scene = game.Scene
