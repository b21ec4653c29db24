// embed.go - embedded assets and default data.
// //go:embed only reaches files below this directory, so the declarations
// live at the repository root next to assets/ and data/.
package main

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/valentine.yaml
var dataFS embed.FS
