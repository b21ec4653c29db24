// Package embedded gives other packages read access to the files compiled
// into the binary.
//
// //go:embed can only reach files below the declaring package, so the
// embed.FS values live in the root package (embed.go) and are handed over
// with Init before anything is loaded. Paths start with "assets/" or
// "data/", which selects the filesystem.
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultConfigPath is the embedded default configuration.
const DefaultConfigPath = "data/valentine.yaml"

// ErrNotInitialized is returned by every accessor before Init.
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	assetsFS fs.FS
	dataFS   fs.FS
)

// Init installs the embedded filesystems. Passing nil for both resets the
// package.
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
}

// IsInitialized reports whether Init has installed any filesystem.
func IsInitialized() bool {
	return assetsFS != nil || dataFS != nil
}

// resolve normalizes path to the slash-separated form embed.FS expects and
// picks the filesystem its prefix names.
func resolve(path string) (fs.FS, string, error) {
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")

	var fsys fs.FS
	switch {
	case strings.HasPrefix(path, "assets/"):
		fsys = assetsFS
	case strings.HasPrefix(path, "data/"):
		fsys = dataFS
	default:
		return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
	}
	if fsys == nil {
		return nil, "", ErrNotInitialized
	}
	return fsys, path, nil
}

// ReadFile returns the contents of an embedded file.
func ReadFile(path string) ([]byte, error) {
	fsys, p, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, p)
}

// Exists reports whether path is an embedded file.
func Exists(path string) bool {
	fsys, p, err := resolve(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(fsys, p)
	return err == nil
}
