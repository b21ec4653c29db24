//go:build !mobile

// Package mobile is empty outside mobile builds; see mobile.go.
package mobile

// Dummy is exported so the package is non-empty without the mobile tag.
func Dummy() {}
