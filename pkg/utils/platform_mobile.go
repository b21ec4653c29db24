//go:build mobile

package utils

// IsMobile always reports true in mobile builds.
func IsMobile() bool {
	return true
}
