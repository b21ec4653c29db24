//go:build !mobile

package utils

import "os"

// MobileEmulateEnv forces mobile behaviour on desktop builds when set to "1".
const MobileEmulateEnv = "VALENTINE_MOBILE_EMULATE"

// IsMobile reports whether the program runs on a touch device without a
// keyboard. Desktop builds return false unless MobileEmulateEnv is set.
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
