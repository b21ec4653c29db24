// Package utils holds small math helpers shared by the systems.
package utils

import "math"

// Easing functions map progress t in [0, 1] to eased progress.
// Reference: https://easings.net/

// EaseLinear returns t unchanged.
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic starts fast and settles slowly: 1 - (1-t)³.
// Burst particles use it so they fly out and hang in the air.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInQuad starts slowly: t².
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad is a softer EaseOutCubic: 1 - (1-t)².
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseOutBack overshoots the target slightly before settling, close to the
// cubic-bezier(0.24, 0.9, 0.32, 1.4) curve the decline button moves with.
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

// EaseInOutSine is a gentle symmetric curve used for twinkling.
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Lerp interpolates between a (t=0) and b (t=1).
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
