// SPDX-License-Identifier: Unlicense OR MIT

// Package anim implements the time based easing used by the cosmetic
// animations of the material styles, such as the press ink expansion.
// Easing is purely a rendering concern and never feeds back into
// widget values.
package anim

import "time"

// Progress reports how far an animation that began at start has come
// at time now, as a fraction of the duration d. The result is clamped
// to [0, 1]; a non-positive duration reports a finished animation.
func Progress(now, start time.Time, d time.Duration) float32 {
	if d <= 0 {
		return 1
	}
	t := float32(now.Sub(start).Seconds() / d.Seconds())
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// FadeOut eases an opacity from 1 at progress 0 to 0 at progress 1,
// fading slowly at first and faster towards the end.
func FadeOut(t float32) float32 {
	return 1 - t*t
}

// EaseOut eases a movement that starts fast and decelerates to a
// stop at progress 1.
func EaseOut(t float32) float32 {
	return 1 - (1-t)*(1-t)
}
