package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Shade maps a recency weight q in [0, 1] to saturation and brightness.
// Unread elements (q = 0) are muted; the latest read (q = 1) is brightest.
func Shade(q float64) (s, v float64) {
	q = min(max(q, 0), 1)
	return 0.8 - 0.2*q, 0.5 + 0.5*q
}

// Hue maps a value of an array of length n to a hue fraction in [0, 1].
func Hue(value, n int) float64 {
	if n <= 0 {
		return 0
	}
	return min(max(float64(value)/float64(n), 0), 1)
}

// Colour returns the hex colour of value at recency weight q. The hue
// wraps, so value n shares the colour of value 0.
func Colour(value, n int, q float64) string {
	s, v := Shade(q)
	return colorful.Hsv(math.Mod(Hue(value, n)*360, 360), s, v).Hex()
}

// Pitch returns the tone frequency in Hz for value: 120 Hz for the
// smallest, rising linearly to 1212 Hz for value n.
func Pitch(value, n int) float64 {
	return lerp(120, 1212, Hue(value, n))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
