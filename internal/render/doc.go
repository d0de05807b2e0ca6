// Package render draws playback frames for a terminal.
//
// A frame is a column chart: one column per array element, height
// proportional to the value. Colour carries two signals. Hue follows the
// value, so a sorted array reads as a smooth gradient. Saturation and
// brightness follow the recency weight, so recently read elements glow.
//
// Plain mode replaces colour with glyphs ('#' for a bar, '*' for a bar
// read inside the recency window) and emits no escape sequences.
package render
