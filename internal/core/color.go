package core

import "fmt"

// Color is a 24-bit color for a screen cell.
// The zero value means "terminal default" and is never emitted as an escape code.
type Color struct {
	R, G, B uint8
	Set     bool
}

// ColorDefault leaves the terminal's own color in place.
var ColorDefault = Color{}

// RGB builds an explicit color from channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luma returns the perceived brightness of the color in [0, 255].
// Used to pick a readable foreground on top of a colored background.
func (c Color) Luma() int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}

// Contrast returns black or white, whichever reads better on c.
func (c Color) Contrast() Color {
	if c.Luma() > 127 {
		return RGB(0, 0, 0)
	}
	return RGB(255, 255, 255)
}
