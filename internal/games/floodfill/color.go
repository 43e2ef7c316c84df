package floodfill

import (
	"fmt"
	"strings"
)

// Color is a cell color as three 8-bit channels.
// Two colors are the same color exactly when all channels match.
type Color struct {
	R, G, B uint8
}

// String returns the color in CSS rgb() notation.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// NamedColor is a palette entry the player can select by name.
type NamedColor struct {
	Name   string
	Symbol rune // single-character form for plain-text output
	Color  Color
}

// Palette is the ordered set of colors a puzzle is generated from.
type Palette []NamedColor

// DefaultPalette returns the classic five-color palette.
func DefaultPalette() Palette {
	return Palette{
		{Name: "white", Symbol: 'W', Color: Color{255, 255, 255}},
		{Name: "black", Symbol: 'K', Color: Color{0, 0, 0}},
		{Name: "red", Symbol: 'R', Color: Color{255, 0, 0}},
		{Name: "green", Symbol: 'G', Color: Color{0, 255, 0}},
		{Name: "blue", Symbol: 'B', Color: Color{0, 0, 255}},
	}
}

// Lookup finds a palette entry by name, ignoring case.
func (p Palette) Lookup(name string) (NamedColor, bool) {
	for _, nc := range p {
		if strings.EqualFold(nc.Name, name) {
			return nc, true
		}
	}
	return NamedColor{}, false
}

// Find returns the first palette entry with the given color value.
func (p Palette) Find(c Color) (NamedColor, bool) {
	for _, nc := range p {
		if nc.Color == c {
			return nc, true
		}
	}
	return NamedColor{}, false
}

// Distinct returns the palette's color values with duplicates removed, in palette order.
func (p Palette) Distinct() []Color {
	seen := make(map[Color]bool, len(p))
	out := make([]Color, 0, len(p))
	for _, nc := range p {
		if seen[nc.Color] {
			continue
		}
		seen[nc.Color] = true
		out = append(out, nc.Color)
	}
	return out
}

// Names returns the palette entry names in order.
func (p Palette) Names() []string {
	names := make([]string, len(p))
	for i, nc := range p {
		names[i] = nc.Name
	}
	return names
}
