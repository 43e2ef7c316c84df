package floodfill

import (
	"fmt"
	"math/rand"
	"strings"
)

// Coordinate addresses a grid cell by row and column.
type Coordinate struct {
	Row    int
	Column int
}

// String returns a string representation of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Column)
}

// Grid is a square board of colored cells.
// Cells are stored in row-major order: index = row*Size + column.
type Grid struct {
	Size  int     // Cells per axis
	Cells []Color // Flat array of cells, length Size*Size
}

// NewGrid creates a grid with every cell set to fill.
func NewGrid(size int, fill Color) Grid {
	g := Grid{Size: size, Cells: make([]Color, size*size)}
	for i := range g.Cells {
		g.Cells[i] = fill
	}
	return g
}

// Generate fills a size x size grid by sampling each cell independently
// and uniformly from the palette's distinct colors.
func Generate(rng *rand.Rand, palette Palette, size int) Grid {
	colors := palette.Distinct()
	g := Grid{Size: size, Cells: make([]Color, size*size)}
	if len(colors) == 0 {
		return g
	}
	for i := range g.Cells {
		g.Cells[i] = colors[rng.Intn(len(colors))]
	}
	return g
}

// ToCoordinate maps a pixel position on the board to the cell under it.
// The result is not range checked; callers use InBounds.
func ToCoordinate(pixelX, pixelY, cellWidth, cellHeight int) Coordinate {
	return Coordinate{
		Row:    floorDiv(pixelY, cellHeight),
		Column: floorDiv(pixelX, cellWidth),
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// IndexOf converts a coordinate to a flat array index.
func (g Grid) IndexOf(c Coordinate) int {
	return c.Row*g.Size + c.Column
}

// InBounds returns true if the coordinate is within the grid.
func (g Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.Size && c.Column >= 0 && c.Column < g.Size
}

// At returns the color at the given coordinate. Out-of-range coordinates panic.
func (g Grid) At(c Coordinate) Color {
	return g.Cells[g.IndexOf(c)]
}

// Set changes the color at the given coordinate.
func (g Grid) Set(c Coordinate, color Color) {
	if g.InBounds(c) {
		g.Cells[g.IndexOf(c)] = color
	}
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cells := make([]Color, len(g.Cells))
	copy(cells, g.Cells)
	return Grid{Size: g.Size, Cells: cells}
}

// Equal reports whether two grids have the same size and cells.
func (g Grid) Equal(other Grid) bool {
	if g.Size != other.Size || len(g.Cells) != len(other.Cells) {
		return false
	}
	for i := range g.Cells {
		if g.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}

// IsUniform reports whether every cell has the same color.
func (g Grid) IsUniform() bool {
	for _, c := range g.Cells {
		if c != g.Cells[0] {
			return false
		}
	}
	return len(g.Cells) > 0
}

// Format renders the grid as one line of palette symbols per row.
// Colors missing from the palette print as '?'.
func (g Grid) Format(p Palette) []string {
	lines := make([]string, g.Size)
	var sb strings.Builder
	for row := 0; row < g.Size; row++ {
		sb.Reset()
		for col := 0; col < g.Size; col++ {
			sym := '?'
			if nc, ok := p.Find(g.At(Coordinate{Row: row, Column: col})); ok {
				sym = nc.Symbol
			}
			sb.WriteRune(sym)
		}
		lines[row] = sb.String()
	}
	return lines
}

// ParseGrid builds a grid from rows of palette symbols, the inverse of Format.
func ParseGrid(p Palette, rows ...string) (Grid, error) {
	size := len(rows)
	g := Grid{Size: size, Cells: make([]Color, 0, size*size)}
	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != size {
			return Grid{}, fmt.Errorf("floodfill: row %d has %d cells, want %d", i, len(runes), size)
		}
		for _, r := range runes {
			nc, ok := p.bySymbol(r)
			if !ok {
				return Grid{}, fmt.Errorf("%w: symbol %q", ErrUnknownColor, r)
			}
			g.Cells = append(g.Cells, nc.Color)
		}
	}
	return g, nil
}

func (p Palette) bySymbol(r rune) (NamedColor, bool) {
	for _, nc := range p {
		if nc.Symbol == r {
			return nc, true
		}
	}
	return NamedColor{}, false
}
