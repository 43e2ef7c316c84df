package floodfill

import (
	"math/rand"
	"testing"
)

func TestGenerate(t *testing.T) {
	palette := DefaultPalette()
	g := Generate(rand.New(rand.NewSource(1)), palette, 9)

	if g.Size != 9 {
		t.Fatalf("Size = %d, want 9", g.Size)
	}
	if len(g.Cells) != 81 {
		t.Fatalf("len(Cells) = %d, want 81", len(g.Cells))
	}
	for i, c := range g.Cells {
		if _, ok := palette.Find(c); !ok {
			t.Errorf("cell %d has color %v outside the palette", i, c)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(42)), DefaultPalette(), 12)
	b := Generate(rand.New(rand.NewSource(42)), DefaultPalette(), 12)
	if !a.Equal(b) {
		t.Error("same seed produced different grids")
	}
}

func TestGenerateUsesEveryColor(t *testing.T) {
	palette := DefaultPalette()
	g := Generate(rand.New(rand.NewSource(7)), palette, 30)

	counts := make(map[Color]int)
	for _, c := range g.Cells {
		counts[c]++
	}
	if len(counts) != len(palette) {
		t.Fatalf("got %d distinct colors, want %d", len(counts), len(palette))
	}
	// 900 cells over 5 colors: each should land well inside [100, 260]
	for c, n := range counts {
		if n < 100 || n > 260 {
			t.Errorf("color %v drawn %d times, distribution looks skewed", c, n)
		}
	}
}

func TestGenerateDuplicatePaletteValues(t *testing.T) {
	palette := Palette{
		{Name: "red", Symbol: 'R', Color: Color{255, 0, 0}},
		{Name: "crimson", Symbol: 'C', Color: Color{255, 0, 0}},
		{Name: "blue", Symbol: 'B', Color: Color{0, 0, 255}},
	}
	if got := len(palette.Distinct()); got != 2 {
		t.Fatalf("Distinct() returned %d colors, want 2", got)
	}

	g := Generate(rand.New(rand.NewSource(3)), palette, 20)
	red := 0
	for _, c := range g.Cells {
		if c == (Color{255, 0, 0}) {
			red++
		}
	}
	// Red is one of two distinct values, not two of three entries
	if red < 140 || red > 260 {
		t.Errorf("red drawn %d of 400 times, want about half", red)
	}
}

func TestToCoordinate(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		cw, ch int
		want   Coordinate
	}{
		{"origin", 0, 0, 40, 40, Coordinate{0, 0}},
		{"inside first cell", 39, 39, 40, 40, Coordinate{0, 0}},
		{"second column", 40, 0, 40, 40, Coordinate{0, 1}},
		{"last cell", 359, 359, 40, 40, Coordinate{8, 8}},
		{"terminal cells", 9, 5, 4, 2, Coordinate{2, 2}},
		{"negative floors", -1, -1, 4, 2, Coordinate{-1, -1}},
		{"past the edge", 360, 0, 40, 40, Coordinate{0, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToCoordinate(tt.x, tt.y, tt.cw, tt.ch)
			if got != tt.want {
				t.Errorf("ToCoordinate(%d, %d, %d, %d) = %v, want %v", tt.x, tt.y, tt.cw, tt.ch, got, tt.want)
			}
		})
	}
}

func TestIndexOf(t *testing.T) {
	g := NewGrid(9, Color{})
	tests := []struct {
		c    Coordinate
		want int
	}{
		{Coordinate{0, 0}, 0},
		{Coordinate{0, 8}, 8},
		{Coordinate{1, 0}, 9},
		{Coordinate{4, 5}, 41},
		{Coordinate{8, 8}, 80},
	}
	for _, tt := range tests {
		if got := g.IndexOf(tt.c); got != tt.want {
			t.Errorf("IndexOf(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(3, Color{255, 255, 255})
	c := g.Clone()
	c.Set(Coordinate{1, 1}, Color{})

	if g.At(Coordinate{1, 1}) != (Color{255, 255, 255}) {
		t.Error("modifying the clone changed the original")
	}
	if g.Equal(c) {
		t.Error("Equal() reported different grids as equal")
	}
}

func TestGridIsUniform(t *testing.T) {
	g := NewGrid(4, Color{0, 255, 0})
	if !g.IsUniform() {
		t.Error("single-color grid should be uniform")
	}
	g.Set(Coordinate{3, 3}, Color{0, 0, 255})
	if g.IsUniform() {
		t.Error("two-color grid should not be uniform")
	}
	if (Grid{}).IsUniform() {
		t.Error("empty grid should not be uniform")
	}
}

func TestFormatParseGrid(t *testing.T) {
	p := DefaultPalette()
	rows := []string{
		"WKR",
		"GBW",
		"KKK",
	}

	g, err := ParseGrid(p, rows...)
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	if g.At(Coordinate{0, 2}) != (Color{255, 0, 0}) {
		t.Errorf("cell (0,2) = %v, want red", g.At(Coordinate{0, 2}))
	}

	got := g.Format(p)
	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("Format() row %d = %q, want %q", i, got[i], rows[i])
		}
	}
}

func TestParseGridErrors(t *testing.T) {
	p := DefaultPalette()
	if _, err := ParseGrid(p, "WW", "W"); err == nil {
		t.Error("expected error for ragged rows")
	}
	if _, err := ParseGrid(p, "WX", "WW"); err == nil {
		t.Error("expected error for unknown symbol")
	}
}

func TestPaletteLookup(t *testing.T) {
	p := DefaultPalette()
	nc, ok := p.Lookup("RED")
	if !ok || nc.Color != (Color{255, 0, 0}) {
		t.Errorf("Lookup(RED) = %v, %v", nc, ok)
	}
	if _, ok := p.Lookup("purple"); ok {
		t.Error("Lookup(purple) should fail")
	}
}
