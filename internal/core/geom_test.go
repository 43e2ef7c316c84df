package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectLocal(t *testing.T) {
	r := NewRect(4, 3, 36, 18)

	x, y := r.Local(10, 7)
	if x != 6 || y != 4 {
		t.Errorf("Local(10, 7) = (%d, %d), expected (6, 4)", x, y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(255, 0, 16).Hex(); got != "#ff0010" {
		t.Errorf("Hex() = %q, expected #ff0010", got)
	}
	if got := ColorDefault.Hex(); got != "" {
		t.Errorf("default Hex() = %q, expected empty", got)
	}
}

func TestColorContrast(t *testing.T) {
	if RGB(255, 255, 255).Contrast() != RGB(0, 0, 0) {
		t.Error("white should contrast with black")
	}
	if RGB(0, 0, 0).Contrast() != RGB(255, 255, 255) {
		t.Error("black should contrast with white")
	}
	if RGB(0, 0, 255).Contrast() != RGB(255, 255, 255) {
		t.Error("blue should contrast with white")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionUndo)
	f.SetClick(3, 4)
	f.SelectSlot(2)
	f.SelectSlot(0) // ignored

	if !f.Has(ActionUndo) || f.Has(ActionRestart) {
		t.Error("Has() reported wrong actions")
	}
	if p, ok := f.Click(); !ok || p != (Point{X: 3, Y: 4}) {
		t.Errorf("Click() = %v, %v", p, ok)
	}
	if slot, ok := f.Slot(); !ok || slot != 2 {
		t.Errorf("Slot() = %d, %v", slot, ok)
	}

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if !clone.Has(ActionUndo) {
		t.Error("Clone() should be independent of the original")
	}
	if _, ok := clone.Click(); !ok {
		t.Error("Clone() should keep the click")
	}
}
