// Package config provides YAML-based game configuration loading and
// difficulty presets for the flood-fill puzzle.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// FloodFillConfig contains all configuration for the flood-fill puzzle.
type FloodFillConfig struct {
	Grid         GridConfig     `yaml:"grid"`
	Scoring      ScoringConfig  `yaml:"scoring"`
	Palette      []PaletteEntry `yaml:"palette"`
	InitialColor string         `yaml:"initial_color"` // Replacement color at start and restart
	Display      DisplayConfig  `yaml:"display"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	CellsPerAxis int `yaml:"cells_per_axis"`
}

// ScoringConfig defines the weighted score parameters.
type ScoringConfig struct {
	MaximumWeightedScore float64 `yaml:"maximum_weighted_score"`
	MaxMoves             int     `yaml:"max_moves"` // Divisor of the deduction formula
}

// PaletteEntry is one selectable color.
type PaletteEntry struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"` // Single character used in plain-text output
	RGB    []int  `yaml:"rgb"`    // Three channels, 0-255
}

// DisplayConfig defines how large a cell is drawn in the terminal.
type DisplayConfig struct {
	CellWidth  int `yaml:"cell_width"`  // Columns per cell
	CellHeight int `yaml:"cell_height"` // Rows per cell
}

// Validate reports the first problem that would make the config unplayable.
func (c FloodFillConfig) Validate() error {
	if c.Grid.CellsPerAxis <= 0 {
		return fmt.Errorf("config: grid.cells_per_axis must be positive, got %d", c.Grid.CellsPerAxis)
	}
	if c.Scoring.MaximumWeightedScore <= 0 {
		return fmt.Errorf("config: scoring.maximum_weighted_score must be positive, got %v", c.Scoring.MaximumWeightedScore)
	}
	if c.Scoring.MaxMoves <= 0 {
		return fmt.Errorf("config: scoring.max_moves must be positive, got %d", c.Scoring.MaxMoves)
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return fmt.Errorf("config: display cell size must be positive, got %dx%d", c.Display.CellWidth, c.Display.CellHeight)
	}
	if len(c.Palette) == 0 {
		return errors.New("config: palette is empty")
	}

	names := make(map[string]bool, len(c.Palette))
	symbols := make(map[string]bool, len(c.Palette))
	for i, p := range c.Palette {
		name := strings.ToLower(p.Name)
		if name == "" {
			return fmt.Errorf("config: palette[%d] has no name", i)
		}
		if names[name] {
			return fmt.Errorf("config: duplicate palette name %q", p.Name)
		}
		names[name] = true

		if utf8.RuneCountInString(p.Symbol) != 1 {
			return fmt.Errorf("config: palette %q symbol must be one character, got %q", p.Name, p.Symbol)
		}
		if symbols[p.Symbol] {
			return fmt.Errorf("config: duplicate palette symbol %q", p.Symbol)
		}
		symbols[p.Symbol] = true

		if len(p.RGB) != 3 {
			return fmt.Errorf("config: palette %q needs 3 rgb channels, got %d", p.Name, len(p.RGB))
		}
		for _, ch := range p.RGB {
			if ch < 0 || ch > 255 {
				return fmt.Errorf("config: palette %q channel %d out of range", p.Name, ch)
			}
		}
	}

	if c.InitialColor != "" && !names[strings.ToLower(c.InitialColor)] {
		return fmt.Errorf("config: initial_color %q is not in the palette", c.InitialColor)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(s)); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// CellsForPreset returns the board size for a difficulty preset, or 0 for none.
func CellsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 6
	case DifficultyNormal:
		return 9
	case DifficultyHard:
		return 12
	default:
		return 0
	}
}
