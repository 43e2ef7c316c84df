package config

import (
	_ "embed"
)

//go:embed defaults/floodfill.yaml
var defaultFloodFillYAML []byte

// DefaultFloodFillConfig returns the classic 9x9, five-color configuration.
func DefaultFloodFillConfig() FloodFillConfig {
	return FloodFillConfig{
		Grid: GridConfig{
			CellsPerAxis: 9,
		},
		Scoring: ScoringConfig{
			MaximumWeightedScore: 1000,
			MaxMoves:             8,
		},
		Palette: []PaletteEntry{
			{Name: "white", Symbol: "W", RGB: []int{255, 255, 255}},
			{Name: "black", Symbol: "K", RGB: []int{0, 0, 0}},
			{Name: "red", Symbol: "R", RGB: []int{255, 0, 0}},
			{Name: "green", Symbol: "G", RGB: []int{0, 255, 0}},
			{Name: "blue", Symbol: "B", RGB: []int{0, 0, 255}},
		},
		InitialColor: "white",
		Display: DisplayConfig{
			CellWidth:  4,
			CellHeight: 2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "floodfill":
		return defaultFloodFillYAML
	default:
		return nil
	}
}
