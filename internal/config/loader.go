package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFloodFill loads the flood-fill configuration.
// Search order: customPath -> ~/.floodfill/configs/floodfill.yaml -> ./configs/floodfill.yaml -> embedded default
//
// Files found on the search path are layered over the defaults, so a file
// only needs the keys it changes. The result is validated.
func LoadFloodFill(customPath string) (FloodFillConfig, error) {
	cfg := DefaultFloodFillConfig()

	// Embedded default YAML first; the hardcoded value stays if it fails to parse
	if err := decodeOver(defaultFloodFillYAML, &cfg); err != nil {
		cfg = DefaultFloodFillConfig()
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decodeOver(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("floodfill.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := decodeOver(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/floodfill.yaml"); err == nil {
		if err := decodeOver(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
	}

	return cfg, cfg.Validate()
}

// decodeOver unmarshals data on top of cfg. A palette in data replaces the
// whole palette rather than merging entry by entry.
func decodeOver(data []byte, cfg *FloodFillConfig) error {
	next := *cfg
	next.Palette = nil
	if err := yaml.Unmarshal(data, &next); err != nil {
		return err
	}
	if len(next.Palette) == 0 {
		next.Palette = cfg.Palette
	}
	*cfg = next
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".floodfill", "configs", filename)
}

// ApplyFloodFillPreset modifies the config based on a difficulty preset.
func ApplyFloodFillPreset(cfg *FloodFillConfig, preset DifficultyPreset) {
	if n := CellsForPreset(preset); n > 0 {
		cfg.Grid.CellsPerAxis = n
	}
}
