package config

import (
	"os"

	"gopkg.in/yaml.v3"

	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
)

type FleetConfig struct {
	Ships []ShipConfig `yaml:"ships"`
}

type ShipConfig struct {
	Key    string `yaml:"key"`
	Name   string `yaml:"name"`
	Length int    `yaml:"length"`
}

func LoadFleet(path string) ([]mb.ShipSpec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, cerr.ErrConfig("fleet file: %s", err)
	}

	var fc FleetConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, cerr.ErrConfig("fleet file %s: %s", path, err)
	}

	specs := make([]mb.ShipSpec, 0, len(fc.Ships))
	for _, sc := range fc.Ships {
		if len(sc.Key) != 1 {
			return nil, cerr.ErrConfig("ship key must be a single character, got %q", sc.Key)
		}
		specs = append(specs, mb.ShipSpec{Key: sc.Key[0], Name: sc.Name, Length: sc.Length})
	}
	return specs, nil
}

// ValidateFleet checks what the placement logic takes for granted: unique
// keys that do not collide with grid glyphs and ships that fit the grid.
func ValidateFleet(specs []mb.ShipSpec, gridSize int) error {
	if len(specs) == 0 {
		return cerr.ErrConfig("fleet has no ships")
	}

	seen := make(map[byte]bool, len(specs))
	total := 0
	for _, spec := range specs {
		switch spec.Key {
		case mb.GlyphEmpty, mb.GlyphHit, mb.GlyphMiss, ' ', 0:
			return cerr.ErrConfig("ship key %q is reserved", spec.Key)
		}
		if seen[spec.Key] {
			return cerr.ErrConfig("ship key %q used twice", spec.Key)
		}
		seen[spec.Key] = true

		if spec.Name == "" {
			return cerr.ErrConfig("ship %q has no name", spec.Key)
		}
		if spec.Length < 2 {
			return cerr.ErrConfig("ship %q must be at least 2 long, got %d", spec.Key, spec.Length)
		}
		if spec.Length > gridSize {
			return cerr.ErrConfig("ship %q of length %d does not fit a %dx%d board", spec.Key, spec.Length, gridSize, gridSize)
		}
		total += spec.Length
	}

	if total > gridSize*gridSize {
		return cerr.ErrConfig("fleet needs %d cells, board has %d", total, gridSize*gridSize)
	}
	return nil
}
