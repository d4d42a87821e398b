package appdata

import (
	"fmt"

	"github.com/ruminaider/cardbook/internal/cards"
	"go.yaml.in/yaml/v3"
)

// File is the on-disk account data: the set and card definitions plus how
// many copies of each card the account holds, keyed by card key.
type File struct {
	Sets   []cards.SetDef     `yaml:"sets"`
	Cards  []cards.Card       `yaml:"cards"`
	Counts map[string]float64 `yaml:"counts,omitempty"`
}

// Parse parses a data file.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing card data: %w", err)
	}
	seen := make(map[string]bool, len(f.Cards))
	for _, c := range f.Cards {
		if c.Key == "" {
			return File{}, fmt.Errorf("parsing card data: card %q has no key", c.DisplayName)
		}
		if seen[c.Key] {
			return File{}, fmt.Errorf("parsing card data: duplicate card key %q", c.Key)
		}
		seen[c.Key] = true
	}
	return f, nil
}

// Marshal serializes a data file to YAML bytes. Owned counts are written
// under counts.
func Marshal(f File) ([]byte, error) {
	return yaml.Marshal(f)
}

// OwnedCards returns the card definitions with their owned counts filled in.
// Cards missing from Counts are unowned.
func (f File) OwnedCards() []cards.Card {
	out := make([]cards.Card, len(f.Cards))
	for i, c := range f.Cards {
		c.Count = f.Counts[c.Key]
		out[i] = c
	}
	return out
}
