package commands

import (
	"log/slog"

	"github.com/ruminaider/cardbook/internal/appdata"
	"github.com/ruminaider/cardbook/internal/filter"
	"github.com/ruminaider/cardbook/internal/gallery"
)

// BonusCount is one selectable bonus type and how many cards it keeps.
type BonusCount struct {
	Label string
	Value string
	Cards int
}

// Bonuses lists every bonus type with its card count. An empty data file
// path skips loading and reports zero counts.
func Bonuses(dataFile string, tax filter.Taxonomy, logger *slog.Logger) ([]BonusCount, error) {
	p := gallery.NewPipeline(tax, gallery.Options{Logger: logger})
	if dataFile != "" {
		store, err := appdata.Open(dataFile, logger)
		if err != nil {
			return nil, err
		}
		snap := store.Snapshot()
		p.SetData(snap.Cards, snap.Sets)
	}

	counts := p.OptionCounts()
	var out []BonusCount
	for _, o := range tax.Options() {
		out = append(out, BonusCount{Label: o.Label, Value: o.Value, Cards: counts[o.Value]})
	}
	return out, nil
}
