package commands

import (
	"fmt"

	"github.com/ruminaider/cardbook/internal/appdata"
	"github.com/ruminaider/cardbook/internal/filter"
	"github.com/ruminaider/cardbook/internal/gallery"
)

// ListOptions selects the data file and the filters for a one-shot listing.
type ListOptions struct {
	DataFile    string
	Taxonomy    filter.Taxonomy
	Gallery     gallery.Options
	Search      string
	BonusType   string
	PassiveOnly bool
	ActiveOnly  bool
}

// ListResult is a settled pipeline plus summary counts.
type ListResult struct {
	Pipeline *gallery.Pipeline
	Sets     int // visible sets
	Cards    int // visible cards
	Total    int // loaded cards
}

// List loads the data file, applies the filters and lets every pending timer
// run to completion so the result reflects the final criteria.
func List(opts ListOptions) (*ListResult, error) {
	if opts.PassiveOnly && opts.ActiveOnly {
		return nil, fmt.Errorf("passive only and active only cannot both be set")
	}
	if err := ValidateBonusType(opts.Taxonomy, opts.BonusType); err != nil {
		return nil, err
	}

	store, err := appdata.Open(opts.DataFile, opts.Gallery.Logger)
	if err != nil {
		return nil, err
	}
	snap := store.Snapshot()

	p := gallery.NewPipeline(opts.Taxonomy, opts.Gallery)
	p.SetData(snap.Cards, snap.Sets)

	Settle(p, p.SetBonusType(opts.BonusType))
	if opts.PassiveOnly {
		Settle(p, p.SetPassiveOnly(true))
	}
	if opts.ActiveOnly {
		Settle(p, p.SetActiveOnly(true))
	}
	Settle(p, p.SetInput(opts.Search))

	result := &ListResult{Pipeline: p, Total: p.TotalCards()}
	for _, s := range p.VisibleSets() {
		result.Sets++
		result.Cards += len(p.VisibleCards(s))
	}
	return result, nil
}

// Settle fires timers immediately, including any they schedule in turn,
// until the pipeline is idle.
func Settle(p *gallery.Pipeline, timers []gallery.Timer) {
	for len(timers) > 0 {
		t := timers[0]
		timers = append(timers[1:], p.Fire(t)...)
	}
}

// ValidateBonusType rejects values that are not one of the taxonomy's options.
func ValidateBonusType(tax filter.Taxonomy, bonusType string) error {
	for _, o := range tax.Options() {
		if o.Value == bonusType {
			return nil
		}
	}
	return fmt.Errorf("unknown bonus type %q (run 'cardbook bonuses' to list them)", bonusType)
}
