package gallery

import (
	"io"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/ruminaider/cardbook/internal/cards"
	"github.com/ruminaider/cardbook/internal/filter"
)

// Status describes what the gallery should currently show.
type Status int

const (
	StatusEmpty     Status = iota // card data or set definitions not loaded yet
	StatusFiltering               // short busy state after filtering starts
	StatusNoMatches               // data loaded, nothing passes the filters
	StatusReady                   // at least one set to show
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusFiltering:
		return "filtering"
	case StatusNoMatches:
		return "no matches"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Options tunes the pipeline timings and memoization.
type Options struct {
	SearchDelay    time.Duration // quiet period before typed text is committed
	IndicatorDelay time.Duration // how long the filtering indicator stays up
	CacheSize      int           // memoized filter results; 0 disables
	Logger         *slog.Logger
}

// DefaultOptions returns the standard gallery timings.
func DefaultOptions() Options {
	return Options{
		SearchDelay:    100 * time.Millisecond,
		IndicatorDelay: 50 * time.Millisecond,
		CacheSize:      64,
	}
}

type cacheKey struct {
	version  uint64
	criteria filter.Criteria
}

// Pipeline owns the gallery's filter state and recomputes the visible card
// sets whenever the criteria or the underlying card data change. It is not
// safe for concurrent use; every call is expected to come from one event loop.
type Pipeline struct {
	opts     Options
	taxonomy filter.Taxonomy
	logger   *slog.Logger

	input     string // raw search box contents
	criteria  filter.Criteria
	search    Deferred
	indicator Deferred
	filtering bool

	cards    []cards.Card
	defs     []cards.SetDef
	version  uint64
	baseline []cards.Set
	visible  []cards.Set

	cache  *lru.Cache
	counts map[string]int // per bonus option, nil when stale
}

// NewPipeline creates an empty pipeline. It shows StatusEmpty until SetData
// provides both cards and set definitions.
func NewPipeline(taxonomy filter.Taxonomy, opts Options) *Pipeline {
	p := &Pipeline{
		opts:     opts,
		taxonomy: taxonomy,
		logger:   opts.Logger,
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.CacheSize > 0 {
		// lru.New only fails for a non-positive size.
		p.cache, _ = lru.New(opts.CacheSize)
	}
	return p
}

// --- Data ---

// SetData replaces the card data. A nil slice means that part of the data is
// not available yet. The baseline set list is rebuilt only here.
func (p *Pipeline) SetData(all []cards.Card, defs []cards.SetDef) {
	p.cards = all
	p.defs = defs
	p.version++
	if p.cache != nil {
		p.cache.Purge()
	}
	if p.hasData() {
		p.baseline = cards.BuildSets(defs, all)
	} else {
		p.baseline = nil
	}
	p.logger.Debug("card data updated",
		slog.Int("cards", len(all)),
		slog.Int("sets", len(p.baseline)),
		slog.Uint64("version", p.version))
	p.recompute()
}

func (p *Pipeline) hasData() bool {
	return p.cards != nil && p.defs != nil
}

// Version increases on every SetData call.
func (p *Pipeline) Version() uint64 {
	return p.version
}

// Baseline returns every card set, unfiltered.
func (p *Pipeline) Baseline() []cards.Set {
	return p.baseline
}

// TotalCards returns the number of loaded cards that belong to a set.
func (p *Pipeline) TotalCards() int {
	n := 0
	for _, s := range p.baseline {
		n += len(s.Cards)
	}
	return n
}

// --- Input and criteria ---

// Input returns the raw search box text, which may be ahead of the committed
// search term.
func (p *Pipeline) Input() string {
	return p.input
}

// Criteria returns the committed filter criteria.
func (p *Pipeline) Criteria() filter.Criteria {
	return p.criteria
}

// Taxonomy returns the bonus tables used by the predicate.
func (p *Pipeline) Taxonomy() filter.Taxonomy {
	return p.taxonomy
}

// SetInput records a change of the search box. Clearing the box commits at
// once; any other text is committed after the search delay.
func (p *Pipeline) SetInput(text string) []Timer {
	p.input = text
	if text == "" {
		p.search.Cancel()
		return p.commitSearch("")
	}
	seq := p.search.Arm()
	return []Timer{{Kind: TimerSearch, Seq: seq, Delay: p.opts.SearchDelay}}
}

// SetBonusType selects a bonus type ("" for all).
func (p *Pipeline) SetBonusType(bonusType string) []Timer {
	if bonusType == p.criteria.BonusType {
		return nil
	}
	was := p.criteria.Active()
	p.criteria.SetBonusType(bonusType)
	return p.criteriaChanged(was)
}

// SetPassiveOnly toggles the passive-only filter; enabling it disables
// active-only.
func (p *Pipeline) SetPassiveOnly(on bool) []Timer {
	was := p.criteria.Active()
	p.criteria.SetPassiveOnly(on)
	return p.criteriaChanged(was)
}

// SetActiveOnly toggles the active-only filter; enabling it disables
// passive-only.
func (p *Pipeline) SetActiveOnly(on bool) []Timer {
	was := p.criteria.Active()
	p.criteria.SetActiveOnly(on)
	return p.criteriaChanged(was)
}

// ClearFilters resets the search box and every filter.
func (p *Pipeline) ClearFilters() []Timer {
	was := p.criteria.Active()
	p.input = ""
	p.search.Cancel()
	p.criteria.Clear()
	return p.criteriaChanged(was)
}

// Fire delivers an elapsed timer. Stale or cancelled timers are ignored.
func (p *Pipeline) Fire(t Timer) []Timer {
	switch t.Kind {
	case TimerSearch:
		if p.search.Expire(t.Seq) {
			return p.commitSearch(p.input)
		}
	case TimerIndicator:
		if p.indicator.Expire(t.Seq) {
			p.filtering = false
		}
	}
	return nil
}

func (p *Pipeline) commitSearch(term string) []Timer {
	if term == p.criteria.SearchTerm {
		return nil
	}
	was := p.criteria.Active()
	p.criteria.SetSearchTerm(term)
	return p.criteriaChanged(was)
}

// criteriaChanged recomputes the visible sets and drives the filtering
// indicator on activity transitions.
func (p *Pipeline) criteriaChanged(wasActive bool) []Timer {
	p.recompute()

	active := p.criteria.Active()
	switch {
	case active && !wasActive:
		p.filtering = true
		seq := p.indicator.Arm()
		return []Timer{{Kind: TimerIndicator, Seq: seq, Delay: p.opts.IndicatorDelay}}
	case !active && wasActive:
		p.filtering = false
		p.indicator.Cancel()
	}
	return nil
}

// --- Results ---

func (p *Pipeline) recompute() {
	p.counts = nil

	if !p.hasData() {
		p.visible = nil
		return
	}
	if !p.criteria.Active() {
		p.visible = p.baseline
		return
	}

	key := cacheKey{version: p.version, criteria: p.criteria}
	if p.cache != nil {
		if v, ok := p.cache.Get(key); ok {
			p.visible = p.pick(v.([]int))
			return
		}
	}

	var idx []int
	for i, s := range p.baseline {
		if len(s.Cards) == 0 {
			continue
		}
		if p.taxonomy.AnyVisible(s.Cards, p.criteria) {
			idx = append(idx, i)
		}
	}
	if p.cache != nil {
		p.cache.Add(key, idx)
	}
	p.visible = p.pick(idx)

	p.logger.Debug("filters applied",
		slog.String("search", p.criteria.SearchTerm),
		slog.String("bonus", p.criteria.BonusType),
		slog.Bool("passive", p.criteria.PassiveOnly),
		slog.Bool("active", p.criteria.ActiveOnly),
		slog.Int("visible_sets", len(idx)))
}

func (p *Pipeline) pick(idx []int) []cards.Set {
	out := make([]cards.Set, 0, len(idx))
	for _, i := range idx {
		out = append(out, p.baseline[i])
	}
	return out
}

// Filtering reports whether the filtering indicator is up.
func (p *Pipeline) Filtering() bool {
	return p.filtering
}

// IndicatorPending reports whether an indicator decay timer is outstanding.
func (p *Pipeline) IndicatorPending() bool {
	return p.indicator.Pending()
}

// SearchPending reports whether typed text is waiting to be committed.
func (p *Pipeline) SearchPending() bool {
	return p.search.Pending()
}

// VisibleSets returns the sets to display: every set when no filter is
// active, otherwise the sets with at least one visible card.
func (p *Pipeline) VisibleSets() []cards.Set {
	return p.visible
}

// VisibleCards returns the cards of s that pass the current criteria.
func (p *Pipeline) VisibleCards(s cards.Set) []cards.Card {
	if !p.criteria.Active() {
		return s.Cards
	}
	return p.taxonomy.Visible(s.Cards, p.criteria)
}

// Status reports what the gallery should render.
func (p *Pipeline) Status() Status {
	switch {
	case !p.hasData():
		return StatusEmpty
	case p.filtering:
		return StatusFiltering
	case len(p.visible) == 0:
		return StatusNoMatches
	default:
		return StatusReady
	}
}

// OptionCounts returns, for every bonus option value, how many cards would be
// visible if that option were selected with the other filters unchanged.
// Only cards that belong to a set are counted.
func (p *Pipeline) OptionCounts() map[string]int {
	if p.counts != nil {
		return p.counts
	}
	counts := make(map[string]int)
	for _, opt := range p.taxonomy.Options() {
		c := p.criteria
		c.BonusType = opt.Value
		n := 0
		for _, s := range p.baseline {
			for _, card := range s.Cards {
				if !p.taxonomy.Hidden(card, c) {
					n++
				}
			}
		}
		counts[opt.Value] = n
	}
	p.counts = counts
	return counts
}

// Counts returns how many cards the given bonus option would keep.
func (p *Pipeline) Counts(option string) int {
	return p.OptionCounts()[option]
}
