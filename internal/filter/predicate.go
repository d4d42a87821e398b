package filter

import (
	"slices"
	"strings"

	"github.com/ruminaider/cardbook/internal/cards"
)

var defaultTaxonomy = DefaultTaxonomy()

// IsHidden reports whether card is filtered out by criteria using the
// built-in taxonomy.
func IsHidden(card cards.Card, criteria Criteria) bool {
	return defaultTaxonomy.Hidden(card, criteria)
}

// Hidden reports whether card is filtered out by criteria. Rules are checked
// in order and the first one that applies decides:
//  1. search term not found in the display name (case-insensitive)
//  2. passive-only and the card is active
//  3. active-only and the card is passive
//  4. bonus type set and the card's bonusID is not in its table
//
// A bonus type that is neither a skill key nor a known category hides
// nothing.
func (t Taxonomy) Hidden(card cards.Card, criteria Criteria) bool {
	if criteria.SearchTerm != "" &&
		!strings.Contains(strings.ToLower(card.DisplayName), strings.ToLower(criteria.SearchTerm)) {
		return true
	}

	if criteria.PassiveOnly && !card.Passive {
		return true
	}
	if criteria.ActiveOnly && card.Passive {
		return true
	}

	if criteria.BonusType == "" {
		return false
	}
	if IsSkillKey(criteria.BonusType) {
		var ids []int
		if index, ok := ParseSkillKey(criteria.BonusType); ok {
			ids = t.SkillIDs(index)
		}
		return !slices.Contains(ids, card.BonusID)
	}
	if ids, ok := t.CategoryIDs(criteria.BonusType); ok {
		return !slices.Contains(ids, card.BonusID)
	}
	return false
}

// AnyVisible reports whether at least one card passes the criteria.
func (t Taxonomy) AnyVisible(all []cards.Card, criteria Criteria) bool {
	for _, c := range all {
		if !t.Hidden(c, criteria) {
			return true
		}
	}
	return false
}

// Visible returns the cards that pass the criteria, keeping their order.
func (t Taxonomy) Visible(all []cards.Card, criteria Criteria) []cards.Card {
	out := make([]cards.Card, 0, len(all))
	for _, c := range all {
		if !t.Hidden(c, criteria) {
			out = append(out, c)
		}
	}
	return out
}
