package cards

import "sort"

// MaxSetLevel is the highest bonus level a card set can reach.
const MaxSetLevel = 6

// SetDef is the static definition of a card set.
type SetDef struct {
	Name          string  `yaml:"name"` // matched against Card.Category
	DisplayName   string  `yaml:"display_name"`
	Effect        string  `yaml:"effect"`
	BonusPerLevel float64 `yaml:"bonus_per_level"`
}

// Set is a card set definition with the cards that belong to it.
type Set struct {
	SetDef
	Cards []Card
}

// BuildSets groups cards into the given set definitions by category, keeping
// the definition order. Each set's cards are sorted by Order. Cards whose
// category matches no definition are dropped.
func BuildSets(defs []SetDef, all []Card) []Set {
	byCategory := make(map[string][]Card, len(defs))
	for _, c := range all {
		byCategory[c.Category] = append(byCategory[c.Category], c)
	}

	sets := make([]Set, 0, len(defs))
	for _, def := range defs {
		members := byCategory[def.Name]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Order < members[j].Order
		})
		sets = append(sets, Set{SetDef: def, Cards: members})
	}
	return sets
}

// TotalLevels sums the levels of every card in the set.
func (s Set) TotalLevels() int {
	total := 0
	for _, c := range s.Cards {
		total += c.Level()
	}
	return total
}

// MaxLevels is the number of card levels needed to max every card.
func (s Set) MaxLevels() int {
	return len(s.Cards) * MaxCardLevel
}

// Level is the set's bonus level: the average card level rounded down.
func (s Set) Level() int {
	if len(s.Cards) == 0 {
		return 0
	}
	level := s.TotalLevels() / len(s.Cards)
	if level > MaxSetLevel {
		return MaxSetLevel
	}
	return level
}

// LevelsToNext returns how many more card levels the set needs for its next
// bonus level. It is 0 once the set is maxed.
func (s Set) LevelsToNext() int {
	level := s.Level()
	if level >= MaxSetLevel {
		return 0
	}
	return len(s.Cards)*(level+1) - s.TotalLevels()
}

// Bonus returns the set bonus value at the given level.
func (s Set) Bonus(level int) float64 {
	return s.BonusPerLevel * float64(level)
}

// BonusText renders the set effect at the given level.
func (s Set) BonusText(level int) string {
	return formatEffect(s.Effect, s.Bonus(level))
}

// Owned reports whether any card in the set has been collected.
func (s Set) Owned() bool {
	for _, c := range s.Cards {
		if c.Owned() {
			return true
		}
	}
	return false
}
