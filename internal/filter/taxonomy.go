package filter

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Fixed bonus category keys.
const (
	CategoryDamage = "damage"
	CategoryExp    = "exp"
	CategoryStats  = "stats"
	CategoryDrop   = "drop"
)

const skillPrefix = "skill_"

// Skill indexes, in the game's skill order.
const (
	SkillMining = iota
	SkillSmithing
	SkillChopping
	SkillFishing
	SkillAlchemy
	SkillCatching
	SkillTrapping
	SkillConstruction
	SkillWorship
	SkillCooking
	SkillBreeding
	SkillIntellect
	SkillSailing
	SkillDivinity
	SkillGaming
	SkillFarming
	SkillSneaking
	SkillSummoning
)

// Skill binds a skill index to the card bonus IDs that grant a passive bonus
// for that skill.
type Skill struct {
	Index    int    `yaml:"index"`
	Name     string `yaml:"name"`
	BonusIDs []int  `yaml:"bonus_ids"`
}

// Taxonomy holds the static bonusID lookup tables used by the predicate.
type Taxonomy struct {
	Damage []int   `yaml:"damage"`
	Exp    []int   `yaml:"exp"`
	Stats  []int   `yaml:"stats"`
	Drop   []int   `yaml:"drop"`
	Skills []Skill `yaml:"skills"`
}

// DefaultTaxonomy returns the built-in bonus tables.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Damage: []int{4, 18, 19, 21, 42, 63, 71, 72, 91},
		Exp:    []int{20, 22, 25, 28, 31, 40, 44, 49, 50, 76, 88, 89, 94, 95},
		Stats:  []int{1, 2, 3, 5, 7, 9, 26, 56, 61, 68, 82},
		Drop:   []int{10, 12, 14, 64, 74},
		Skills: []Skill{
			{SkillMining, "Mining", []int{24, 54}},
			{SkillSmithing, "Smithing", []int{30, 55}},
			{SkillChopping, "Chopping", []int{23, 57}},
			{SkillFishing, "Fishing", []int{29, 58}},
			{SkillAlchemy, "Alchemy", []int{33, 59}},
			{SkillCatching, "Catching", []int{32, 60}},
			{SkillTrapping, "Trapping", []int{37, 65}},
			{SkillConstruction, "Construction", []int{38, 66}},
			{SkillWorship, "Worship", []int{39, 67}},
			{SkillCooking, "Cooking", []int{45, 69}},
			{SkillBreeding, "Breeding", []int{46, 70}},
			{SkillIntellect, "Intellect", []int{47, 73}},
			{SkillSailing, "Sailing", []int{48, 77}},
			{SkillDivinity, "Divinity", []int{51, 78}},
			{SkillGaming, "Gaming", []int{52, 79}},
			{SkillFarming, "Farming", []int{80, 83}},
			{SkillSneaking, "Sneaking", []int{84, 86}},
			{SkillSummoning, "Summoning", []int{85, 87}},
		},
	}
}

// ParseTaxonomy parses a taxonomy YAML document. Keys missing from the
// document keep their built-in values.
func ParseTaxonomy(data []byte) (Taxonomy, error) {
	t := DefaultTaxonomy()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Taxonomy{}, fmt.Errorf("parsing bonus taxonomy: %w", err)
	}
	return t, nil
}

// LoadTaxonomy reads a taxonomy file. An empty path yields the defaults.
func LoadTaxonomy(path string) (Taxonomy, error) {
	if path == "" {
		return DefaultTaxonomy(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Taxonomy{}, fmt.Errorf("reading bonus taxonomy: %w", err)
	}
	return ParseTaxonomy(data)
}

// CategoryIDs returns the bonus IDs for one of the four fixed categories.
func (t Taxonomy) CategoryIDs(name string) ([]int, bool) {
	switch name {
	case CategoryDamage:
		return t.Damage, true
	case CategoryExp:
		return t.Exp, true
	case CategoryStats:
		return t.Stats, true
	case CategoryDrop:
		return t.Drop, true
	default:
		return nil, false
	}
}

// SkillIDs returns the passive bonus IDs for a skill index, or nil when the
// index is not mapped.
func (t Taxonomy) SkillIDs(index int) []int {
	for _, s := range t.Skills {
		if s.Index == index {
			return s.BonusIDs
		}
	}
	return nil
}

// SkillKey returns the bonus type value that selects a skill.
func SkillKey(index int) string {
	return skillPrefix + strconv.Itoa(index)
}

// IsSkillKey reports whether bonusType has the skill-scoped form.
func IsSkillKey(bonusType string) bool {
	return strings.HasPrefix(bonusType, skillPrefix)
}

// ParseSkillKey extracts the skill index from "skill_<index>". Only the
// second "_"-separated segment is read, and only its leading integer: an
// optional sign followed by digits, so "skill_0abc" is skill 0. A segment
// that does not start with a number yields false.
func ParseSkillKey(bonusType string) (int, bool) {
	if !IsSkillKey(bonusType) {
		return 0, false
	}
	parts := strings.Split(bonusType, "_")
	segment := strings.TrimLeft(parts[1], " \t")

	end := 0
	if end < len(segment) && (segment[end] == '+' || segment[end] == '-') {
		end++
	}
	digits := end
	for end < len(segment) && segment[end] >= '0' && segment[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	index, err := strconv.Atoi(segment[:end])
	if err != nil {
		return 0, false
	}
	return index, true
}
