package cards

import (
	"math"
	"strconv"
	"strings"
)

// MaxCardLevel is the number of levels a single card contributes to its set
// once fully starred (acquired tier plus five stars).
const MaxCardLevel = 6

// starScale multiplies a card's PerTier to get the cards needed for each star
// tier. Tier 0 is the "acquired" tier and always needs exactly one card.
var starScale = [MaxCardLevel]float64{0, 1, 3, 6, 10, 15}

// Card is a single collectible card together with the account's owned count.
type Card struct {
	Key           string  `yaml:"key"`
	DisplayName   string  `yaml:"name"`
	Category      string  `yaml:"category"` // name of the card set this card belongs to
	Order         int     `yaml:"order"`
	BonusID       int     `yaml:"bonus_id"`
	Passive       bool    `yaml:"passive"`
	Effect        string  `yaml:"effect"` // "{" is replaced by the bonus value
	BonusPerLevel float64 `yaml:"bonus_per_level"`
	PerTier       float64 `yaml:"per_tier"`
	FiveStar      bool    `yaml:"five_star"`
	DropRate      string  `yaml:"drop_rate"`
	Count         float64 `yaml:"-"`
}

// Owned reports whether at least one copy of the card has been collected.
func (c Card) Owned() bool {
	return c.Count > 0
}

// MaxStars returns the highest star tier the card can reach.
func (c Card) MaxStars() int {
	if c.FiveStar {
		return 5
	}
	return 4
}

// CardsForStar returns the number of cards needed to reach star tier n. The
// result can be fractional; the game rounds it up when displaying it.
func (c Card) CardsForStar(n int) float64 {
	if n < 0 {
		return 0
	}
	if n >= len(starScale) {
		n = len(starScale) - 1
	}
	need := c.PerTier * starScale[n]
	if need < 1 {
		return 1
	}
	return need
}

// Stars returns the highest star tier reached. Unowned cards are at tier 0.
func (c Card) Stars() int {
	if !c.Owned() {
		return 0
	}
	stars := 0
	for n := 1; n <= c.MaxStars(); n++ {
		if c.Count < c.CardsForStar(n) {
			break
		}
		stars = n
	}
	return stars
}

// IsMaxed reports whether the card has reached its final star tier.
func (c Card) IsMaxed() bool {
	return c.Owned() && c.Stars() == c.MaxStars()
}

// Level is the card's contribution to its set: stars+1 once owned, else 0.
func (c Card) Level() int {
	if !c.Owned() {
		return 0
	}
	return c.Stars() + 1
}

// CardsToNextStar returns how many more cards are needed for the next tier.
// An unowned card always needs exactly one.
func (c Card) CardsToNextStar() float64 {
	if !c.Owned() {
		return 1
	}
	return c.CardsForStar(c.Stars()+1) - c.Count
}

// NextStarCounts returns the cards still needed for the next tier, rounded
// down (the real requirement) and rounded up (what the game displays). The two
// differ only when CardsForStar is fractional.
func (c Card) NextStarCounts() (exact, inGame int) {
	need := c.CardsToNextStar()
	return int(math.Floor(need)), int(math.Ceil(need))
}

// DropRateText returns the base drop rate, or "Unknown" when the data file
// does not provide one.
func (c Card) DropRateText() string {
	if strings.TrimSpace(c.DropRate) == "" {
		return "Unknown"
	}
	return c.DropRate
}

// Bonus returns the bonus value at the given card level (0-based star tier).
func (c Card) Bonus(tier int) float64 {
	return c.BonusPerLevel * float64(tier+1)
}

// BonusText renders the effect for the given star tier.
func (c Card) BonusText(tier int) string {
	return formatEffect(c.Effect, c.Bonus(tier))
}

// CurrentBonusText renders the effect at the card's current tier, or with a
// zero value when the card is not owned.
func (c Card) CurrentBonusText() string {
	if !c.Owned() {
		return formatEffect(c.Effect, 0)
	}
	return c.BonusText(c.Stars())
}

// PassiveLabel is the current bonus text with a " (Passive)" suffix for passive
// cards whose effect text does not already say so.
func (c Card) PassiveLabel() string {
	text := c.CurrentBonusText()
	if c.Passive && !strings.HasSuffix(c.Effect, "(Passive)") {
		text += " (Passive)"
	}
	return text
}

// formatEffect substitutes the first "{" placeholder with v.
func formatEffect(effect string, v float64) string {
	return strings.Replace(effect, "{", FormatNumber(v), 1)
}

// FormatNumber renders v with at most two decimals and no trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
