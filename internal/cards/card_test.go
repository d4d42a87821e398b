package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardsForStar(t *testing.T) {
	c := Card{PerTier: 2}

	tests := []struct {
		star int
		want float64
	}{
		{0, 1},
		{1, 2},
		{2, 6},
		{3, 12},
		{4, 20},
		{5, 30},
		{9, 30}, // clamped to the last tier
		{-1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.CardsForStar(tt.star), "star %d", tt.star)
	}
}

func TestCardsForStar_FractionalBase(t *testing.T) {
	c := Card{PerTier: 1.5}
	assert.Equal(t, 1.5, c.CardsForStar(1))
	assert.Equal(t, 4.5, c.CardsForStar(2))
}

func TestStars(t *testing.T) {
	tests := []struct {
		name   string
		card   Card
		stars  int
		level  int
		maxed  bool
		toNext float64
	}{
		{"unowned", Card{PerTier: 2}, 0, 0, false, 1},
		{"acquired", Card{PerTier: 2, Count: 1}, 0, 1, false, 1},
		{"two stars", Card{PerTier: 2, Count: 7}, 2, 3, false, 5},
		{"four star cap", Card{PerTier: 2, Count: 25}, 4, 5, true, 5},
		{"five star card", Card{PerTier: 2, Count: 25, FiveStar: true}, 4, 5, false, 5},
		{"five star maxed", Card{PerTier: 2, Count: 30, FiveStar: true}, 5, 6, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.stars, tt.card.Stars())
			assert.Equal(t, tt.level, tt.card.Level())
			assert.Equal(t, tt.maxed, tt.card.IsMaxed())
			assert.Equal(t, tt.toNext, tt.card.CardsToNextStar())
		})
	}
}

func TestBonusText(t *testing.T) {
	c := Card{Effect: "+{% Total Damage", BonusPerLevel: 2}
	assert.Equal(t, "+2% Total Damage", c.BonusText(0))
	assert.Equal(t, "+6% Total Damage", c.BonusText(2))
}

func TestBonusText_RoundsFloatNoise(t *testing.T) {
	c := Card{Effect: "+{ Mining Efficiency", BonusPerLevel: 0.1}
	assert.Equal(t, "+0.3 Mining Efficiency", c.BonusText(2))
}

func TestCurrentBonusText(t *testing.T) {
	c := Card{Effect: "+{% Drop Rate", BonusPerLevel: 1, PerTier: 2}
	assert.Equal(t, "+0% Drop Rate", c.CurrentBonusText())

	c.Count = 7
	assert.Equal(t, "+3% Drop Rate", c.CurrentBonusText())
}

func TestPassiveLabel(t *testing.T) {
	active := Card{Effect: "+{ Str", BonusPerLevel: 1, Count: 1}
	assert.Equal(t, "+1 Str", active.PassiveLabel())

	passive := Card{Effect: "+{ Str", BonusPerLevel: 1, Count: 1, Passive: true}
	assert.Equal(t, "+1 Str (Passive)", passive.PassiveLabel())

	labelled := Card{Effect: "+{ Str (Passive)", BonusPerLevel: 1, Count: 1, Passive: true}
	assert.Equal(t, "+1 Str (Passive)", labelled.PassiveLabel())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "3", FormatNumber(3))
	assert.Equal(t, "2.5", FormatNumber(2.5))
	assert.Equal(t, "0.33", FormatNumber(1.0/3))
}

func TestNextStarCounts(t *testing.T) {
	exact, inGame := Card{PerTier: 1.5, Count: 2}.NextStarCounts()
	assert.Equal(t, 2, exact)
	assert.Equal(t, 3, inGame)

	exact, inGame = Card{PerTier: 2, Count: 3}.NextStarCounts()
	assert.Equal(t, 3, exact)
	assert.Equal(t, 3, inGame)

	exact, inGame = Card{PerTier: 2}.NextStarCounts()
	assert.Equal(t, 1, exact)
	assert.Equal(t, 1, inGame)
}

func TestDropRateText(t *testing.T) {
	assert.Equal(t, "1 in 2,500", Card{DropRate: "1 in 2,500"}.DropRateText())
	assert.Equal(t, "Unknown", Card{DropRate: "  "}.DropRateText())
}
