package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkillKey(t *testing.T) {
	tests := []struct {
		input string
		index int
		ok    bool
	}{
		{"skill_0", 0, true},
		{"skill_17", 17, true},
		{"skill_3_x", 3, true},
		{"skill_", 0, false},
		{"skill_abc", 0, false},
		{"skill_0abc", 0, true},
		{"skill_12x", 12, true},
		{"skill_-", 0, false},
		{"damage", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			index, ok := ParseSkillKey(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.index, index)
		})
	}
}

func TestSkillKey(t *testing.T) {
	assert.Equal(t, "skill_12", SkillKey(SkillSailing))
}

func TestDefaultTaxonomy_SkillsCoverEnumeration(t *testing.T) {
	tax := DefaultTaxonomy()
	require.Len(t, tax.Skills, SkillSummoning+1)
	for i, s := range tax.Skills {
		assert.Equal(t, i, s.Index)
		assert.NotEmpty(t, s.BonusIDs, s.Name)
	}
}

func TestCategoryIDs(t *testing.T) {
	tax := DefaultTaxonomy()

	ids, ok := tax.CategoryIDs(CategoryDrop)
	assert.True(t, ok)
	assert.Equal(t, []int{10, 12, 14, 64, 74}, ids)

	_, ok = tax.CategoryIDs("luck")
	assert.False(t, ok)
}

func TestParseTaxonomy_PartialOverride(t *testing.T) {
	data := []byte(`
damage: [1, 2]
skills:
  - index: 0
    name: Mining
    bonus_ids: [7]
`)
	tax, err := ParseTaxonomy(data)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, tax.Damage)
	assert.Equal(t, DefaultTaxonomy().Exp, tax.Exp)
	require.Len(t, tax.Skills, 1)
	assert.Equal(t, []int{7}, tax.SkillIDs(0))
	assert.Nil(t, tax.SkillIDs(1))
}

func TestParseTaxonomy_Invalid(t *testing.T) {
	_, err := ParseTaxonomy([]byte("damage: {"))
	assert.Error(t, err)
}

func TestLoadTaxonomy(t *testing.T) {
	tax, err := LoadTaxonomy("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTaxonomy(), tax)

	path := filepath.Join(t.TempDir(), "bonuses.yaml")
	require.NoError(t, os.WriteFile(path, []byte("drop: [99]\n"), 0644))
	tax, err = LoadTaxonomy(path)
	require.NoError(t, err)
	assert.Equal(t, []int{99}, tax.Drop)

	_, err = LoadTaxonomy(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	opts := DefaultTaxonomy().Options()
	require.Len(t, opts, 5+18)

	assert.Equal(t, Option{Label: AllTypesLabel, Value: ""}, opts[0])
	assert.Equal(t, Option{Label: "Damage", Value: "damage"}, opts[1])
	assert.Equal(t, Option{Label: "Drop Rate", Value: "drop"}, opts[4])
	assert.Equal(t, Option{Label: "Mining", Value: "skill_0"}, opts[5])
	assert.Equal(t, Option{Label: "Summoning", Value: "skill_17"}, opts[len(opts)-1])
}

func TestLabel(t *testing.T) {
	tax := DefaultTaxonomy()
	assert.Equal(t, AllTypesLabel, tax.Label(""))
	assert.Equal(t, "EXP", tax.Label("exp"))
	assert.Equal(t, "Worship", tax.Label("skill_8"))
	assert.Equal(t, "luck", tax.Label("luck"))
}
