package filter

// Option is one selectable bonus type.
type Option struct {
	Label string
	Value string
}

// AllTypesLabel is the label of the empty bonus type.
const AllTypesLabel = "All Types"

var categoryOptions = []Option{
	{Label: "Damage", Value: CategoryDamage},
	{Label: "EXP", Value: CategoryExp},
	{Label: "Stats", Value: CategoryStats},
	{Label: "Drop Rate", Value: CategoryDrop},
}

// Options lists every bonus type in display order: no filter, the four
// categories, then one entry per skill.
func (t Taxonomy) Options() []Option {
	opts := make([]Option, 0, 1+len(categoryOptions)+len(t.Skills))
	opts = append(opts, Option{Label: AllTypesLabel, Value: ""})
	opts = append(opts, categoryOptions...)
	for _, s := range t.Skills {
		opts = append(opts, Option{Label: s.Name, Value: SkillKey(s.Index)})
	}
	return opts
}

// Label returns the display label for a bonus type value. Unknown values are
// returned unchanged.
func (t Taxonomy) Label(value string) string {
	for _, o := range t.Options() {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
