package filter

// Criteria is the active set of gallery filters. The zero value filters
// nothing.
type Criteria struct {
	SearchTerm  string
	BonusType   string // "", a category name, or "skill_<index>"
	PassiveOnly bool
	ActiveOnly  bool
}

// Active reports whether any filter is set.
func (c Criteria) Active() bool {
	return c.SearchTerm != "" || c.BonusType != "" || c.PassiveOnly || c.ActiveOnly
}

// SetSearchTerm replaces the name search term.
func (c *Criteria) SetSearchTerm(term string) {
	c.SearchTerm = term
}

// SetBonusType replaces the selected bonus type.
func (c *Criteria) SetBonusType(bonusType string) {
	c.BonusType = bonusType
}

// SetPassiveOnly toggles the passive-only filter. Enabling it disables
// active-only.
func (c *Criteria) SetPassiveOnly(on bool) {
	c.PassiveOnly = on
	if on {
		c.ActiveOnly = false
	}
}

// SetActiveOnly toggles the active-only filter. Enabling it disables
// passive-only.
func (c *Criteria) SetActiveOnly(on bool) {
	c.ActiveOnly = on
	if on {
		c.PassiveOnly = false
	}
}

// Clear resets every filter.
func (c *Criteria) Clear() {
	*c = Criteria{}
}
