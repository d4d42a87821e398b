package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/cardbook/internal/filter"
)

// SearchBar is the top strip: the card name search box, the selected bonus
// type and the passive/active toggles.
type SearchBar struct {
	input     textinput.Model
	bonus     string // label of the selected bonus type
	criteria  filter.Criteria
	filtering bool
	spinner   string // current spinner frame, shown while filtering
	width     int
}

// NewSearchBar creates an unfocused search bar.
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search by card name"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 30
	return SearchBar{input: ti, bonus: filter.AllTypesLabel}
}

// SetWidth sets the available width for rendering.
func (s *SearchBar) SetWidth(w int) {
	s.width = w
	inputWidth := w / 3
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.input.Width = inputWidth
}

// Focus gives the search box keyboard focus.
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes keyboard focus from the search box.
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused reports whether the search box has focus.
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the search box text.
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetValue replaces the search box text.
func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
}

// SetState refreshes the filter summary shown next to the search box.
func (s *SearchBar) SetState(bonusLabel string, criteria filter.Criteria, filtering bool, spinnerFrame string) {
	s.bonus = bonusLabel
	s.criteria = criteria
	s.filtering = filtering
	s.spinner = spinnerFrame
}

// Update forwards key messages to the text input.
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the search strip.
func (s SearchBar) View() string {
	toggle := func(label string, on bool) string {
		if on {
			return ToggleOnStyle.Render("[x] " + label)
		}
		return ToggleOffStyle.Render("[ ] " + label)
	}

	parts := []string{
		s.input.View(),
		BonusLabelStyle.Render(s.bonus),
		toggle("Passive Only", s.criteria.PassiveOnly),
		toggle("Active Only", s.criteria.ActiveOnly),
	}
	if s.filtering {
		parts = append(parts, NoticeStyle.Render(s.spinner))
	}
	content := strings.Join(parts, "  ")

	width := s.width - 2 // SearchBarStyle padding
	if width > 0 && ansi.StringWidth(content) > width {
		content = ansi.Truncate(content, width, "…")
	}
	return SearchBarStyle.Width(s.width).Render(content)
}
