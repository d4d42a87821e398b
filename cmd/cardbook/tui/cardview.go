package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/cardbook/internal/cards"
	"github.com/ruminaider/cardbook/internal/gallery"
)

// Notices shown in place of the card sets.
const (
	FilteringNotice = "Filtering cards..."
	NoMatchNotice   = "No cards match your search criteria."
)

// suggestionCount is how many "did you mean" names are offered.
const suggestionCount = 3

// RenderGallery renders the heading and the pipeline's current result. With
// details set, every card row is followed by its detail block.
func RenderGallery(p *gallery.Pipeline, spinnerFrame string, details bool) string {
	var b strings.Builder
	b.WriteString(HeadingStyle.Render("Cards"))

	switch p.Status() {
	case gallery.StatusEmpty:
		return b.String()
	case gallery.StatusFiltering:
		b.WriteString("\n\n")
		b.WriteString(NoticeStyle.Render(strings.TrimSpace(spinnerFrame + " " + FilteringNotice)))
		return b.String()
	case gallery.StatusNoMatches:
		b.WriteString("\n\n")
		b.WriteString(NoticeStyle.Render(NoMatchNotice))
		if names := p.Suggestions(suggestionCount); len(names) > 0 {
			b.WriteString("\n")
			b.WriteString(DimStyle.Render("Did you mean: " + strings.Join(names, ", ") + "?"))
		}
		return b.String()
	}

	for _, s := range p.VisibleSets() {
		b.WriteString("\n\n")
		b.WriteString(RenderSet(s, p.VisibleCards(s), details))
	}
	return b.String()
}

// RenderSet renders one card set block with the given visible cards.
func RenderSet(s cards.Set, visible []cards.Card, details bool) string {
	var b strings.Builder

	name := s.DisplayName
	if name == "" {
		name = s.Name
	}
	nameStyle := SetNameStyle
	if !s.Owned() {
		nameStyle = DimStyle
	}
	b.WriteString(nameStyle.Render(name + " Set"))
	b.WriteString("\n")

	level := s.Level()
	bonusStyle := BonusStyle
	if s.Bonus(level) == 0 {
		bonusStyle = DimStyle
	}
	b.WriteString(bonusStyle.Render(s.BonusText(level)))
	b.WriteString("\n")

	b.WriteString(DimStyle.Render(fmt.Sprintf("Card levels: %d / %d", s.TotalLevels(), s.MaxLevels())))
	if level < cards.MaxSetLevel {
		b.WriteString(DimStyle.Render(fmt.Sprintf(" · Next bonus level in %d card levels: %s",
			s.LevelsToNext(), s.BonusText(level+1))))
	}

	nameWidth := 0
	for _, c := range visible {
		nameWidth = max(nameWidth, ansi.StringWidth(c.DisplayName))
	}
	for _, c := range visible {
		b.WriteString("\n")
		b.WriteString(renderCard(c, nameWidth))
		if details {
			b.WriteString("\n")
			b.WriteString(RenderCardDetail(c))
		}
	}
	return b.String()
}

// renderCard renders one card row: name, bonus and progress.
func renderCard(c cards.Card, nameWidth int) string {
	name := fmt.Sprintf("%-*s", nameWidth, c.DisplayName)
	if c.Owned() {
		name = CardNameStyle.Render(name)
	} else {
		name = DimStyle.Render(name)
	}

	bonus := c.PassiveLabel()
	switch {
	case !c.Owned():
		bonus = DimStyle.Render(bonus)
	case c.Passive:
		bonus = PassiveStyle.Render(bonus)
	default:
		bonus = BonusStyle.Render(bonus)
	}

	row := "  " + name + "  " + bonus
	if !c.IsMaxed() {
		progress := fmt.Sprintf("%s / %s", cards.FormatNumber(c.Count), cards.FormatNumber(c.CardsForStar(c.MaxStars())))
		if c.Owned() {
			exact, inGame := c.NextStarCounts()
			progress += fmt.Sprintf(", next star in %d", exact)
			if inGame != exact {
				progress += fmt.Sprintf(" (in-game %d)", inGame)
			}
		}
		row += "  " + DimStyle.Render(progress)
	}
	return row
}

// detailIndent lines the detail block up under the card name.
const detailIndent = "    "

// RenderCardDetail renders the collected count, base drop rate, the bonus
// and card threshold of every star tier, and the cards left to the next tier.
// When the threshold is fractional the game rounds the remainder up, so both
// numbers are shown.
func RenderCardDetail(c cards.Card) string {
	lines := []string{
		DimStyle.Render(fmt.Sprintf("Cards collected: %s", cards.FormatNumber(c.Count))),
		DimStyle.Render(fmt.Sprintf("Base drop rate: %s", c.DropRateText())),
	}
	for tier := 0; tier < cards.MaxCardLevel; tier++ {
		style := DimStyle
		if c.Owned() && tier == c.Stars() {
			style = CardNameStyle
		}
		lines = append(lines, style.Render(
			fmt.Sprintf("%d★ %s (%.0f cards)", tier, c.BonusText(tier), math.Floor(c.CardsForStar(tier)))))
	}
	if !c.IsMaxed() {
		exact, inGame := c.NextStarCounts()
		lines = append(lines, DimStyle.Render(fmt.Sprintf("Next card level in %d cards", exact)))
		if inGame != exact {
			lines = append(lines, NoticeStyle.Render(
				fmt.Sprintf("In-game will say %d but it is really %d due to rounding", inGame, exact)))
		}
	}

	for i, l := range lines {
		lines[i] = detailIndent + l
	}
	return strings.Join(lines, "\n")
}

// CardPane is the scrolling card set area.
type CardPane struct {
	lines   []string
	offset  int
	width   int
	height  int
	focused bool
}

// NewCardPane creates an empty card pane.
func NewCardPane() CardPane {
	return CardPane{}
}

// SetSize sets the available dimensions.
func (c *CardPane) SetSize(w, h int) {
	c.width = w
	c.height = h
	c.clampOffset()
}

// SetFocused sets whether the pane has keyboard focus.
func (c *CardPane) SetFocused(f bool) {
	c.focused = f
}

// SetContent replaces the rendered gallery. The scroll position is kept when
// possible.
func (c *CardPane) SetContent(content string) {
	c.lines = strings.Split(content, "\n")
	c.clampOffset()
}

// ScrollTop scrolls back to the first line.
func (c *CardPane) ScrollTop() {
	c.offset = 0
}

// Offset returns the first visible line.
func (c CardPane) Offset() int {
	return c.offset
}

func (c *CardPane) clampOffset() {
	maxOffset := len(c.lines) - c.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	c.offset = min(max(c.offset, 0), maxOffset)
}

// Update handles scrolling keys when the pane has focus.
func (c CardPane) Update(msg tea.Msg) (CardPane, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			c.offset--
		case "down", "j":
			c.offset++
		case "pgup", "ctrl+u":
			c.offset -= max(c.height/2, 1)
		case "pgdown", "ctrl+d":
			c.offset += max(c.height/2, 1)
		case "home", "g":
			c.offset = 0
		case "end", "G":
			c.offset = len(c.lines)
		case "left", "h":
			return c, func() tea.Msg {
				return FocusChangeMsg{Zone: FocusSidebar}
			}
		}
		c.clampOffset()
	}
	return c, nil
}

// View renders the visible window of the gallery.
func (c CardPane) View() string {
	end := len(c.lines)
	if c.height > 0 && c.offset+c.height < end {
		end = c.offset + c.height
	}
	window := c.lines[c.offset:end]

	textWidth := c.width - 2 // ContentPaneStyle padding
	out := make([]string, 0, max(c.height, len(window)))
	for _, line := range window {
		if textWidth > 0 {
			line = ansi.Truncate(line, textWidth, "…")
		}
		out = append(out, line)
	}
	for len(out) < c.height {
		out = append(out, "")
	}
	return ContentPaneStyle.Render(strings.Join(out, "\n"))
}
