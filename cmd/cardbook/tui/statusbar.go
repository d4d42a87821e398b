package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// GallerySummary carries counts for the status bar.
type GallerySummary struct {
	Sets    int // visible sets
	Cards   int // visible cards
	Total   int // loaded cards
	Focus   FocusZone
	Updated string // time of the last data load, empty before the first
	Error   string // last reload failure
}

// StatusBar renders the bottom row with counts and keyboard shortcuts.
type StatusBar struct {
	summary GallerySummary
	width   int
}

// NewStatusBar creates a status bar with default values.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the status bar.
func (s *StatusBar) Update(summary GallerySummary) {
	s.summary = summary
}

// View renders the status bar.
func (s StatusBar) View() string {
	left := fmt.Sprintf("%d/%d cards in %d sets · %s",
		s.summary.Cards, s.summary.Total, s.summary.Sets, s.summary.Focus)
	if s.summary.Updated != "" {
		left += " · loaded " + s.summary.Updated
	}
	if s.summary.Error != "" {
		left += " · reload failed: " + s.summary.Error
	}

	shortcuts := []string{
		StatusBarKeyStyle.Render("/") + ": search",
		StatusBarKeyStyle.Render("p") + "/" + StatusBarKeyStyle.Render("a") + ": passive/active",
		StatusBarKeyStyle.Render("x") + ": clear",
		StatusBarKeyStyle.Render("?") + ": help",
	}
	right := strings.Join(shortcuts, " · ")

	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	availableWidth := s.width - 2 // account for StatusBarStyle padding
	gap := availableWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	return StatusBarStyle.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}
