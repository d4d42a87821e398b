package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/cardbook/internal/filter"
)

// SidebarEntry holds display data for one bonus type.
type SidebarEntry struct {
	Option filter.Option
	Count  int // cards this option would keep
}

// Sidebar renders the left-hand bonus type list.
type Sidebar struct {
	entries []SidebarEntry
	active  int  // index into entries
	offset  int  // first visible entry
	height  int  // available vertical space
	focused bool // true when sidebar has keyboard focus
}

// NewSidebar creates a sidebar listing the given options.
func NewSidebar(options []filter.Option) Sidebar {
	entries := make([]SidebarEntry, len(options))
	for i, o := range options {
		entries[i] = SidebarEntry{Option: o}
	}
	return Sidebar{entries: entries}
}

// SetHeight sets the available height for rendering.
func (s *Sidebar) SetHeight(h int) {
	s.height = h
	s.scrollToActive()
}

// SetFocused sets whether the sidebar currently has keyboard focus.
func (s *Sidebar) SetFocused(f bool) {
	s.focused = f
}

// SetActive moves the cursor to the option with the given value.
func (s *Sidebar) SetActive(value string) {
	for i, e := range s.entries {
		if e.Option.Value == value {
			s.active = i
			s.scrollToActive()
			return
		}
	}
}

// ActiveValue returns the highlighted option value.
func (s Sidebar) ActiveValue() string {
	if s.active >= 0 && s.active < len(s.entries) {
		return s.entries[s.active].Option.Value
	}
	return ""
}

// UpdateCounts refreshes the per-option card counts.
func (s *Sidebar) UpdateCounts(counts map[string]int) {
	for i := range s.entries {
		s.entries[i].Count = counts[s.entries[i].Option.Value]
	}
}

func (s *Sidebar) scrollToActive() {
	if s.height <= 0 {
		return
	}
	if s.active < s.offset {
		s.offset = s.active
	}
	if s.active >= s.offset+s.height {
		s.offset = s.active - s.height + 1
	}
}

func (s Sidebar) move(to int) (Sidebar, tea.Cmd) {
	if to < 0 || to >= len(s.entries) || to == s.active {
		return s, nil
	}
	s.active = to
	s.scrollToActive()
	value := s.entries[s.active].Option.Value
	return s, func() tea.Msg {
		return BonusSwitchMsg{Value: value}
	}
}

// Update handles key messages when the sidebar has focus.
func (s Sidebar) Update(msg tea.Msg) (Sidebar, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			return s.move(s.active - 1)
		case "down", "j":
			return s.move(s.active + 1)
		case "home", "g":
			return s.move(0)
		case "end", "G":
			return s.move(len(s.entries) - 1)
		case "enter", "right", "l":
			return s, func() tea.Msg {
				return FocusChangeMsg{Zone: FocusContent}
			}
		}
	}
	return s, nil
}

// View renders the bonus types with right-aligned counts.
func (s Sidebar) View() string {
	rowWidth := SidebarWidth
	textWidth := rowWidth - 1 // minus PaddingLeft(1)

	lines := make([]string, 0, s.height)
	end := len(s.entries)
	if s.height > 0 && s.offset+s.height < end {
		end = s.offset + s.height
	}

	for i := s.offset; i < end; i++ {
		e := s.entries[i]
		name := e.Option.Label
		count := strconv.Itoa(e.Count)
		gap := textWidth - len(name) - len(count)
		if gap < 1 {
			gap = 1
		}
		label := name + strings.Repeat(" ", gap) + count

		switch {
		case i == s.active && s.focused:
			lines = append(lines, ActiveSidebarStyle.Width(rowWidth).Render(label))
		case i == s.active:
			dimActiveStyle := lipgloss.NewStyle().
				Foreground(colorSubtext0).
				Background(colorSurface0).
				PaddingLeft(1)
			lines = append(lines, dimActiveStyle.Width(rowWidth).Render(label))
		case e.Count == 0:
			lines = append(lines, EmptySidebarStyle.Width(rowWidth).Render(fmt.Sprintf("%-*s", textWidth, label)))
		default:
			lines = append(lines, InactiveSidebarStyle.Width(rowWidth).Render(label))
		}
	}

	for len(lines) < s.height {
		lines = append(lines, "")
	}

	borderColor := colorSurface1
	if s.focused {
		borderColor = colorBlue
	}
	return SidebarContainerStyle.
		Height(s.height).
		BorderForeground(borderColor).
		Render(strings.Join(lines, "\n"))
}
