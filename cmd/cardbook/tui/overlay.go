package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// helpBindings lists the keys shown in the help overlay.
var helpBindings = []struct {
	key  string
	desc string
}{
	{"/", "search by card name"},
	{"esc", "leave the search box"},
	{"tab / shift+tab", "cycle focus"},
	{"j / k", "move or scroll"},
	{"enter", "open the selected bonus type"},
	{"p", "toggle passive only"},
	{"a", "toggle active only"},
	{"d", "show or hide card details"},
	{"x", "clear every filter"},
	{"r", "reload card data"},
	{"q / ctrl+c", "quit"},
}

// Overlay is a centered modal box listing the key bindings.
type Overlay struct {
	width  int
	active bool
}

// NewHelpOverlay creates an open help overlay.
func NewHelpOverlay() Overlay {
	return Overlay{active: true}
}

// Active returns whether the overlay is currently shown.
func (o Overlay) Active() bool {
	return o.active
}

// SetWidth sets the overlay box width.
func (o *Overlay) SetWidth(w int) {
	o.width = w
}

// Update closes the overlay on esc, enter, q or ?.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	if !o.active {
		return o, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter", "q", "?":
			o.active = false
			return o, func() tea.Msg { return OverlayCloseMsg{} }
		}
	}
	return o, nil
}

// View renders the overlay box. Compositing over a background is the
// caller's job, using Composite.
func (o Overlay) View() string {
	if !o.active {
		return ""
	}

	keyWidth := 0
	for _, b := range helpBindings {
		keyWidth = max(keyWidth, len(b.key))
	}

	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render("Keys"))
	b.WriteString("\n")
	for _, kb := range helpBindings {
		b.WriteString("\n")
		b.WriteString(OverlayKeyStyle.Render(kb.key + strings.Repeat(" ", keyWidth-len(kb.key))))
		b.WriteString("  ")
		b.WriteString(kb.desc)
	}

	style := OverlayStyle
	if o.width > 0 {
		style = style.Width(o.width)
	}
	return style.Render(b.String())
}

// Composite places the overlay box centered on top of the background string.
// The background is expected to be a fully rendered terminal frame.
func Composite(background string, overlay string, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}

	bgLines := strings.Split(background, "\n")
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, ansi.StringWidth(line))
	}

	startRow := max((totalHeight-len(overlayLines))/2, 0)
	startCol := max((totalWidth-overlayWidth)/2, 0)

	for i, overlayLine := range overlayLines {
		row := startRow + i
		if row >= len(bgLines) {
			break
		}

		bgLine := bgLines[row]
		bgWidth := ansi.StringWidth(bgLine)

		left := ansi.Truncate(bgLine, startCol, "")
		if pad := startCol - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}

		right := ""
		overlayEnd := startCol + ansi.StringWidth(overlayLine)
		if overlayEnd < bgWidth {
			right = ansi.TruncateLeft(bgLine, overlayEnd, "")
		}

		bgLines[row] = left + overlayLine + right
	}

	return strings.Join(bgLines[:totalHeight], "\n")
}

// OverlayMaxWidth returns a reasonable maximum width for the overlay content.
func OverlayMaxWidth(termWidth int) int {
	w := termWidth * 2 / 3
	if w < 40 {
		w = 40
	}
	if w > 60 {
		w = 60
	}
	return w
}
