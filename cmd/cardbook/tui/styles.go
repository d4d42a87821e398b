package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// SidebarWidth is the fixed width of the bonus type pane.
const SidebarWidth = 22

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorPeach    = lipgloss.Color(flavor.Peach().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Search bar styles.
var (
	// SearchBarStyle is the strip holding the search box and filter toggles.
	SearchBarStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Padding(0, 1)

	// ToggleOnStyle marks an enabled filter toggle.
	ToggleOnStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorGreen).
			Padding(0, 1)

	// ToggleOffStyle marks a disabled filter toggle.
	ToggleOffStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface1).
			Padding(0, 1)

	// BonusLabelStyle shows the selected bonus type next to the search box.
	BonusLabelStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Background(colorSurface0).
			Bold(true)
)

// Sidebar styles.
var (
	// ActiveSidebarStyle is used for the selected bonus type.
	ActiveSidebarStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Background(colorSurface1).
				Bold(true).
				PaddingLeft(1)

	// InactiveSidebarStyle is used for other bonus types.
	InactiveSidebarStyle = lipgloss.NewStyle().
				Foreground(colorText).
				PaddingLeft(1)

	// EmptySidebarStyle is used for bonus types that would keep no cards.
	EmptySidebarStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0).
				PaddingLeft(1)

	// SidebarContainerStyle wraps the sidebar column.
	SidebarContainerStyle = lipgloss.NewStyle().
				Width(SidebarWidth).
				BorderRight(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorSurface1)
)

// Card pane styles.
var (
	// HeadingStyle is the gallery title.
	HeadingStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// SetNameStyle is the card set title line.
	SetNameStyle = lipgloss.NewStyle().
			Foreground(colorPeach).
			Bold(true)

	// BonusStyle renders a set bonus that is in effect.
	BonusStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// DimStyle renders zero bonuses, unowned cards and hints.
	DimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// PassiveStyle renders the bonus line of passive cards.
	PassiveStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// CardNameStyle renders an owned card's name.
	CardNameStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	// NoticeStyle renders the filtering and no-match notices.
	NoticeStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	// ContentPaneStyle wraps the card pane.
	ContentPaneStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)
)

// Overlay styles.
var (
	// OverlayStyle is the border and background for modal overlays.
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorMantle).
			Foreground(colorText).
			Padding(1, 2)

	// OverlayTitleStyle is used for the title text in overlays.
	OverlayTitleStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	// OverlayKeyStyle is used for key names in the help overlay.
	OverlayKeyStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)
)
