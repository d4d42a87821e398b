package tui

import (
	"github.com/ruminaider/cardbook/internal/appdata"
	"github.com/ruminaider/cardbook/internal/gallery"
)

// FocusZone identifies which component currently has keyboard focus.
type FocusZone int

const (
	FocusSearch  FocusZone = iota // search box receives typed text
	FocusSidebar                  // bonus type list
	FocusContent                  // scrolling card set pane
)

// String returns the display name for a focus zone.
func (z FocusZone) String() string {
	switch z {
	case FocusSearch:
		return "Search"
	case FocusSidebar:
		return "Bonus types"
	case FocusContent:
		return "Cards"
	default:
		return "Unknown"
	}
}

// focusOrder is the Tab cycling order.
var focusOrder = []FocusZone{FocusSearch, FocusSidebar, FocusContent}

// --- Inter-component messages ---

// BonusSwitchMsg is sent when the sidebar selection changes.
type BonusSwitchMsg struct{ Value string }

// FocusChangeMsg requests a focus zone transition.
type FocusChangeMsg struct{ Zone FocusZone }

// OverlayCloseMsg is emitted when the help overlay is dismissed.
type OverlayCloseMsg struct{}

// TimerMsg delivers an elapsed pipeline timer back to the model.
type TimerMsg struct{ Timer gallery.Timer }

// CardsUpdatedMsg carries a new data snapshot from the store.
type CardsUpdatedMsg struct{ Snapshot appdata.Snapshot }
