package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/cardbook/internal/appdata"
	"github.com/ruminaider/cardbook/internal/gallery"
)

// Source provides card data snapshots to the gallery.
type Source interface {
	Snapshot() appdata.Snapshot
}

// Reloader is implemented by sources that can re-read their backing file.
type Reloader interface {
	Reload() error
}

// Model is the root bubbletea model for the card gallery.
type Model struct {
	pipeline *gallery.Pipeline
	source   Source
	updates  <-chan struct{} // store notifications, nil when not watching
	version  uint64          // last applied snapshot version
	updated  time.Time

	// Layout components.
	search    SearchBar
	sidebar   Sidebar
	pane      CardPane
	statusBar StatusBar
	overlay   Overlay
	spinner   spinner.Model
	spinning  bool
	details   bool // card rows expanded with their detail block

	// State.
	focusZone     FocusZone
	width, height int
	ready         bool // set after first WindowSizeMsg
	quitting      bool
	err           error // last reload error, shown in the status bar
}

// NewModel creates the gallery model. Filters already set on p are shown as
// the initial state. The source's current snapshot is applied at once;
// updates, when non-nil, signals newer snapshots.
func NewModel(p *gallery.Pipeline, src Source, updates <-chan struct{}) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = NoticeStyle

	m := Model{
		pipeline:  p,
		source:    src,
		updates:   updates,
		search:    NewSearchBar(),
		sidebar:   NewSidebar(p.Taxonomy().Options()),
		pane:      NewCardPane(),
		statusBar: NewStatusBar(),
		spinner:   sp,
		focusZone: FocusContent,
	}
	m.pane.SetFocused(true)
	m.search.SetValue(p.Input())
	m.sidebar.SetActive(p.Criteria().BonusType)
	m.applySnapshot(src.Snapshot())
	m.sync()
	return m
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitForUpdate()
}

// waitForUpdate blocks on the store's notification channel and turns the
// next signal into a CardsUpdatedMsg.
func (m Model) waitForUpdate() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	updates, src := m.updates, m.source
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return CardsUpdatedMsg{Snapshot: src.Snapshot()}
	}
}

// schedule turns pipeline timer requests into tea.Tick commands.
func schedule(timers []gallery.Timer) tea.Cmd {
	if len(timers) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(timers))
	for _, t := range timers {
		cmds = append(cmds, tea.Tick(t.Delay, func(time.Time) tea.Msg {
			return TimerMsg{Timer: t}
		}))
	}
	return tea.Batch(cmds...)
}

// Update satisfies tea.Model. Routes messages to the correct child component.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.distributeSize()
		return m, nil

	case TimerMsg:
		return m.afterPipeline(m.pipeline.Fire(msg.Timer))

	case CardsUpdatedMsg:
		m.applySnapshot(msg.Snapshot)
		m.sync()
		return m, m.waitForUpdate()

	case spinner.TickMsg:
		if !m.pipeline.Filtering() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.sync()
		return m, cmd

	case BonusSwitchMsg:
		m.pane.ScrollTop()
		return m.afterPipeline(m.pipeline.SetBonusType(msg.Value))

	case FocusChangeMsg:
		return m.setFocus(msg.Zone)

	case OverlayCloseMsg:
		return m, nil
	}

	if m.overlay.Active() {
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.focusZone == FocusSearch {
			return m.updateSearch(msg)
		}
		return m, nil
	}

	// Keys that work everywhere, including while typing.
	switch keyMsg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		return m.cycleFocus(+1)
	case "shift+tab":
		return m.cycleFocus(-1)
	}

	if m.focusZone == FocusSearch {
		switch keyMsg.String() {
		case "esc", "enter":
			return m.setFocus(FocusContent)
		}
		return m.updateSearch(msg)
	}

	switch keyMsg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "/":
		return m.setFocus(FocusSearch)
	case "?":
		m.overlay = NewHelpOverlay()
		m.overlay.SetWidth(OverlayMaxWidth(m.width))
		return m, nil
	case "p":
		m.pane.ScrollTop()
		return m.afterPipeline(m.pipeline.SetPassiveOnly(!m.pipeline.Criteria().PassiveOnly))
	case "a":
		m.pane.ScrollTop()
		return m.afterPipeline(m.pipeline.SetActiveOnly(!m.pipeline.Criteria().ActiveOnly))
	case "d":
		m.details = !m.details
		m.sync()
		return m, nil
	case "x":
		m.search.SetValue("")
		m.sidebar.SetActive("")
		m.pane.ScrollTop()
		return m.afterPipeline(m.pipeline.ClearFilters())
	case "r":
		if r, ok := m.source.(Reloader); ok {
			m.err = r.Reload()
			if m.err == nil && m.updates == nil {
				m.applySnapshot(m.source.Snapshot())
			}
			m.sync()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focusZone {
	case FocusSidebar:
		m.sidebar, cmd = m.sidebar.Update(msg)
	case FocusContent:
		m.pane, cmd = m.pane.Update(msg)
	}
	return m, cmd
}

func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	m.pane.ScrollTop()
	next, timerCmd := m.afterPipeline(m.pipeline.SetInput(m.search.Value()))
	return next, tea.Batch(cmd, timerCmd)
}

// afterPipeline refreshes the views after a pipeline change and schedules
// the timers it requested. The spinner starts when filtering begins.
func (m Model) afterPipeline(timers []gallery.Timer) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{schedule(timers)}
	if m.pipeline.Filtering() && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	m.sync()
	return m, tea.Batch(cmds...)
}

func (m Model) setFocus(zone FocusZone) (tea.Model, tea.Cmd) {
	m.focusZone = zone
	var cmd tea.Cmd
	if zone == FocusSearch {
		cmd = m.search.Focus()
	} else {
		m.search.Blur()
	}
	m.sidebar.SetFocused(zone == FocusSidebar)
	m.pane.SetFocused(zone == FocusContent)
	m.sync()
	return m, cmd
}

func (m Model) cycleFocus(dir int) (tea.Model, tea.Cmd) {
	idx := 0
	for i, z := range focusOrder {
		if z == m.focusZone {
			idx = i
		}
	}
	idx = (idx + dir + len(focusOrder)) % len(focusOrder)
	return m.setFocus(focusOrder[idx])
}

func (m *Model) applySnapshot(snap appdata.Snapshot) {
	if snap.Version != 0 && snap.Version == m.version {
		return
	}
	m.version = snap.Version
	m.updated = snap.Updated
	m.pipeline.SetData(snap.Cards, snap.Sets)
}

// sync pushes pipeline state into the child components.
func (m *Model) sync() {
	criteria := m.pipeline.Criteria()
	tax := m.pipeline.Taxonomy()

	frame := ""
	if m.pipeline.Filtering() {
		frame = m.spinner.View()
	}
	m.search.SetState(tax.Label(criteria.BonusType), criteria, m.pipeline.Filtering(), frame)
	m.sidebar.UpdateCounts(m.pipeline.OptionCounts())
	m.pane.SetContent(RenderGallery(m.pipeline, frame, m.details))

	summary := GallerySummary{
		Total: m.pipeline.TotalCards(),
		Focus: m.focusZone,
	}
	for _, s := range m.pipeline.VisibleSets() {
		summary.Sets++
		summary.Cards += len(m.pipeline.VisibleCards(s))
	}
	if !m.updated.IsZero() {
		summary.Updated = m.updated.Format(time.Kitchen)
	}
	if m.err != nil {
		summary.Error = m.err.Error()
	}
	m.statusBar.Update(summary)
}

func (m *Model) distributeSize() {
	searchHeight := 1
	statusBarHeight := 1
	mainHeight := max(m.height-searchHeight-statusBarHeight, 1)

	m.search.SetWidth(m.width)
	m.sidebar.SetHeight(mainHeight)

	// Content width = terminal - sidebar - sidebar border.
	contentWidth := max(m.width-SidebarWidth-1, 10)
	m.pane.SetSize(contentWidth, mainHeight)

	m.statusBar.SetWidth(m.width)
	m.overlay.SetWidth(OverlayMaxWidth(m.width))
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.pane.View())
	frame := m.search.View() + "\n" + main + "\n" + m.statusBar.View()

	if m.overlay.Active() {
		return Composite(frame, m.overlay.View(), m.width, m.height)
	}
	return frame
}

// Pipeline returns the gallery pipeline.
func (m Model) Pipeline() *gallery.Pipeline {
	return m.pipeline
}

// Ensure Model satisfies tea.Model at compile time.
var _ tea.Model = Model{}
