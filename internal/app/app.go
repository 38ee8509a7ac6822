package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tnguyen21/nexusflow-tui/internal/anim"
	"github.com/tnguyen21/nexusflow-tui/internal/config"
	"github.com/tnguyen21/nexusflow-tui/internal/content"
	"github.com/tnguyen21/nexusflow-tui/internal/navbar"
	"github.com/tnguyen21/nexusflow-tui/internal/section"
	"github.com/tnguyen21/nexusflow-tui/internal/theme"
)

// Model is the root bubbletea Model: the navigation bar on top of a
// scrolling page body, with a status bar underneath.
type Model struct {
	config  *config.Config
	store   *content.Store
	version uint64

	sections []section.Section
	layout   section.Layout

	bus      *navbar.ScrollBus
	bar      *navbar.Bar
	viewport viewport.Model

	width      int
	height     int
	layoutMode LayoutMode
	keys       KeyMap
	help       help.Model
	showHelp   bool

	overlayRows int // overlay rows currently drawn
	cursor      int // highlighted overlay link

	logger *log.Logger
}

// New creates a root Model and mounts its navigation bar. A nil store serves
// the built-in content.
func New(cfg config.Config, store *content.Store, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	site := content.Default()
	var version uint64
	if store != nil {
		site, version = store.Site()
	}

	bus := navbar.NewScrollBus()
	bar := navbar.NewBar(bus, navbar.Options{
		Brand:     site.Brand,
		Links:     navLinks(site.Links),
		CTA:       site.NavCTA,
		Threshold: cfg.ScrollThreshold,
		OnChange: func(s navbar.ViewState) {
			logger.Debug("view state", "mode", s.Mode, "overlay", s.Overlay)
		},
		Logger: logger,
	})
	bar.Mount()

	h := help.New()
	h.ShowAll = true

	return Model{
		config:   &cfg,
		store:    store,
		version:  version,
		sections: section.FromSite(site),
		bus:      bus,
		bar:      bar,
		viewport: viewport.New(0, 0),
		keys:     DefaultKeyMap(),
		help:     h,
		logger:   logger,
	}
}

// Close unmounts the navigation bar, releasing its scroll subscription.
// It is safe to call more than once.
func (m Model) Close() {
	m.bar.Unmount()
}

// Bar returns the navigation bar.
func (m Model) Bar() *navbar.Bar { return m.bar }

// ScrollBus returns the source the page publishes its scroll offset to.
func (m Model) ScrollBus() *navbar.ScrollBus { return m.bus }

// ShortHelp implements help.KeyMap for the application key bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Menu, k.Help}
}

// FullHelp implements help.KeyMap for the application key bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Menu, k.Back, k.Select, k.Jump},
		{k.Help, k.Quit},
	}
}

// Ensure KeyMap satisfies help.KeyMap at compile time.
var _ help.KeyMap = KeyMap{}

// Init starts content polling when the content is backed by a file.
func (m Model) Init() tea.Cmd {
	if m.store == nil || !m.store.Backed() {
		return nil
	}
	return anim.ScheduleContentPoll(m.config.ContentPollInterval())
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutMode = GetLayoutMode(msg.Width)
		m.help.Width = msg.Width
		m.relayout()
		return m.afterResize()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case anim.FrameMsg:
		return m.handleFrame(msg)

	case anim.AnimationSettledMsg:
		o := m.bar.Overlay()
		if msg.Seq == o.Seq() && o.State().Transitional() {
			o.AnimationSettled()
		}
		return m, nil

	case anim.ContentTickMsg:
		m.reloadContent()
		return m, anim.ScheduleContentPoll(m.config.ContentPollInterval())
	}

	return m.updateViewport(msg)
}

// View renders the navigation bar, the page body with the overlay drawn
// over its top rows, and the status bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	nav := m.bar.View(m.width, m.compact())

	var body string
	if m.showHelp {
		body = m.help.View(m.keys)
	} else {
		body = m.viewport.View()
		if m.overlayRows > 0 {
			body = drawOver(body, m.bar.OverlayView(m.width, m.cursor), m.overlayRows)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, nav, body, m.renderStatusBar())
}

// compact reports whether the bar shows the menu toggle instead of links.
func (m Model) compact() bool {
	return m.layoutMode != LayoutWide
}

// handleKey processes global key bindings, forwarding unhandled keys to the
// viewport.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Menu):
		return m.toggleOverlay()

	case key.Matches(msg, m.keys.Back):
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m.transition(m.bar.Overlay().Close)

	case key.Matches(msg, m.keys.Jump):
		return m.followLink(int(msg.String()[0] - '1'))
	}

	// Overlay navigation only while the overlay accepts input.
	if m.bar.Overlay().Interactive() {
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.bar.Links())-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Select):
			return m.followLink(m.cursor)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.syncScroll()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.syncScroll()
		return m, nil
	}

	return m.updateViewport(msg)
}

// handleMouse toggles the overlay on clicks on the menu control, follows
// clicked overlay links and forwards everything else to the viewport.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
		if msg.Y < m.bar.Height() && m.compact() && msg.X >= m.width-m.toggleZone() {
			return m.toggleOverlay()
		}
		if idx, ok := m.overlayLinkAt(msg.Y); ok {
			return m.followLink(idx)
		}
	}
	return m.updateViewport(msg)
}

// toggleZone is the width of the clickable area at the right edge of the bar.
func (m Model) toggleZone() int {
	return m.bar.ToggleWidth() + theme.NavOpaqueStyle.GetPaddingRight() + 1
}

// overlayLinkAt maps a screen row to an overlay link index. Rows cut off by
// the capped overlay height do not count.
func (m Model) overlayLinkAt(y int) (int, bool) {
	if !m.bar.Overlay().Interactive() {
		return 0, false
	}
	row := y - m.bar.Height()
	if row >= m.overlayRows {
		return 0, false
	}
	idx := row - theme.OverlayStyle.GetPaddingTop()
	if idx < 0 || idx >= len(m.bar.Links()) {
		return 0, false
	}
	return idx, true
}

func (m Model) toggleOverlay() (tea.Model, tea.Cmd) {
	if !m.compact() {
		return m, nil
	}
	if !m.bar.Overlay().Visible() {
		m.cursor = 0
	}
	return m.transition(m.bar.Overlay().Toggle)
}

// transition applies an overlay event and starts the animation of the new
// phase, if the event started one.
func (m Model) transition(event func()) (tea.Model, tea.Cmd) {
	o := m.bar.Overlay()
	before := o.Seq()
	event()
	if o.Seq() == before {
		return m, nil
	}
	return m, anim.ScheduleFrame(m.config.FrameInterval(), o.Seq())
}

// handleFrame draws one more (or one fewer) overlay row and reports the end
// of the animation once the overlay reaches its target height.
func (m Model) handleFrame(msg anim.FrameMsg) (tea.Model, tea.Cmd) {
	o := m.bar.Overlay()
	if msg.Seq != o.Seq() || !o.State().Transitional() {
		return m, nil
	}

	target := 0
	if o.State() == navbar.OverlayOpening {
		target = m.overlayHeight()
	}
	m.overlayRows = anim.Step(m.overlayRows, target)
	if m.overlayRows == target {
		return m, anim.Settle(msg.Seq)
	}
	return m, anim.ScheduleFrame(m.config.FrameInterval(), msg.Seq)
}

// overlayHeight is the fully expanded overlay height, capped to the body.
func (m Model) overlayHeight() int {
	h := lipgloss.Height(m.bar.OverlayView(m.width, m.cursor))
	if h > m.viewport.Height {
		h = m.viewport.Height
	}
	return h
}

// afterResize keeps the overlay consistent with the new size: a settled
// overlay snaps to its new height and widening to inline links closes it.
func (m Model) afterResize() (tea.Model, tea.Cmd) {
	o := m.bar.Overlay()
	if o.State() == navbar.OverlayOpen {
		m.overlayRows = m.overlayHeight()
	}
	if !m.compact() {
		return m.transition(o.Close)
	}
	return m, nil
}

// followLink scrolls to the section targeted by the i-th navigation link and
// closes the overlay.
func (m Model) followLink(i int) (tea.Model, tea.Cmd) {
	link, ok := m.bar.LinkAt(i)
	if !ok {
		return m, nil
	}
	if off, ok := m.layout.Offset(link.Anchor); ok {
		m.viewport.SetYOffset(off)
		m.syncScroll()
	} else {
		m.logger.Debug("link has no section", "anchor", link.Anchor)
	}
	return m.transition(m.bar.Overlay().Close)
}

// updateViewport forwards msg to the viewport and publishes any offset change.
func (m Model) updateViewport(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.syncScroll()
	return m, cmd
}

// syncScroll publishes the viewport offset to the scroll bus and resizes the
// viewport to whatever height the bar's treatment leaves.
func (m *Model) syncScroll() {
	if m.viewport.YOffset != m.bus.Offset() {
		m.bus.Publish(m.viewport.YOffset)
	}
	m.viewport.Height = ContentHeight(m.height, m.bar.Height())
}

// relayout re-renders the page body at the current width.
func (m *Model) relayout() {
	if m.width == 0 {
		return
	}
	m.layout = section.Compose(m.sections, m.width)
	m.viewport.Width = m.width
	m.viewport.Height = ContentHeight(m.height, m.bar.Height())
	m.viewport.SetContent(m.layout.Body)
	m.viewport.SetYOffset(m.viewport.YOffset)
	m.syncScroll()
}

// reloadContent picks up a new content version from the store.
func (m *Model) reloadContent() {
	if m.store == nil {
		return
	}
	site, v := m.store.Site()
	if v == m.version {
		return
	}
	m.version = v
	m.sections = section.FromSite(site)
	m.bar.SetContent(site.Brand, navLinks(site.Links), site.NavCTA)
	if m.cursor >= len(site.Links) {
		m.cursor = 0
	}
	m.relayout()
	if m.bar.Overlay().State() == navbar.OverlayOpen {
		m.overlayRows = m.overlayHeight()
	}
	m.logger.Info("content reloaded", "version", v)
}

// renderStatusBar renders the bottom status bar with the current view state.
func (m Model) renderStatusBar() string {
	s := m.bar.State()
	parts := []string{
		theme.AccentStyle.Render(s.Mode.String()),
		theme.MutedStyle.Render("menu " + s.Overlay.String()),
		theme.MutedStyle.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)),
	}
	if m.layoutMode != LayoutNarrow {
		parts = append(parts, theme.MutedStyle.Render("?=help  m=menu  q=quit"))
	}
	bar := strings.Join(parts, "  |  ")
	return theme.StatusBarStyle.Width(m.width).MaxHeight(1).Render(bar)
}

// drawOver replaces the first rows of base with the first rows of top.
func drawOver(base, top string, rows int) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")
	if rows > len(topLines) {
		rows = len(topLines)
	}
	if rows > len(baseLines) {
		rows = len(baseLines)
	}
	copy(baseLines, topLines[:rows])
	return strings.Join(baseLines, "\n")
}

// navLinks converts content links into navigation links.
func navLinks(links []content.Link) []navbar.Link {
	out := make([]navbar.Link, len(links))
	for i, l := range links {
		out[i] = navbar.Link{Label: l.Label, Anchor: l.Anchor}
	}
	return out
}
