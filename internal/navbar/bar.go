package navbar

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tnguyen21/nexusflow-tui/internal/theme"
)

// Link is a navigation entry. Anchor names the page section it targets.
type Link struct {
	Label  string
	Anchor string
}

// Treatment is the visual treatment of the bar.
type Treatment int

const (
	TreatmentTransparent Treatment = iota // tall, no background, no border
	TreatmentOpaque                       // short, solid background, bottom border
)

func (t Treatment) String() string {
	if t == TreatmentOpaque {
		return "opaque"
	}
	return "transparent"
}

// ViewState is the tuple the renderer consumes.
type ViewState struct {
	Mode    ScrollMode
	Overlay OverlayState
}

// Options configures a Bar.
type Options struct {
	Brand     string
	Links     []Link
	CTA       string
	Threshold int
	// OnChange receives the view state after every scroll mode or overlay change.
	OnChange func(ViewState)
	Logger   *log.Logger
}

// Bar is the navigation bar composition root. It wires a Tracker and an
// Overlay to the renderer and keeps no view state of its own.
type Bar struct {
	brand     string
	links     []Link
	cta       string
	threshold int

	tracker *Tracker
	overlay *Overlay

	mounted  bool
	onChange func(ViewState)
	logger   *log.Logger
}

// NewBar creates an unmounted bar reading scroll offsets from src.
func NewBar(src ScrollSource, opts Options) *Bar {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &Bar{
		brand:     opts.Brand,
		links:     opts.Links,
		cta:       opts.CTA,
		threshold: opts.Threshold,
		tracker:   NewTracker(src),
		onChange:  opts.OnChange,
		logger:    logger,
	}
	b.overlay = NewOverlay(func(s OverlayState) {
		b.logger.Debug("overlay transition", "state", s, "seq", b.overlay.Seq())
		b.emit()
	})
	return b
}

// Mount starts scroll tracking. Mounting a mounted bar does nothing.
func (b *Bar) Mount() {
	if b.mounted {
		return
	}
	b.mounted = true
	b.tracker.Start(b.threshold, func(m ScrollMode) {
		b.logger.Debug("scroll mode", "mode", m)
		b.emit()
	})
}

// Unmount releases the scroll subscription. Only the first call after Mount
// stops the tracker.
func (b *Bar) Unmount() {
	if !b.mounted {
		return
	}
	b.mounted = false
	b.tracker.Stop()
}

// Mounted reports whether the bar is between Mount and Unmount.
func (b *Bar) Mounted() bool { return b.mounted }

// Tracker returns the bar's scroll mode tracker.
func (b *Bar) Tracker() *Tracker { return b.tracker }

// Overlay returns the bar's overlay lifecycle.
func (b *Bar) Overlay() *Overlay { return b.overlay }

// State returns the current view state.
func (b *Bar) State() ViewState {
	return ViewState{Mode: b.tracker.Mode(), Overlay: b.overlay.State()}
}

// Treatment selects the visual treatment for the current scroll mode.
func (b *Bar) Treatment() Treatment {
	if b.tracker.Mode() == ModeScrolled {
		return TreatmentOpaque
	}
	return TreatmentTransparent
}

// ToggleIcon returns the glyph of the overlay toggle control.
func (b *Bar) ToggleIcon() string {
	switch b.overlay.State() {
	case OverlayOpening, OverlayOpen:
		return theme.IconClose
	default:
		return theme.IconMenu
	}
}

// SetContent replaces the inert render inputs.
func (b *Bar) SetContent(brand string, links []Link, cta string) {
	b.brand = brand
	b.links = links
	b.cta = cta
}

// Links returns the navigation links.
func (b *Bar) Links() []Link { return b.links }

// LinkAt returns the i-th link.
func (b *Bar) LinkAt(i int) (Link, bool) {
	if i < 0 || i >= len(b.links) {
		return Link{}, false
	}
	return b.links[i], true
}

func (b *Bar) emit() {
	if b.onChange != nil {
		b.onChange(b.State())
	}
}

func (b *Bar) style() lipgloss.Style {
	if b.Treatment() == TreatmentOpaque {
		return theme.NavOpaqueStyle
	}
	return theme.NavTransparentStyle
}

// Height returns the number of rows View occupies in the current treatment.
func (b *Bar) Height() int {
	return 1 + b.style().GetVerticalFrameSize()
}

// ToggleWidth returns the width of the toggle control in compact views.
func (b *Bar) ToggleWidth() int {
	return lipgloss.Width(theme.ToggleStyle.Render(b.ToggleIcon()))
}

// View renders the bar at width. Compact views show the overlay toggle in
// place of the inline links.
func (b *Bar) View(width int, compact bool) string {
	style := b.style()
	inner := width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	left := theme.BrandStyle.Render(theme.IconBrand + " " + b.brand)

	var right string
	if compact {
		right = theme.ToggleStyle.Render(b.ToggleIcon())
	} else {
		parts := make([]string, 0, len(b.links)+1)
		for _, l := range b.links {
			parts = append(parts, theme.NavLinkStyle.Render(l.Label))
		}
		if b.cta != "" {
			parts = append(parts, " "+theme.NavButtonStyle.Render(b.cta))
		}
		right = strings.Join(parts, " ")
	}

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	row := left + strings.Repeat(" ", gap) + right
	return style.Width(width).Render(row)
}

// OverlayView renders the fully expanded overlay. The cursor row is only
// highlighted while the overlay is interactive.
func (b *Bar) OverlayView(width, cursor int) string {
	interactive := b.overlay.Interactive()

	rows := make([]string, 0, len(b.links)+2)
	for i, l := range b.links {
		if interactive && i == cursor {
			rows = append(rows, theme.OverlayCursorStyle.Render("›")+theme.OverlayActiveRowStyle.Render(l.Label))
			continue
		}
		rows = append(rows, " "+theme.OverlayRowStyle.Render(l.Label))
	}
	if b.cta != "" {
		rows = append(rows, "", " "+theme.NavButtonStyle.Render(b.cta))
	}
	return theme.OverlayStyle.Width(width).Render(strings.Join(rows, "\n"))
}
