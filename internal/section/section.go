package section

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tnguyen21/nexusflow-tui/internal/content"
	"github.com/tnguyen21/nexusflow-tui/internal/theme"
)

// ID identifies each page section.
type ID int

const (
	SectionHero ID = iota
	SectionFeatures
	SectionStats
	SectionPricing
	SectionCTA
	SectionFooter
)

// Section is a static block of the page body.
type Section interface {
	ID() ID
	Anchor() string // target of navigation links, "" if none
	Title() string
	Render(width int) string
}

// FromSite builds the page sections in display order.
func FromSite(site content.Site) []Section {
	return []Section{
		NewHero(site.Hero),
		NewFeatures(site.FeaturesTitle, site.FeaturesIntro, site.Features),
		NewStats(site.Stats),
		NewPricing(site.PricingTitle, site.PricingIntro, site.Plans),
		NewCallToAction(site.CTA),
		NewFooter(site.Brand, site.Footer),
	}
}

// Layout is the composed page body together with the row each anchored
// section starts at.
type Layout struct {
	Body    string
	Lines   int
	anchors map[string]int
}

// Offset returns the first row of the section with the given anchor.
func (l Layout) Offset(anchor string) (int, bool) {
	off, ok := l.anchors[anchor]
	return off, ok
}

// Compose renders sections at width, separated by a blank row.
func Compose(sections []Section, width int) Layout {
	anchors := make(map[string]int, len(sections))
	parts := make([]string, 0, len(sections))
	row := 0
	for _, s := range sections {
		out := s.Render(width)
		if a := s.Anchor(); a != "" {
			anchors[a] = row
		}
		parts = append(parts, out)
		row += lipgloss.Height(out) + 1
	}

	body := strings.Join(parts, "\n\n")
	return Layout{Body: body, Lines: lipgloss.Height(body), anchors: anchors}
}

// TruncateWithEllipsis truncates s to maxLen, appending "…" if truncated.
// If maxLen < 1, returns an empty string.
func TruncateWithEllipsis(s string, maxLen int) string {
	if maxLen < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// wrap word-wraps prose at width.
func wrap(s string, width int) string {
	if width < 1 {
		return s
	}
	return wordwrap.String(s, width)
}

// center places a block in the middle of width columns.
func center(s string, width int) string {
	if width < 1 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// measure returns the prose width for a section: the terminal width less a
// margin, capped at limit.
func measure(width, limit int) int {
	w := width - 4
	if w > limit {
		w = limit
	}
	if w < 10 {
		w = 10
	}
	return w
}

// columns returns how many cards fit side by side.
func columns(width, cells int) int {
	n := 1
	switch {
	case width >= 100:
		n = 3
	case width >= 60:
		n = 2
	}
	if n > cells {
		n = cells
	}
	if n < 1 {
		n = 1
	}
	return n
}

// grid lays out pre-rendered cells in rows of cols, each row centered.
func grid(cells []string, cols, width int) string {
	var rows []string
	for i := 0; i < len(cells); i += cols {
		end := i + cols
		if end > len(cells) {
			end = len(cells)
		}
		row := make([]string, 0, 2*(end-i))
		for j, c := range cells[i:end] {
			if j > 0 {
				row = append(row, "  ")
			}
			row = append(row, c)
		}
		rows = append(rows, center(lipgloss.JoinHorizontal(lipgloss.Top, row...), width))
	}
	return strings.Join(rows, "\n")
}

// cardWidth returns the outer width of each card in a grid of cols.
func cardWidth(width, cols int) int {
	w := (width - 4 - 2*(cols-1)) / cols
	if w > 44 {
		w = 44
	}
	if w < 12 {
		w = 12
	}
	return w
}

// heading renders a centered section title with optional intro prose.
func heading(title, intro string, width int) string {
	lines := []string{center(theme.SectionTitleStyle.Render(title), width)}
	if intro != "" {
		lines = append(lines, "", center(theme.MutedStyle.Render(wrap(intro, measure(width, 64))), width))
	}
	return strings.Join(lines, "\n")
}

// buttons renders a primary and secondary action, side by side when wide
// enough and stacked otherwise.
func buttons(primary, secondary string, width int) string {
	p := theme.PrimaryButtonStyle.Render(primary + " " + theme.IconArrow)
	if secondary == "" {
		return center(p, width)
	}
	s := theme.SecondaryButtonStyle.Render(secondary)
	if lipgloss.Width(p)+lipgloss.Width(s)+2 > width-4 {
		return center(lipgloss.JoinVertical(lipgloss.Center, p, s), width)
	}
	return center(lipgloss.JoinHorizontal(lipgloss.Center, p, "  ", s), width)
}
