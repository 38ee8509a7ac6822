package section

import (
	"strings"

	"github.com/tnguyen21/nexusflow-tui/internal/content"
	"github.com/tnguyen21/nexusflow-tui/internal/theme"
)

// Hero is the headline block at the top of the page.
type Hero struct {
	copy content.Hero
}

func NewHero(c content.Hero) *Hero { return &Hero{copy: c} }

func (h *Hero) ID() ID         { return SectionHero }
func (h *Hero) Anchor() string { return "top" }
func (h *Hero) Title() string  { return "Home" }

func (h *Hero) Render(width int) string {
	var b strings.Builder

	b.WriteByte('\n')
	if h.copy.Badge != "" {
		b.WriteString(center(theme.BadgeStyle.Render(strings.ToUpper(h.copy.Badge)), width))
		b.WriteString("\n\n")
	}
	b.WriteString(center(theme.HeadlineStyle.Render(h.copy.Headline), width))
	b.WriteByte('\n')
	b.WriteString(center(theme.HighlightStyle.Render(h.copy.Highlight), width))
	b.WriteString("\n\n")
	b.WriteString(center(theme.MutedStyle.Render(wrap(h.copy.Body, measure(width, 64))), width))
	b.WriteString("\n\n")
	b.WriteString(buttons(h.copy.PrimaryCTA, h.copy.SecondaryCTA, width))
	b.WriteByte('\n')

	return b.String()
}
