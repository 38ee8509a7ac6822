package section

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tnguyen21/nexusflow-tui/internal/content"
	"github.com/tnguyen21/nexusflow-tui/internal/theme"
)

// CallToAction is the closing sign-up block.
type CallToAction struct {
	copy content.CallToAction
}

func NewCallToAction(c content.CallToAction) *CallToAction { return &CallToAction{copy: c} }

func (c *CallToAction) ID() ID         { return SectionCTA }
func (c *CallToAction) Anchor() string { return "get-started" }
func (c *CallToAction) Title() string  { return "Get Started" }

func (c *CallToAction) Render(width int) string {
	block := measure(width, 80)
	inner := block - theme.CTABlockStyle.GetHorizontalFrameSize()

	actions := c.copy.Primary + "   " + c.copy.Secondary
	if lipgloss.Width(actions) > inner {
		actions = c.copy.Primary + "\n" + c.copy.Secondary
	}

	lines := []string{
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, lipgloss.NewStyle().Bold(true).Render(wrap(c.copy.Headline, inner))),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, actions),
	}
	if c.copy.Note != "" {
		lines = append(lines, "", lipgloss.PlaceHorizontal(inner, lipgloss.Center, c.copy.Note))
	}

	return center(theme.CTABlockStyle.Width(block).Render(strings.Join(lines, "\n")), width)
}
