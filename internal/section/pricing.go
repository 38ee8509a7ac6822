package section

import (
	"strings"

	"github.com/tnguyen21/nexusflow-tui/internal/content"
	"github.com/tnguyen21/nexusflow-tui/internal/theme"
)

// Pricing is the plan comparison table.
type Pricing struct {
	title string
	intro string
	plans []content.Plan
}

func NewPricing(title, intro string, plans []content.Plan) *Pricing {
	return &Pricing{title: title, intro: intro, plans: plans}
}

func (p *Pricing) ID() ID         { return SectionPricing }
func (p *Pricing) Anchor() string { return "pricing" }
func (p *Pricing) Title() string  { return "Pricing" }

func (p *Pricing) Render(width int) string {
	cols := 1
	if width >= 100 {
		cols = len(p.plans)
	}
	if cols > 3 {
		cols = 3
	}
	if cols < 1 {
		cols = 1
	}
	cw := cardWidth(width, cols)

	cells := make([]string, len(p.plans))
	for i, plan := range p.plans {
		cells[i] = p.card(plan, cw)
	}

	return strings.Join([]string{
		heading(p.title, p.intro, width),
		"",
		grid(cells, cols, width),
	}, "\n")
}

func (p *Pricing) card(plan content.Plan, w int) string {
	style := theme.CardStyle
	if plan.Popular {
		style = theme.PopularCardStyle
	}
	inner := w - style.GetHorizontalFrameSize()

	var lines []string
	if plan.Popular {
		lines = append(lines, theme.BadgeStyle.Render(theme.IconStar+" MOST POPULAR"))
	}
	lines = append(lines,
		theme.HeadlineStyle.Render(plan.Name),
		theme.StatValueStyle.Render("$"+plan.Price)+theme.MutedStyle.Render("/month"),
		"",
	)
	for _, f := range plan.Features {
		lines = append(lines, theme.PassStyle.Render(theme.IconCheck)+" "+TruncateWithEllipsis(f, inner-2))
	}
	button := theme.SecondaryButtonStyle
	if plan.Popular {
		button = theme.PrimaryButtonStyle
	}
	lines = append(lines, "", button.Render(plan.CTA))

	return style.Width(w - style.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}
