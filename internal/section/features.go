package section

import (
	"strings"

	"github.com/tnguyen21/nexusflow-tui/internal/content"
	"github.com/tnguyen21/nexusflow-tui/internal/theme"
)

// Features is the feature grid.
type Features struct {
	title    string
	intro    string
	features []content.Feature
}

func NewFeatures(title, intro string, features []content.Feature) *Features {
	return &Features{title: title, intro: intro, features: features}
}

func (f *Features) ID() ID         { return SectionFeatures }
func (f *Features) Anchor() string { return "features" }
func (f *Features) Title() string  { return "Features" }

func (f *Features) Render(width int) string {
	cols := columns(width, len(f.features))
	cw := cardWidth(width, cols)

	cells := make([]string, len(f.features))
	for i, ft := range f.features {
		cells[i] = f.card(ft, cw)
	}

	return strings.Join([]string{
		heading(f.title, f.intro, width),
		"",
		grid(cells, cols, width),
	}, "\n")
}

// card renders one feature at an outer width of w.
func (f *Features) card(ft content.Feature, w int) string {
	inner := w - theme.CardStyle.GetHorizontalFrameSize()
	title := theme.FeatureIcon(ft.Icon) + " " + theme.HeadlineStyle.Render(TruncateWithEllipsis(ft.Title, inner-3))
	body := theme.MutedStyle.Render(wrap(ft.Description, inner))
	return theme.CardStyle.Width(w - theme.CardStyle.GetHorizontalBorderSize()).Render(title + "\n\n" + body)
}
