package section

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tnguyen21/nexusflow-tui/internal/content"
	"github.com/tnguyen21/nexusflow-tui/internal/theme"
)

// Footer is the closing link directory and legal line.
type Footer struct {
	brand  string
	footer content.Footer
}

func NewFooter(brand string, f content.Footer) *Footer { return &Footer{brand: brand, footer: f} }

func (f *Footer) ID() ID         { return SectionFooter }
func (f *Footer) Anchor() string { return "footer" }
func (f *Footer) Title() string  { return "Footer" }

func (f *Footer) Render(width int) string {
	inner := width - theme.FooterStyle.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	about := []string{
		theme.BrandStyle.Render(theme.IconBrand + " " + f.brand),
		wrap(f.footer.Blurb, min(inner, 36)),
	}
	if len(f.footer.Social) > 0 {
		about = append(about, strings.Join(f.footer.Social, " · "))
	}

	cols := make([]string, 0, len(f.footer.Columns)+1)
	cols = append(cols, strings.Join(about, "\n"))
	for _, c := range f.footer.Columns {
		lines := append([]string{theme.FooterHeadingStyle.Render(c.Title)}, c.Links...)
		cols = append(cols, strings.Join(lines, "\n"))
	}

	var directory string
	if inner >= 80 {
		spaced := make([]string, 0, 2*len(cols))
		for i, c := range cols {
			if i > 0 {
				spaced = append(spaced, "    ")
			}
			spaced = append(spaced, c)
		}
		directory = lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
	} else {
		directory = strings.Join(cols, "\n\n")
	}

	bottom := f.footer.Legal
	if len(f.footer.Bottom) > 0 {
		bottom += "  " + strings.Join(f.footer.Bottom, " · ")
	}

	return theme.FooterStyle.Width(width).Render(strings.Join([]string{
		directory,
		strings.Repeat("─", inner),
		bottom,
	}, "\n"))
}
