package section

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tnguyen21/nexusflow-tui/internal/content"
	"github.com/tnguyen21/nexusflow-tui/internal/theme"
)

// Stats is the band of headline numbers.
type Stats struct {
	stats []content.Stat
}

func NewStats(stats []content.Stat) *Stats { return &Stats{stats: stats} }

func (s *Stats) ID() ID         { return SectionStats }
func (s *Stats) Anchor() string { return "stats" }
func (s *Stats) Title() string  { return "Stats" }

func (s *Stats) Render(width int) string {
	if len(s.stats) == 0 {
		return ""
	}

	perRow := len(s.stats)
	if width < 60 && perRow > 2 {
		perRow = 2
	}
	cell := (width - 4) / perRow
	if cell < 8 {
		cell = 8
	}

	var rows []string
	for i := 0; i < len(s.stats); i += perRow {
		end := i + perRow
		if end > len(s.stats) {
			end = len(s.stats)
		}
		blocks := make([]string, 0, end-i)
		for _, st := range s.stats[i:end] {
			block := lipgloss.JoinVertical(lipgloss.Center,
				theme.StatValueStyle.Render(st.Value),
				theme.MutedStyle.Render(strings.ToUpper(st.Label)),
			)
			blocks = append(blocks, lipgloss.PlaceHorizontal(cell, lipgloss.Center, block))
		}
		rows = append(rows, center(lipgloss.JoinHorizontal(lipgloss.Top, blocks...), width))
	}

	rule := theme.MutedStyle.Render(strings.Repeat("─", max(width, 0)))
	return strings.Join(append(append([]string{rule}, rows...), rule), "\n")
}
