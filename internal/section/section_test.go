package section

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/tnguyen21/nexusflow-tui/internal/content"
)

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		maxLen int
		want   string
	}{
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncated", "hello world", 5, "hell…"},
		{"maxLen 1", "hello", 1, "…"},
		{"maxLen 0", "hello", 0, ""},
		{"negative maxLen", "hello", -1, ""},
		{"unicode", "日本語テスト", 4, "日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateWithEllipsis(tt.s, tt.maxLen)
			if got != tt.want {
				t.Errorf("TruncateWithEllipsis(%q, %d) = %q, want %q", tt.s, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestSectionIDValues(t *testing.T) {
	sections := FromSite(content.Default())
	want := []ID{SectionHero, SectionFeatures, SectionStats, SectionPricing, SectionCTA, SectionFooter}
	if len(sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(sections))
	}
	for i, s := range sections {
		if s.ID() != want[i] {
			t.Errorf("section %d: ID = %d, want %d", i, s.ID(), want[i])
		}
		if s.Title() == "" {
			t.Errorf("section %d has no title", i)
		}
	}
}

func TestSectionsRenderCopy(t *testing.T) {
	site := content.Default()
	for _, width := range []int{30, 60, 120} {
		body := Compose(FromSite(site), width).Body
		for _, want := range []string{
			"Scale your workflow",
			"Smart Automation",
			"250k+",
			"Simple, transparent pricing",
			"MOST POPULAR",
			"Contact Sales",
			"Talk to Sales",
			"Cookie Policy",
		} {
			if !strings.Contains(body, want) {
				t.Errorf("width %d: body missing %q", width, want)
			}
		}
	}
}

func TestComposeAnchors(t *testing.T) {
	sections := FromSite(content.Default())
	layout := Compose(sections, 100)

	lines := strings.Split(layout.Body, "\n")
	if layout.Lines != len(lines) {
		t.Errorf("Lines = %d, want %d", layout.Lines, len(lines))
	}

	top, ok := layout.Offset("top")
	if !ok || top != 0 {
		t.Errorf("top anchor = %d, %v; want 0, true", top, ok)
	}

	features, ok := layout.Offset("features")
	if !ok {
		t.Fatal("features anchor missing")
	}
	if !strings.Contains(lines[features], "Everything you need to grow") {
		t.Errorf("features anchor row %d = %q", features, lines[features])
	}

	pricing, ok := layout.Offset("pricing")
	if !ok {
		t.Fatal("pricing anchor missing")
	}
	if pricing <= features {
		t.Errorf("pricing (%d) should come after features (%d)", pricing, features)
	}
	if !strings.Contains(lines[pricing], "Simple, transparent pricing") {
		t.Errorf("pricing anchor row %d = %q", pricing, lines[pricing])
	}

	if _, ok := layout.Offset("solutions"); ok {
		t.Error("solutions has no section and should not resolve")
	}
}

func TestFeatureGridColumns(t *testing.T) {
	tests := []struct {
		width, cells, want int
	}{
		{30, 6, 1},
		{60, 6, 2},
		{99, 6, 2},
		{100, 6, 3},
		{200, 2, 2},
		{200, 0, 1},
	}
	for _, tt := range tests {
		if got := columns(tt.width, tt.cells); got != tt.want {
			t.Errorf("columns(%d, %d) = %d, want %d", tt.width, tt.cells, got, tt.want)
		}
	}
}

func TestSectionsFitWidth(t *testing.T) {
	for _, width := range []int{60, 100, 140} {
		for _, s := range FromSite(content.Default()) {
			if w := lipgloss.Width(s.Render(width)); w > width {
				t.Errorf("width %d: section %q renders %d columns", width, s.Title(), w)
			}
		}
	}
}

func TestStatsEmpty(t *testing.T) {
	if got := NewStats(nil).Render(80); got != "" {
		t.Errorf("empty stats should render nothing, got %q", got)
	}
}
