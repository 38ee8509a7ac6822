package theme

import "github.com/charmbracelet/lipgloss"

// Indigo/slate palette — AdaptiveColor for light/dark terminal support.
var (
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#4f46e5", Dark: "#818cf8"}
	ColorViolet  = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	ColorText    = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#e2e8f0"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#475569", Dark: "#94a3b8"}
	ColorBorder  = lipgloss.AdaptiveColor{Light: "#e2e8f0", Dark: "#334155"}
	ColorSurface = lipgloss.AdaptiveColor{Light: "#f8fafc", Dark: "#1e293b"}
	ColorPass    = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorOnBrand = lipgloss.Color("#ffffff")
)

// Semantic text styles.
var (
	AccentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	TextStyle   = lipgloss.NewStyle().Foreground(ColorText)
	PassStyle   = lipgloss.NewStyle().Foreground(ColorPass)
)

// Navigation bar treatments. Transparent is the tall resting treatment,
// opaque the compact one with a bottom border.
var (
	NavTransparentStyle = lipgloss.NewStyle().
				Padding(1, 2)

	NavOpaqueStyle = lipgloss.NewStyle().
			Background(ColorSurface).
			Padding(0, 2).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(ColorBorder)

	BrandStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	NavLinkStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	NavButtonStyle = lipgloss.NewStyle().
			Background(ColorAccent).
			Foreground(ColorOnBrand).
			Bold(true).
			Padding(0, 2)

	ToggleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)
)

// Mobile overlay styles.
var (
	OverlayStyle = lipgloss.NewStyle().
			Background(ColorSurface).
			Padding(1, 2).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(ColorBorder)

	OverlayRowStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	OverlayActiveRowStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true).
				Padding(0, 1)

	OverlayCursorStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)
)

// Section styles.
var (
	BadgeStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	HeadlineStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)

	PrimaryButtonStyle = lipgloss.NewStyle().
				Background(ColorAccent).
				Foreground(ColorOnBrand).
				Bold(true).
				Padding(0, 2)

	SecondaryButtonStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(0, 2)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PopularCardStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorAccent).
				Padding(0, 1)

	StatValueStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	CTABlockStyle = lipgloss.NewStyle().
			Background(ColorAccent).
			Foreground(ColorOnBrand).
			Padding(1, 2)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 2)

	FooterHeadingStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)
)

// StatusBarStyle for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Background(lipgloss.AdaptiveColor{Light: "#e2e8f0", Dark: "#0f172a"}).
	Foreground(ColorMuted).
	Padding(0, 1)
