package app

// LayoutMode represents the display width category for responsive layout.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // <40 chars: compact bar, single column
	LayoutMedium                   // 40-79: compact bar with menu toggle
	LayoutWide                     // 80+: inline navigation links
)

// GetLayoutMode returns the appropriate layout mode for the given terminal width.
func GetLayoutMode(width int) LayoutMode {
	switch {
	case width < 40:
		return LayoutNarrow
	case width < 80:
		return LayoutMedium
	default:
		return LayoutWide
	}
}

// StatusBarHeight returns the height of the status bar (always 1 row).
func StatusBarHeight() int {
	return 1
}

// ContentHeight returns the available height for the page body after
// subtracting the navigation bar and status bar from the total height.
func ContentHeight(totalHeight, barHeight int) int {
	h := totalHeight - barHeight - StatusBarHeight()
	if h < 0 {
		return 0
	}
	return h
}
