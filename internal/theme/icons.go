package theme

// Toggle control icons.
const (
	IconMenu  = "☰"
	IconClose = "✕"
)

// Decorative glyphs.
const (
	IconBrand = "◆"
	IconArrow = "→"
	IconCheck = "✓"
	IconStar  = "★"
)

// FeatureIcons maps the icon names used by site content to terminal glyphs.
var FeatureIcons = map[string]string{
	"globe":      "🌐",
	"zap":        "⚡",
	"shield":     "🛡",
	"smartphone": "📱",
	"layout":     "▦",
	"layers":     "◆",
	"chart":      "📈",
}

// FeatureIcon returns the glyph for name, or a bullet when unknown.
func FeatureIcon(name string) string {
	if g, ok := FeatureIcons[name]; ok {
		return g
	}
	return "•"
}
