package components

import "github.com/abhisek/wegbereiter/internal/content"

var iconGlyphs = map[content.Icon]string{
	content.IconBook:      "▤",
	content.IconLightbulb: "✺",
	content.IconPuzzle:    "✚",
}

// IconGlyph returns the terminal glyph for a lesson icon.
func IconGlyph(i content.Icon) string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}
	return "•"
}
