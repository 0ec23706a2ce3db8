package mathtex

import (
	"regexp"
	"strings"
)

var hexColor = regexp.MustCompile("^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$")

// baseColors are the LaTeX base and dvips names the parser recognizes.
// Values are canonical #rrggbb so that two spellings of the same color land
// in the same style run.
var baseColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#00ff00",
	"blue":    "#0000ff",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"yellow":  "#ffff00",
	"gray":    "#808080",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"brown":   "#a52a2a",
}

// NormalizeColor maps an author-written color string to a canonical form:
// named colors to #rrggbb, #rgb to #rrggbb, mixed case hex to lowercase.
// Unknown strings pass through unchanged; the caller keeps the verbatim
// form separately for exact round-trip.
func NormalizeColor(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || s == "none" {
		return s
	}

	if v, ok := baseColors[strings.ToLower(s)]; ok {
		return v
	}

	m := hexColor.FindStringSubmatch(s)
	if m == nil {
		return s
	}

	hex := strings.ToLower(m[1])
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	return "#" + hex
}
