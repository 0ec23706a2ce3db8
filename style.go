package mathtex

// Style is a flat record of typographic properties attached to every atom.
// The zero value of each field means "inherit from the enclosing context",
// never "reset to default": serialization must treat unset and
// explicitly-default as different states. Color may hold the explicit
// sentinel "none", which is a set value distinct from unset.
type Style struct {
	Color                   string
	VerbatimColor           string // author-written color string, kept for exact round-trip
	BackgroundColor         string
	VerbatimBackgroundColor string
	FontFamily              string // "roman", "sans-serif", "monospace" or a raw family code
	FontSeries              string // TeX series code: "b", "l", "m" or a compound code
	FontShape               string // "it", "sl", "sc", "n" or a raw shape code
	FontSize                int    // 1..10 indexing sizeNames, 0 means unset
}

// sizeNames maps the font size scale to LaTeX size declarations. Index 0 is
// reserved for the unset value.
var sizeNames = [...]string{
	"",
	"\\tiny",
	"\\scriptsize",
	"\\footnotesize",
	"\\small",
	"\\normalsize",
	"\\large",
	"\\Large",
	"\\LARGE",
	"\\huge",
	"\\Huge",
}

// SizeName returns the LaTeX size declaration for a scale value, or "" when
// the scale is unset or out of range.
func SizeName(scale int) string {
	if scale < 1 || scale >= len(sizeNames) {
		return ""
	}

	return sizeNames[scale]
}

// IsZero reports whether every field is unset.
func (s Style) IsZero() bool {
	return s == Style{}
}

// inherit fills every unset field of s from parent and returns the result.
func (s Style) inherit(parent Style) Style {
	if s.Color == "" {
		s.Color = parent.Color
		s.VerbatimColor = parent.VerbatimColor
	}

	if s.BackgroundColor == "" {
		s.BackgroundColor = parent.BackgroundColor
		s.VerbatimBackgroundColor = parent.VerbatimBackgroundColor
	}

	if s.FontFamily == "" {
		s.FontFamily = parent.FontFamily
	}

	if s.FontSeries == "" {
		s.FontSeries = parent.FontSeries
	}

	if s.FontShape == "" {
		s.FontShape = parent.FontShape
	}

	if s.FontSize == 0 {
		s.FontSize = parent.FontSize
	}

	return s
}
