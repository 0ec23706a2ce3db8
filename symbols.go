package mathtex

// Symbol is one entry of the symbol table: the rendered value of a control
// word, optionally restricted to a single mode.
type Symbol struct {
	Value  string
	IfMode string // "" means any mode
}

// symbols maps control words to their rendered characters. Entries with an
// IfMode are invisible to the other mode and trigger unexpected-token when
// used there.
var symbols = map[string]Symbol{
	// escaped specials, valid in any mode
	"\\%": {Value: "%"},
	"\\$": {Value: "$"},
	"\\&": {Value: "&"},
	"\\#": {Value: "#"},
	"\\_": {Value: "_"},
	"\\{": {Value: "{"},
	"\\}": {Value: "}"},

	// text-mode symbols
	"\\textbackslash":  {Value: "\\", IfMode: "text"},
	"\\textasciitilde": {Value: "~", IfMode: "text"},
	"\\textless":       {Value: "<", IfMode: "text"},
	"\\textgreater":    {Value: ">", IfMode: "text"},
	"\\dag":            {Value: "†", IfMode: "text"},
	"\\ddag":           {Value: "‡", IfMode: "text"},
	"\\S":              {Value: "§", IfMode: "text"},
	"\\P":              {Value: "¶", IfMode: "text"},
	"\\copyright":      {Value: "©", IfMode: "text"},
	"\\pounds":         {Value: "£", IfMode: "text"},
	"\\dots":           {Value: "…"},
	"\\ldots":          {Value: "…"},

	// math-mode symbols
	"\\alpha": {Value: "α", IfMode: "math"},
	"\\beta":  {Value: "β", IfMode: "math"},
	"\\gamma": {Value: "γ", IfMode: "math"},
	"\\delta": {Value: "δ", IfMode: "math"},
	"\\pi":    {Value: "π", IfMode: "math"},
	"\\omega": {Value: "ω", IfMode: "math"},
	"\\pm":    {Value: "±", IfMode: "math"},
	"\\times": {Value: "×", IfMode: "math"},
	"\\cdot":  {Value: "⋅", IfMode: "math"},
	"\\le":    {Value: "≤", IfMode: "math"},
	"\\ge":    {Value: "≥", IfMode: "math"},
	"\\ne":    {Value: "≠", IfMode: "math"},
	"\\infty": {Value: "∞", IfMode: "math"},
	"\\sum":   {Value: "∑", IfMode: "math"},
	"\\int":   {Value: "∫", IfMode: "math"},
}

// LookupSymbol resolves a control word in a mode, consulting user macros
// first. It returns false when no definition exists or the definition is
// restricted to another mode.
func LookupSymbol(token, mode string, macros map[string]Symbol) (Symbol, bool) {
	if def, ok := macros[token]; ok {
		if def.IfMode == "" || def.IfMode == mode {
			return def, true
		}

		return Symbol{}, false
	}

	def, ok := symbols[token]
	if !ok {
		return Symbol{}, false
	}

	if def.IfMode != "" && def.IfMode != mode {
		return Symbol{}, false
	}

	return def, true
}

// latexByChar is the reverse table: rendered character to the verbatim
// source that reproduces it in text mode.
var latexByChar = map[rune]string{
	'%':      "\\%",
	'$':      "\\$",
	'&':      "\\&",
	'#':      "\\#",
	'_':      "\\_",
	'{':      "\\{",
	'}':      "\\}",
	'\\':     "\\textbackslash ",
	'~':      "\\textasciitilde ",
	'†': "\\dag ",
	'‡': "\\ddag ",
	'§': "\\S ",
	'¶': "\\P ",
	'©': "\\copyright ",
	'£': "\\pounds ",
	'…': "\\dots ",
}

// CharToLatex returns the verbatim source string that reproduces a
// codepoint in the given mode. Plain characters map to themselves.
func CharToLatex(mode string, r rune) string {
	if mode == "text" {
		if s, ok := latexByChar[r]; ok {
			return s
		}
	}

	return string(r)
}
