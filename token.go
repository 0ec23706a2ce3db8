package mathtex

// Token is one element of the stream produced by the Tokenizer. The set is
// closed: Space, GroupStart, GroupEnd, MathShift, DisplayShift, ControlWord
// and Literal. All tokens are comparable, so mode parsers can scan for a
// matching sentinel with plain equality.
type Token any

// Space is a run of source whitespace collapsed to a single token.
type Space struct{}

// GroupStart is a bare opening brace. Outside of a command argument it
// carries no mode change and only breaks token adjacency.
type GroupStart struct{}

// GroupEnd is a bare closing brace.
type GroupEnd struct{}

// MathShift is a single $, opening or closing inline math.
type MathShift struct{}

// DisplayShift is $$, opening or closing display math.
type DisplayShift struct{}

// ControlWord is a command token including the leading backslash, for
// example "\\textbf" or the single-character escape "\\%".
type ControlWord string

// Literal is a single plain character.
type Literal rune

// TokenText returns the source text a token stands for, used in error
// reporting and verbatim spans.
func TokenText(t Token) string {
	switch v := t.(type) {
	case Space:
		return " "
	case GroupStart:
		return "{"
	case GroupEnd:
		return "}"
	case MathShift:
		return "$"
	case DisplayShift:
		return "$$"
	case ControlWord:
		return string(v)
	case Literal:
		return string(v)
	default:
		return ""
	}
}
