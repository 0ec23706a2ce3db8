package mathtex

// NewDelimiter builds a plain, unsized delimiter atom. command is the
// source token producing the delimiter, value the rendered glyph; "." is
// the invisible sentinel.
func NewDelimiter(command, value string) *Atom {
	return &Atom{Kind: DelimiterKind, Mode: "math", Command: command, Value: value}
}

// NewSizedDelimiter builds a delimiter scaled to one of four discrete size
// classes. class tags the delimiter for the renderer (mopen, mclose, mrel)
// and does not affect serialization.
func NewSizedDelimiter(command, value string, size int, class string) *Atom {
	return &Atom{Kind: SizedDelimiterKind, Mode: "math", Command: command, Value: value, Size: size, DelimClass: class}
}

// delimiterLatex serializes a delimiter atom. A plain delimiter is its
// source token. A sized one is the sizing command followed by the bare
// value for single-character delimiters, command{value} for named ones.
// The size class never appears in the output, it is implied by the command.
func delimiterLatex(a *Atom) string {
	if a.Kind == DelimiterKind {
		return a.Command
	}

	if len(a.Value) <= 1 {
		return joinLatex(a.Command, a.Value)
	}

	return a.Command + "{" + a.Value + "}"
}

// DelimiterSizer produces a glyph box for a delimiter value at a discrete
// size class. It is supplied by the rendering pipeline.
type DelimiterSizer interface {
	SizeDelimiter(value string, size int) (any, bool)
}

// RenderSized asks the sizer for a glyph at the atom's size class. When the
// glyph is unavailable it returns nil and an UnresolvedSizing error rather
// than falling back silently; the caller decides how to degrade.
func RenderSized(a *Atom, sizer DelimiterSizer) (any, error) {
	box, ok := sizer.SizeDelimiter(a.Value, a.Size)
	if !ok {
		return nil, &ParseError{Code: ErrUnresolvedSizing, Token: a.Command + a.Value}
	}

	return box, nil
}
