package mathtex

import "strings"

// mathMode is a modest math grammar: enough for text mode to delegate math
// spans to a real parser. Literal characters become math text runs, bracket
// characters and named bracket commands become delimiter atoms, and the
// \big family produces sized delimiters. Styling inside math passes
// through untouched.
type mathMode struct {
	reg *Registry
}

// delimiterChars are the bracket-like literals math mode turns into plain
// delimiter atoms.
const delimiterChars = "()[]|/<>"

// namedDelimiters maps the control words naming a delimiter to the glyph
// they render.
var namedDelimiters = map[string]string{
	"\\lbrace":    "{",
	"\\rbrace":    "}",
	"\\langle":    "⟨",
	"\\rangle":    "⟩",
	"\\vert":      "|",
	"\\Vert":      "‖",
	"\\lceil":     "⌈",
	"\\rceil":     "⌉",
	"\\lfloor":    "⌊",
	"\\rfloor":    "⌋",
	"\\backslash": "\\",
}

func (m *mathMode) Parse(tokens []Token, sink ErrorSink, opts ParseOptions) ([]*Atom, []Token) {
	var atoms []*Atom

	for len(tokens) > 0 {
		switch t := tokens[0].(type) {
		case Space:
			// math ignores source whitespace
			tokens = tokens[1:]
		case GroupStart:
			return atoms, tokens
		case GroupEnd:
			tokens = tokens[1:]
		case ControlWord:
			if m.reg.isCommand("math", string(t)) {
				return atoms, tokens
			}

			if glyph, ok := namedDelimiters[string(t)]; ok {
				atom := NewDelimiter(string(t), glyph)
				atom.VerbatimLatex = string(t)
				atoms = append(atoms, atom)
			} else if def, ok := LookupSymbol(string(t), "math", opts.Macros); ok {
				atom := &Atom{Kind: TextKind, Mode: "math", Command: string(t), Value: def.Value, VerbatimLatex: string(t)}
				atoms = append(atoms, atom)
			} else {
				report(sink, ErrUnexpectedToken, string(t))
			}

			tokens = tokens[1:]
		case Literal:
			if strings.ContainsRune(delimiterChars, rune(t)) {
				atom := NewDelimiter(string(t), string(t))
				atom.VerbatimLatex = string(t)
				atoms = append(atoms, atom)
			} else {
				atom := &Atom{Kind: TextKind, Mode: "math", Command: string(t), Value: string(t), VerbatimLatex: string(t)}
				atoms = append(atoms, atom)
			}

			tokens = tokens[1:]
		default:
			// stray shift markers inside an extracted math span
			report(sink, ErrUnexpectedToken, TokenText(tokens[0]))
			tokens = tokens[1:]
		}
	}

	return atoms, nil
}

func (m *mathMode) Serialize(atoms []*Atom, opts SerializeOptions) string {
	var parts []string
	for _, a := range atoms {
		if a.Kind == GroupKind {
			parts = append(parts, m.reg.serializeGroup(a))
			continue
		}

		parts = append(parts, a.Latex())
	}

	return joinLatex(parts...)
}

// mathCommands is the dispatch table math mode hands to the registry: the
// \text re-entry command and the sized delimiter family.
func mathCommands() map[string]commandHandler {
	cmds := map[string]commandHandler{
		"\\text": textGroupCommand,
	}

	sizes := []struct {
		prefix string
		size   int
	}{
		{"\\big", 1},
		{"\\Big", 2},
		{"\\bigg", 3},
		{"\\Bigg", 4},
	}

	variants := []struct {
		suffix string
		class  string
	}{
		{"", "ord"},
		{"l", "open"},
		{"r", "close"},
		{"m", "rel"},
	}

	for _, s := range sizes {
		for _, v := range variants {
			name := s.prefix + v.suffix
			cmds[name] = sizedDelimiterCommand(name, s.size, v.class)
		}
	}

	return cmds
}

// sizedDelimiterCommand reads the delimiter argument of a \big-family
// command, bare or braced.
func sizedDelimiterCommand(name string, size int, class string) commandHandler {
	return func(r *Registry, mode string, tail []Token, sink ErrorSink, opts ParseOptions) ([]*Atom, []Token) {
		tail = skipSpaces(tail)
		if len(tail) == 0 {
			report(sink, ErrUnexpectedToken, name)
			return nil, nil
		}

		if _, braced := tail[0].(GroupStart); braced {
			inner, rest := splitGroup(tail[1:])
			inner = skipSpaces(inner)
			if len(inner) == 1 {
				if delim, ok := delimiterSource(inner[0]); ok {
					return []*Atom{NewSizedDelimiter(name, delim, size, class)}, rest
				}
			}

			report(sink, ErrUnexpectedToken, name)
			return nil, rest
		}

		delim, ok := delimiterSource(tail[0])
		if !ok {
			report(sink, ErrUnexpectedToken, TokenText(tail[0]))
			return nil, tail
		}

		return []*Atom{NewSizedDelimiter(name, delim, size, class)}, tail[1:]
	}
}

// delimiterSource accepts a token usable as a delimiter and returns its
// source form. "." is the invisible delimiter sentinel.
func delimiterSource(t Token) (string, bool) {
	switch v := t.(type) {
	case Literal:
		if v == '.' || strings.ContainsRune(delimiterChars, rune(v)) {
			return string(v), true
		}
	case ControlWord:
		if _, ok := namedDelimiters[string(v)]; ok {
			return string(v), true
		}
	}

	return "", false
}
