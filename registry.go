package mathtex

import "fmt"

// ParseOptions carries per-call parser state.
type ParseOptions struct {
	// Macros are user symbol definitions, consulted before the built-in
	// table.
	Macros map[string]Symbol
}

// SerializeOptions carries per-call serializer state.
type SerializeOptions struct {
	// SkipModeCommand suppresses the enclosing \text{} wrapper around a
	// text run, for callers that already are in text mode.
	SkipModeCommand bool
}

// Mode is one named parsing/serialization context. Parse consumes tokens
// left to right and returns the atoms it built together with the unconsumed
// remainder; it stops in front of tokens the dispatcher owns (command
// control words and group openings). Serialize is total: it never fails and
// degrades unknown style values to plain pass-through.
type Mode interface {
	Parse(tokens []Token, sink ErrorSink, opts ParseOptions) ([]*Atom, []Token)
	Serialize(atoms []*Atom, opts SerializeOptions) string
}

// commandHandler parses one command's arguments from the token tail and
// returns the atoms it produced plus the remaining tokens.
type commandHandler func(r *Registry, mode string, tail []Token, sink ErrorSink, opts ParseOptions) ([]*Atom, []Token)

// Registry maps mode names to their implementations and owns command
// dispatch. It is populated explicitly at construction, never through
// import-time side effects.
type Registry struct {
	modes    map[string]Mode
	commands map[string]map[string]commandHandler // mode -> command -> handler
}

// NewRegistry builds a registry with the "text" and "math" modes wired.
func NewRegistry() *Registry {
	r := &Registry{
		modes:    map[string]Mode{},
		commands: map[string]map[string]commandHandler{},
	}

	r.Register("text", &textMode{reg: r}, textCommands())
	r.Register("math", &mathMode{reg: r}, mathCommands())

	return r
}

// Register binds a mode name to its implementation and command table.
func (r *Registry) Register(name string, m Mode, commands map[string]commandHandler) {
	r.modes[name] = m
	r.commands[name] = commands
}

func (r *Registry) mode(name string) Mode {
	m, ok := r.modes[name]
	if !ok {
		panic(fmt.Sprintf("mathtex: mode %q is not registered", name))
	}

	return m
}

func (r *Registry) handler(mode, command string) commandHandler {
	return r.commands[mode][command]
}

// isCommand reports whether a control word takes arguments in a mode, which
// makes it dispatcher property rather than a symbol.
func (r *Registry) isCommand(mode, command string) bool {
	return r.handler(mode, command) != nil
}

// Parse runs the named mode over the token stream. Group openings are
// matched here (with the unmatched-open fallback of consuming the whole
// remainder) and their content is parsed recursively in the same mode:
// bare braces splice their content, they only bound declaration scope and
// break token adjacency. Command control words dispatch to their handler;
// everything else goes to the mode parser.
func (r *Registry) Parse(mode string, tokens []Token, sink ErrorSink, opts ParseOptions) ([]*Atom, []Token) {
	m := r.mode(mode)

	var atoms []*Atom
	for len(tokens) > 0 {
		switch t := tokens[0].(type) {
		case ControlWord:
			if handler := r.handler(mode, string(t)); handler != nil {
				produced, rest := handler(r, mode, tokens[1:], sink, opts)
				atoms = append(atoms, produced...)
				tokens = rest
				continue
			}
		case GroupStart:
			inner, rest := splitGroup(tokens[1:])
			produced, _ := r.Parse(mode, inner, sink, opts)
			atoms = append(atoms, produced...)
			tokens = rest
			continue
		}

		produced, rest := m.Parse(tokens, sink, opts)
		atoms = append(atoms, produced...)
		tokens = rest
	}

	return atoms, nil
}

// Serialize emits LaTeX for an atom sequence, batching consecutive atoms of
// one mode and dispatching each batch to its mode's serializer.
func (r *Registry) Serialize(atoms []*Atom, opts SerializeOptions) string {
	var parts []string

	for start := 0; start < len(atoms); {
		end := start + 1
		for end < len(atoms) && atoms[end].Mode == atoms[start].Mode {
			end++
		}

		mode := atoms[start].Mode
		if mode == "" {
			mode = "text"
		}

		parts = append(parts, r.mode(mode).Serialize(atoms[start:end], opts))
		start = end
	}

	return joinLatex(parts...)
}

// splitGroup cuts the content of a brace group from tokens, which start
// just after the opening brace. It returns the inner span and the tokens
// after the matching close. An unmatched open consumes the remainder.
func splitGroup(tokens []Token) (inner, rest []Token) {
	depth := 1
	for i, t := range tokens {
		switch t.(type) {
		case GroupStart:
			depth++
		case GroupEnd:
			depth--
			if depth == 0 {
				return tokens[:i], tokens[i+1:]
			}
		}
	}

	return tokens, nil
}

// indexOfToken finds the first occurrence of a sentinel token.
func indexOfToken(tokens []Token, want Token) int {
	for i, t := range tokens {
		if t == want {
			return i
		}
	}

	return -1
}

// Parse tokenizes source and parses it in text mode with a fresh registry.
// Recoverable problems go to the sink; only tokenizer I/O failures are
// returned as errors.
func Parse(src string, sink ErrorSink) ([]*Atom, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}

	atoms, _ := NewRegistry().Parse("text", tokens, sink, ParseOptions{})
	return atoms, nil
}

// Serialize emits minimal LaTeX for an atom sequence with a fresh registry.
func Serialize(atoms []*Atom, opts SerializeOptions) string {
	return NewRegistry().Serialize(atoms, opts)
}
