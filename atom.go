package mathtex

// Kind tags the concrete variant of an atom. The set is closed: renderers
// that need further kinds wrap atoms rather than extending it.
type Kind int

const (
	// TextKind is a text-run atom holding a literal character or short
	// string.
	TextKind Kind = iota

	// GroupKind is a boundary atom produced by mode delegation: a math
	// span inside text, or a \text{} span inside math. It owns its
	// children and paints its own background.
	GroupKind

	// DelimiterKind is a plain, unsized bracket-like glyph.
	DelimiterKind

	// SizedDelimiterKind is a delimiter scaled to one of four discrete
	// size classes.
	SizedDelimiterKind
)

// Atom is one node of the parsed tree.
//
// Command is the exact source token that produced the atom, so that
// Command together with Value can reconstruct the original character.
// Parent is a non-owning back-reference used only to read the enclosing
// computed style, never to mutate. Style fields are immutable once the
// parser has built the atom; mutation happens only through SetStyle.
type Atom struct {
	Kind    Kind
	Mode    string // "text" or "math"
	Command string
	Value   string
	Style   Style

	// VerbatimLatex caches the original source span. When present and the
	// atom is unmodified, serialization short-circuits to this exact text.
	VerbatimLatex string

	Parent   *Atom
	Children []*Atom

	// InnerMode is set on group atoms whose children live in another mode
	// ("math" span inside text, \text{} inside math).
	InnerMode string

	// Display marks a group atom as display math rather than inline.
	Display bool

	// Size is the delimiter size class 1..4; 0 means natural/unsized.
	Size int

	// DelimClass tags a sized delimiter for the renderer (open, close,
	// relation). Serialization ignores it.
	DelimClass string
}

// NewText builds a text-run atom for one rendered character or short string.
func NewText(command, value string) *Atom {
	return &Atom{Kind: TextKind, Mode: "text", Command: command, Value: value}
}

// Adopt appends children to the atom, clearing any previous parent link so
// that every atom belongs to exactly one parent at a time.
func (a *Atom) Adopt(children ...*Atom) {
	for _, child := range children {
		if child.Parent != nil {
			child.Parent.disown(child)
		}

		child.Parent = a
		a.Children = append(a.Children, child)
	}
}

func (a *Atom) disown(child *Atom) {
	for i, c := range a.Children {
		if c == child {
			a.Children = append(a.Children[:i], a.Children[i+1:]...)
			return
		}
	}
}

// SetStyle replaces the atom's own style. The cached verbatim span is
// dropped because it no longer reflects the atom.
func (a *Atom) SetStyle(s Style) {
	a.Style = s
	a.VerbatimLatex = ""
}

// ComputedStyle resolves each unset style field through the parent chain to
// the nearest ancestor that sets it.
func (a *Atom) ComputedStyle() Style {
	s := a.Style
	for p := a.Parent; p != nil; p = p.Parent {
		s = s.inherit(p.Style)
	}

	return s
}

// ParentStyle returns the computed style of the enclosing context, the
// baseline against which the serializer decides whether a styling command
// is needed.
func (a *Atom) ParentStyle() Style {
	if a.Parent == nil {
		return Style{}
	}

	return a.Parent.ComputedStyle()
}

// Latex returns the atom's own leaf serialization, without any style
// wrapping. Style commands are the serializer's concern.
func (a *Atom) Latex() string {
	if a.VerbatimLatex != "" {
		return a.VerbatimLatex
	}

	switch a.Kind {
	case DelimiterKind, SizedDelimiterKind:
		return delimiterLatex(a)
	default:
		if a.Command != "" {
			return a.Command
		}

		return a.Value
	}
}
