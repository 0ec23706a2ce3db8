package mathtex

import "strings"

// textMode implements parsing and serialization of text spans. Its
// serializer is the style-run compressor: a flat sequence of styled atoms
// comes back out as minimal nested styling commands.
type textMode struct {
	reg *Registry
}

// Parse consumes tokens left to right and stops in front of tokens the
// dispatcher owns: group openings and control words with a command handler.
// Unrecognized tokens are reported to the sink and skipped, never fatal.
func (m *textMode) Parse(tokens []Token, sink ErrorSink, opts ParseOptions) ([]*Atom, []Token) {
	var atoms []*Atom

	for len(tokens) > 0 {
		switch t := tokens[0].(type) {
		case Space:
			atom := NewText(" ", " ")
			atom.VerbatimLatex = " "
			atoms = append(atoms, atom)
			tokens = tokens[1:]
		case GroupStart:
			return atoms, tokens
		case GroupEnd:
			// stray close brace, a layout no-op
			tokens = tokens[1:]
		case ControlWord:
			if m.reg.isCommand("text", string(t)) {
				return atoms, tokens
			}

			if def, ok := LookupSymbol(string(t), "text", opts.Macros); ok {
				atom := NewText(string(t), def.Value)
				atom.VerbatimLatex = string(t)
				atoms = append(atoms, atom)
			} else {
				report(sink, ErrUnexpectedToken, string(t))
			}

			tokens = tokens[1:]
		case MathShift:
			group, rest := m.mathSpan(tokens[1:], MathShift{}, sink, opts)
			atoms = append(atoms, group)
			tokens = rest
		case DisplayShift:
			group, rest := m.mathSpan(tokens[1:], DisplayShift{}, sink, opts)
			atoms = append(atoms, group)
			tokens = rest
		case Literal:
			atom := NewText(string(t), string(t))
			atom.VerbatimLatex = CharToLatex("text", rune(t))
			atoms = append(atoms, atom)
			tokens = tokens[1:]
		default:
			report(sink, ErrUnexpectedToken, TokenText(tokens[0]))
			tokens = tokens[1:]
		}
	}

	return atoms, nil
}

// mathSpan scans forward for the closing marker of the same kind and
// delegates the sub-span to math mode. An unmatched opening marker is
// reported and the whole remainder becomes the span.
func (m *textMode) mathSpan(tail []Token, closer Token, sink ErrorSink, opts ParseOptions) (*Atom, []Token) {
	span, rest := tail, []Token(nil)
	if end := indexOfToken(tail, closer); end < 0 {
		report(sink, ErrUnterminatedMathShift, TokenText(closer))
	} else {
		span, rest = tail[:end], tail[end+1:]
	}

	inner, _ := m.reg.Parse("math", span, sink, opts)

	_, display := closer.(DisplayShift)
	group := &Atom{Kind: GroupKind, Mode: "text", InnerMode: "math", Command: TokenText(closer), Display: display}
	group.Adopt(inner...)

	return group, rest
}

// Serialize reconstructs minimal LaTeX for a run of text atoms. Group atoms
// that change mode are emitted individually; each span between them is
// compressed as one batch through the property precedence chain
// (background color, color, family, size, series, shape, leaf).
func (m *textMode) Serialize(atoms []*Atom, opts SerializeOptions) string {
	var parts []string
	var batch []*Atom

	flush := func() {
		if len(batch) > 0 {
			parts = append(parts, m.emitBackgroundRuns(batch))
			batch = nil
		}
	}

	for _, a := range atoms {
		if isModeSwitch(a) {
			flush()
			parts = append(parts, m.reg.serializeGroup(a))
			continue
		}

		batch = append(batch, a)
	}

	flush()

	out := joinLatex(parts...)
	if out == "" || opts.SkipModeCommand {
		return out
	}

	// \text is redundant when every atom already gets a \text… style
	// wrapper from its own shape, series or family
	for _, a := range atoms {
		if a.Style.FontShape == "" && a.Style.FontSeries == "" && a.Style.FontFamily == "" {
			return "\\text{" + out + "}"
		}
	}

	return out
}

func isModeSwitch(a *Atom) bool {
	return a.Kind == GroupKind && a.InnerMode != "" && a.InnerMode != a.Mode
}

func (r *Registry) serializeGroup(a *Atom) string {
	if a.VerbatimLatex != "" && a.Style.IsZero() {
		return a.VerbatimLatex
	}

	inner := r.Serialize(a.Children, SerializeOptions{SkipModeCommand: true})

	var out string
	switch a.Command {
	case "$":
		out = "$" + inner + "$"
	case "$$":
		out = "$$" + inner + "$$"
	case "\\text":
		out = "\\text{" + inner + "}"
	default:
		out = "{" + inner + "}"
	}

	return wrapGroupStyle(a, out)
}

// wrapGroupStyle emits the group atom's own styling commands around its
// serialized form, innermost shape to outermost background color, the same
// nesting order the run compressor produces.
func wrapGroupStyle(a *Atom, s string) string {
	style, parent := a.Style, a.ParentStyle()

	s = wrapShape(s, style.FontShape)
	s = wrapSeries(s, style.FontSeries)
	s = wrapSize(s, style.FontSize)
	s = wrapFamily(s, style.FontFamily)

	if style.Color != "" && style.Color != "none" && style.Color != parent.Color {
		s = wrapColor(s, style)
	}

	if style.BackgroundColor != "" && style.BackgroundColor != parent.BackgroundColor {
		s = wrapBackground(s, style)
	}

	return s
}

func (m *textMode) emitBackgroundRuns(run []*Atom) string {
	parentBg := run[0].ParentStyle().BackgroundColor

	var parts []string
	for _, x := range PartitionBy(run, BackgroundColorProperty) {
		s := m.emitColorRuns(x)
		if s == "" {
			continue
		}

		style := x[0].Style
		if style.BackgroundColor != "" && style.BackgroundColor != parentBg && !selfStyled(x) {
			s = wrapBackground(s, style)
		}

		parts = append(parts, s)
	}

	return joinLatex(parts...)
}

// selfStyled reports a run that is a single group atom. Groups carry their
// own style wrappers out of serializeGroup; wrapping the run again would
// duplicate the commands.
func selfStyled(run []*Atom) bool {
	return len(run) == 1 && run[0].Kind == GroupKind
}

func (m *textMode) emitColorRuns(run []*Atom) string {
	parentColor := run[0].ParentStyle().Color

	var parts []string
	for _, x := range PartitionBy(run, ColorProperty) {
		s := m.emitFamilyRuns(x)
		if s == "" {
			continue
		}

		style := x[0].Style
		if style.Color != "" && style.Color != "none" && style.Color != parentColor && !selfStyled(x) {
			s = wrapColor(s, style)
		}

		parts = append(parts, s)
	}

	return joinLatex(parts...)
}

func (m *textMode) emitFamilyRuns(run []*Atom) string {
	var parts []string
	for _, x := range PartitionBy(run, FontFamilyProperty) {
		s := m.emitSizeRuns(x)
		if s == "" {
			continue
		}

		if !selfStyled(x) {
			s = wrapFamily(s, x[0].Style.FontFamily)
		}

		parts = append(parts, s)
	}

	return joinLatex(parts...)
}

func (m *textMode) emitSizeRuns(run []*Atom) string {
	var parts []string
	for _, x := range PartitionBy(run, FontSizeProperty) {
		s := m.emitSeriesRuns(x)
		if s == "" {
			continue
		}

		if !selfStyled(x) {
			s = wrapSize(s, x[0].Style.FontSize)
		}

		parts = append(parts, s)
	}

	return joinLatex(parts...)
}

func (m *textMode) emitSeriesRuns(run []*Atom) string {
	var parts []string
	for _, x := range PartitionBy(run, FontSeriesProperty) {
		s := m.emitShapeRuns(x)
		if s == "" {
			continue
		}

		if !selfStyled(x) {
			s = wrapSeries(s, x[0].Style.FontSeries)
		}

		parts = append(parts, s)
	}

	return joinLatex(parts...)
}

func (m *textMode) emitShapeRuns(run []*Atom) string {
	var parts []string
	for _, x := range PartitionBy(run, FontShapeProperty) {
		s := m.emitAtoms(x)
		if s == "" {
			continue
		}

		if !selfStyled(x) {
			s = wrapShape(s, x[0].Style.FontShape)
		}

		parts = append(parts, s)
	}

	return joinLatex(parts...)
}

func (m *textMode) emitAtoms(run []*Atom) string {
	var parts []string
	for _, a := range run {
		if a.Kind == GroupKind {
			parts = append(parts, m.reg.serializeGroup(a))
			continue
		}

		parts = append(parts, a.Latex())
	}

	return joinLatex(parts...)
}

func wrapShape(s, shape string) string {
	switch shape {
	case "":
		return s
	case "it":
		return "\\textit{" + s + "}"
	case "sl":
		return "\\textsl{" + s + "}"
	case "sc":
		return "\\textsc{" + s + "}"
	case "n":
		return "\\textup{" + s + "}"
	default:
		return "{" + joinLatex("\\fontshape{"+shape+"}\\selectfont", s) + "}"
	}
}

func wrapSeries(s, series string) string {
	switch series {
	case "":
		return s
	case "b":
		return "\\textbf{" + s + "}"
	case "l":
		return "\\textlf{" + s + "}"
	case "m":
		return "\\textmd{" + s + "}"
	default:
		return "{" + joinLatex("\\fontseries{"+series+"}\\selectfont", s) + "}"
	}
}

// wrapSize brace-scopes the size declaration to its content.
func wrapSize(s string, scale int) string {
	name := SizeName(scale)
	if name == "" {
		return s
	}

	return "{" + joinLatex(name, s) + "}"
}

func wrapFamily(s, family string) string {
	switch family {
	case "", "roman":
		// roman is the text default, nothing to emit
		return s
	case "sans-serif":
		return "\\textsf{" + s + "}"
	case "monospace":
		return "\\texttt{" + s + "}"
	default:
		return "{" + joinLatex("\\fontfamily{"+family+"}\\selectfont", s) + "}"
	}
}

func wrapColor(s string, style Style) string {
	return "\\textcolor{" + coalesce(style.VerbatimColor, style.Color) + "}{" + s + "}"
}

func wrapBackground(s string, style Style) string {
	return "\\colorbox{" + coalesce(style.VerbatimBackgroundColor, style.BackgroundColor) + "}{" + s + "}"
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// Box is the handle the style-application consumer supplies: a visual node
// that accepts presentation classes.
type Box interface {
	AddClass(name string)
}

// ApplyTextStyle is the text-mode style-application consumer: it maps
// family, series and shape to presentation classes on the box and returns
// the metrics-font identifier. Text mode always reports the same font;
// glyph metrics selection is the renderer's concern.
func ApplyTextStyle(box Box, style Style) string {
	return (&textMode{}).ApplyStyle(box, style)
}

func (m *textMode) ApplyStyle(box Box, style Style) string {
	switch style.FontFamily {
	case "sans-serif":
		box.AddClass("textsf")
	case "monospace":
		box.AddClass("texttt")
	}

	switch style.FontSeries {
	case "b":
		box.AddClass("textbf")
	case "l":
		box.AddClass("textlf")
	}

	switch style.FontShape {
	case "it":
		box.AddClass("textit")
	case "sl":
		box.AddClass("textsl")
	case "sc":
		box.AddClass("textsc")
	}

	return "text"
}

// textCommands is the dispatch table text mode hands to the registry.
func textCommands() map[string]commandHandler {
	cmds := map[string]commandHandler{
		"\\text":      textGroupCommand,
		"\\textbf":    styleArgCommand(stampSeries("b")),
		"\\textlf":    styleArgCommand(stampSeries("l")),
		"\\textmd":    styleArgCommand(stampSeries("m")),
		"\\textit":    styleArgCommand(stampShape("it")),
		"\\textsl":    styleArgCommand(stampShape("sl")),
		"\\textsc":    styleArgCommand(stampShape("sc")),
		"\\textup":    styleArgCommand(stampShape("n")),
		"\\textsf":    styleArgCommand(stampFamily("sans-serif")),
		"\\texttt":    styleArgCommand(stampFamily("monospace")),
		"\\textrm":    styleArgCommand(stampFamily("roman")),
		"\\textcolor": colorCommand(false),
		"\\colorbox":  colorCommand(true),

		"\\bfseries": declarationCommand(stampSeries("b")),
		"\\mdseries": declarationCommand(stampSeries("m")),
		"\\itshape":  declarationCommand(stampShape("it")),
		"\\slshape":  declarationCommand(stampShape("sl")),
		"\\scshape":  declarationCommand(stampShape("sc")),
		"\\upshape":  declarationCommand(stampShape("n")),
		"\\rmfamily": declarationCommand(stampFamily("roman")),
		"\\sffamily": declarationCommand(stampFamily("sans-serif")),
		"\\ttfamily": declarationCommand(stampFamily("monospace")),

		"\\fontfamily": selectFontCommand(stampFamilyRaw),
		"\\fontseries": selectFontCommand(stampSeriesRaw),
		"\\fontshape":  selectFontCommand(stampShapeRaw),
	}

	for scale := 1; scale < len(sizeNames); scale++ {
		cmds[sizeNames[scale]] = declarationCommand(stampSize(scale))
	}

	return cmds
}

// textGroupCommand handles \text{..}: in text mode the content splices in
// place, in math mode it becomes a mode-changing group atom.
func textGroupCommand(r *Registry, mode string, tail []Token, sink ErrorSink, opts ParseOptions) ([]*Atom, []Token) {
	atoms, rest := r.argument("text", tail, sink, opts)
	if mode == "text" {
		return atoms, rest
	}

	group := &Atom{Kind: GroupKind, Mode: mode, InnerMode: "text", Command: "\\text"}
	group.Adopt(atoms...)

	return []*Atom{group}, rest
}

// styleArgCommand parses one argument and stamps a style field on the atoms
// it produced. Fields already set by nested commands win.
func styleArgCommand(stamp func(*Atom)) commandHandler {
	return func(r *Registry, mode string, tail []Token, sink ErrorSink, opts ParseOptions) ([]*Atom, []Token) {
		atoms, rest := r.argument(mode, tail, sink, opts)
		for _, a := range atoms {
			stamp(a)
		}

		return atoms, rest
	}
}

// declarationCommand applies a style field to everything parsed from the
// rest of the current group.
func declarationCommand(stamp func(*Atom)) commandHandler {
	return func(r *Registry, mode string, tail []Token, sink ErrorSink, opts ParseOptions) ([]*Atom, []Token) {
		atoms, rest := r.Parse(mode, tail, sink, opts)
		for _, a := range atoms {
			stamp(a)
		}

		return atoms, rest
	}
}

// selectFontCommand handles the generic \fontfamily{x}\selectfont forms:
// a verbatim code argument, an optional \selectfont, then declaration
// scoping.
func selectFontCommand(stamp func(*Atom, string)) commandHandler {
	return func(r *Registry, mode string, tail []Token, sink ErrorSink, opts ParseOptions) ([]*Atom, []Token) {
		code, rest, ok := verbatimArgument(tail)
		if !ok {
			return nil, rest
		}

		if len(rest) > 0 {
			if cw, isCW := rest[0].(ControlWord); isCW && cw == "\\selectfont" {
				rest = rest[1:]
			}
		}

		atoms, rest := r.Parse(mode, rest, sink, opts)
		for _, a := range atoms {
			stamp(a, code)
		}

		return atoms, rest
	}
}

// colorCommand handles \textcolor and \colorbox: the color argument is read
// verbatim, normalized for run comparison and kept raw for round-trip.
func colorCommand(background bool) commandHandler {
	return func(r *Registry, mode string, tail []Token, sink ErrorSink, opts ParseOptions) ([]*Atom, []Token) {
		raw, rest, ok := verbatimArgument(tail)
		if !ok {
			return nil, rest
		}

		atoms, rest := r.argument(mode, rest, sink, opts)

		norm := NormalizeColor(raw)
		for _, a := range atoms {
			if background {
				if a.Style.BackgroundColor == "" {
					a.Style.BackgroundColor = norm
					a.Style.VerbatimBackgroundColor = raw
				}
			} else if a.Style.Color == "" {
				a.Style.Color = norm
				a.Style.VerbatimColor = raw
			}
		}

		return atoms, rest
	}
}

func stampSeries(v string) func(*Atom) {
	return func(a *Atom) { stampSeriesRaw(a, v) }
}

func stampShape(v string) func(*Atom) {
	return func(a *Atom) { stampShapeRaw(a, v) }
}

func stampFamily(v string) func(*Atom) {
	return func(a *Atom) { stampFamilyRaw(a, v) }
}

func stampSize(scale int) func(*Atom) {
	return func(a *Atom) {
		if a.Style.FontSize == 0 {
			a.Style.FontSize = scale
		}
	}
}

func stampSeriesRaw(a *Atom, v string) {
	if a.Style.FontSeries == "" {
		a.Style.FontSeries = v
	}
}

func stampShapeRaw(a *Atom, v string) {
	if a.Style.FontShape == "" {
		a.Style.FontShape = v
	}
}

func stampFamilyRaw(a *Atom, v string) {
	if a.Style.FontFamily == "" {
		a.Style.FontFamily = v
	}
}

// argument reads one command argument: a brace group parsed recursively in
// the given mode, or, without braces, the single next token.
func (r *Registry) argument(mode string, tail []Token, sink ErrorSink, opts ParseOptions) ([]*Atom, []Token) {
	tail = skipSpaces(tail)
	if len(tail) == 0 {
		return nil, nil
	}

	if _, ok := tail[0].(GroupStart); ok {
		inner, rest := splitGroup(tail[1:])
		atoms, _ := r.Parse(mode, inner, sink, opts)
		return atoms, rest
	}

	atoms, _ := r.Parse(mode, tail[:1], sink, opts)
	return atoms, tail[1:]
}

// verbatimArgument reads one argument as raw source text without parsing.
func verbatimArgument(tail []Token) (string, []Token, bool) {
	tail = skipSpaces(tail)
	if len(tail) == 0 {
		return "", nil, false
	}

	if _, ok := tail[0].(GroupStart); ok {
		inner, rest := splitGroup(tail[1:])

		var sb strings.Builder
		for _, t := range inner {
			sb.WriteString(TokenText(t))
		}

		return sb.String(), rest, true
	}

	return TokenText(tail[0]), tail[1:], true
}

func skipSpaces(tokens []Token) []Token {
	for len(tokens) > 0 {
		if _, ok := tokens[0].(Space); !ok {
			break
		}

		tokens = tokens[1:]
	}

	return tokens
}
