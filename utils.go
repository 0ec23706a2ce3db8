package mathtex

import "strings"

// joinLatex concatenates LaTeX fragments, inserting a space only where the
// two outputs would otherwise merge into a different token: a fragment
// ending in an alphabetic control word followed by a fragment starting with
// a letter or digit.
func joinLatex(fragments ...string) string {
	var sb strings.Builder
	for _, fragment := range fragments {
		if fragment == "" {
			continue
		}

		if endsWithControlWord(sb.String()) && startsWithAlnum(fragment) {
			sb.WriteByte(' ')
		}

		sb.WriteString(fragment)
	}

	return sb.String()
}

// endsWithControlWord reports whether s ends with \word, where appending a
// letter would extend the command name.
func endsWithControlWord(s string) bool {
	i := len(s)
	for i > 0 && isLetter(rune(s[i-1])) {
		i--
	}

	return i < len(s) && i > 0 && s[i-1] == '\\'
}

func startsWithAlnum(s string) bool {
	r := rune(s[0])
	return isLetter(r) || '0' <= r && r <= '9'
}

// Text extracts the rendered characters of an atom sequence, descending
// into groups. It is the plain-text projection of the tree.
func Text(atoms ...*Atom) (out string) {
	for _, atom := range atoms {
		if len(atom.Children) > 0 {
			out += Text(atom.Children...)
			continue
		}

		out += atom.Value
	}

	return
}
