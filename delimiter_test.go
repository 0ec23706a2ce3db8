package mathtex_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	mathtex "github.com/mathtex/go-mathtex"
)

func TestDelimiterLatex(t *testing.T) {
	tt := []struct {
		name   string
		atom   *mathtex.Atom
		output string
	}{
		{
			name:   "plain single character",
			atom:   mathtex.NewDelimiter("(", "("),
			output: "(",
		},
		{
			name:   "plain named delimiter",
			atom:   mathtex.NewDelimiter("\\langle", "⟨"),
			output: "\\langle",
		},
		{
			name:   "sized single character",
			atom:   mathtex.NewSizedDelimiter("\\Big", "(", 2, "open"),
			output: "\\Big(",
		},
		{
			name:   "sized named delimiter",
			atom:   mathtex.NewSizedDelimiter("\\Bigl", "\\langle", 2, "open"),
			output: "\\Bigl{\\langle}",
		},
		{
			name:   "sized invisible sentinel",
			atom:   mathtex.NewSizedDelimiter("\\Bigr", ".", 2, "close"),
			output: "\\Bigr.",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.atom.Latex(); got != tc.output {
				t.Errorf("latex = %q, want %q", got, tc.output)
			}
		})
	}
}

func TestParseSizedDelimiters(t *testing.T) {
	atoms := parseText(t, "$\\Big(x\\Big)$", nil)

	if len(atoms) != 1 {
		t.Fatalf("expected a single math group, got %d atoms", len(atoms))
	}

	want := []*mathtex.Atom{
		mathtex.NewSizedDelimiter("\\Big", "(", 2, "ord"),
		{Kind: mathtex.TextKind, Mode: "math", Command: "x", Value: "x", VerbatimLatex: "x"},
		mathtex.NewSizedDelimiter("\\Big", ")", 2, "ord"),
	}

	if diff := cmp.Diff(want, atoms[0].Children, ignoreParent); diff != "" {
		t.Errorf("children do not match (-want +got):\n%s", diff)
	}
}

func TestParsePlainDelimiters(t *testing.T) {
	atoms := parseText(t, "$(x)$", nil)

	children := atoms[0].Children
	if len(children) != 3 {
		t.Fatalf("expected 3 atoms, got %d", len(children))
	}

	if children[0].Kind != mathtex.DelimiterKind || children[0].Command != "(" || children[0].Value != "(" {
		t.Errorf("expected an opening delimiter atom, got %#v", children[0])
	}

	if children[0].Size != 0 {
		t.Errorf("plain delimiters are unsized, got size %d", children[0].Size)
	}
}

func TestParseNamedDelimiters(t *testing.T) {
	atoms := parseText(t, "$\\langle x\\rangle$", nil)

	children := atoms[0].Children
	if len(children) != 3 {
		t.Fatalf("expected 3 atoms, got %d", len(children))
	}

	open := children[0]
	if open.Kind != mathtex.DelimiterKind || open.Command != "\\langle" || open.Value != "⟨" {
		t.Errorf("expected the source token and glyph on the atom, got %#v", open)
	}
}

type stubSizer struct {
	ok bool
}

func (s stubSizer) SizeDelimiter(value string, size int) (any, bool) {
	if !s.ok {
		return nil, false
	}

	return value, true
}

func TestRenderSized(t *testing.T) {
	atom := mathtex.NewSizedDelimiter("\\Big", "(", 2, "open")

	box, err := mathtex.RenderSized(atom, stubSizer{ok: true})
	if err != nil {
		t.Fatalf("unexpected sizing error: %v", err)
	}

	if box != "(" {
		t.Errorf("expected the sizer's box, got %#v", box)
	}

	box, err = mathtex.RenderSized(atom, stubSizer{ok: false})
	if box != nil {
		t.Errorf("expected no box when sizing fails, got %#v", box)
	}

	var perr *mathtex.ParseError
	if !errors.As(err, &perr) || perr.Code != mathtex.ErrUnresolvedSizing {
		t.Errorf("expected an unresolved-sizing error, got %v", err)
	}
}
