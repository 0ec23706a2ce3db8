package mathtex_test

import (
	"testing"

	mathtex "github.com/mathtex/go-mathtex"
)

func TestComputedStyle(t *testing.T) {
	root := &mathtex.Atom{Kind: mathtex.GroupKind, Mode: "text"}
	root.Style.Color = "red"
	root.Style.FontSize = 3

	middle := &mathtex.Atom{Kind: mathtex.GroupKind, Mode: "text"}
	middle.Style.FontSeries = "b"
	root.Adopt(middle)

	leaf := mathtex.NewText("a", "a")
	leaf.Style.Color = "blue"
	middle.Adopt(leaf)

	got := leaf.ComputedStyle()

	if got.Color != "blue" {
		t.Errorf("own value must win over inherited, got %q", got.Color)
	}

	if got.FontSeries != "b" {
		t.Errorf("expected series inherited from middle, got %q", got.FontSeries)
	}

	if got.FontSize != 3 {
		t.Errorf("expected size inherited from root, got %d", got.FontSize)
	}

	if got.FontShape != "" {
		t.Errorf("unset everywhere must stay unset, got %q", got.FontShape)
	}
}

func TestAdoptReparents(t *testing.T) {
	first := &mathtex.Atom{Kind: mathtex.GroupKind}
	second := &mathtex.Atom{Kind: mathtex.GroupKind}
	child := mathtex.NewText("a", "a")

	first.Adopt(child)
	second.Adopt(child)

	if child.Parent != second {
		t.Errorf("expected child to belong to its new parent")
	}

	if len(first.Children) != 0 {
		t.Errorf("expected old parent to drop the child, still holds %d", len(first.Children))
	}

	if len(second.Children) != 1 || second.Children[0] != child {
		t.Errorf("expected new parent to hold the child")
	}
}

func TestSetStyleDropsVerbatim(t *testing.T) {
	a := mathtex.NewText("\\dag", "†")
	a.VerbatimLatex = "\\dag"

	a.SetStyle(mathtex.Style{Color: "red"})

	if a.VerbatimLatex != "" {
		t.Errorf("expected verbatim span to be dropped after style mutation")
	}

	if a.Latex() != "\\dag" {
		t.Errorf("expected leaf serialization to fall back to command, got %q", a.Latex())
	}
}

func TestNormalizeColor(t *testing.T) {
	tt := []struct {
		input  string
		output string
	}{
		{"red", "#ff0000"},
		{"Red", "#ff0000"},
		{"#ABC", "#aabbcc"},
		{"#a1b2c3", "#a1b2c3"},
		{"a1b2c3", "#a1b2c3"},
		{"none", "none"},
		{"", ""},
		{"mycustomcolor", "mycustomcolor"},
	}

	for _, tc := range tt {
		if got := mathtex.NormalizeColor(tc.input); got != tc.output {
			t.Errorf("NormalizeColor(%q) = %q, want %q", tc.input, got, tc.output)
		}
	}
}
