package mathtex_test

import (
	"testing"

	mathtex "github.com/mathtex/go-mathtex"
)

func TestPartitionBy(t *testing.T) {
	colored := func(value, color string) *mathtex.Atom {
		a := mathtex.NewText(value, value)
		a.Style.Color = color
		return a
	}

	tt := []struct {
		name   string
		atoms  []*mathtex.Atom
		prop   mathtex.Property
		counts []int
	}{
		{
			name:   "empty input yields no runs",
			atoms:  nil,
			prop:   mathtex.ColorProperty,
			counts: nil,
		},
		{
			name:   "uniform value is one run",
			atoms:  []*mathtex.Atom{colored("a", "red"), colored("b", "red"), colored("c", "red")},
			prop:   mathtex.ColorProperty,
			counts: []int{3},
		},
		{
			name:   "unset is distinct from any concrete value",
			atoms:  []*mathtex.Atom{colored("a", ""), colored("b", "red"), colored("c", "")},
			prop:   mathtex.ColorProperty,
			counts: []int{1, 1, 1},
		},
		{
			name:   "maximal contiguous runs",
			atoms:  []*mathtex.Atom{colored("a", "red"), colored("b", "red"), colored("c", "blue"), colored("d", "red")},
			prop:   mathtex.ColorProperty,
			counts: []int{2, 1, 1},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			runs := mathtex.PartitionBy(tc.atoms, tc.prop)

			if len(runs) != len(tc.counts) {
				t.Fatalf("expected %d runs, got %d", len(tc.counts), len(runs))
			}

			// concatenated back together the runs must equal the input,
			// no atoms lost or reordered
			var flat []*mathtex.Atom
			for i, run := range runs {
				if len(run) != tc.counts[i] {
					t.Errorf("run #%d: expected %d atoms, got %d", i, tc.counts[i], len(run))
				}

				for _, a := range run[1:] {
					if a.Style.Color != run[0].Style.Color {
						t.Errorf("run #%d mixes values %q and %q", i, run[0].Style.Color, a.Style.Color)
					}
				}

				if i > 0 && run[0].Style.Color == runs[i-1][0].Style.Color {
					t.Errorf("adjacent runs #%d and #%d share value %q", i-1, i, run[0].Style.Color)
				}

				flat = append(flat, run...)
			}

			for i, a := range flat {
				if a != tc.atoms[i] {
					t.Errorf("atom #%d lost or reordered", i)
				}
			}
		})
	}
}

func TestPartitionByFontSize(t *testing.T) {
	sized := func(value string, size int) *mathtex.Atom {
		a := mathtex.NewText(value, value)
		a.Style.FontSize = size
		return a
	}

	atoms := []*mathtex.Atom{sized("a", 1), sized("b", 1), sized("c", 0), sized("d", 10)}

	runs := mathtex.PartitionBy(atoms, mathtex.FontSizeProperty)
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}

	if len(runs[0]) != 2 {
		t.Errorf("expected first run to hold both size-1 atoms, got %d", len(runs[0]))
	}
}
