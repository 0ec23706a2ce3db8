package mathtex

import "strconv"

// Property names one style field for run partitioning.
type Property int

const (
	BackgroundColorProperty Property = iota
	ColorProperty
	FontFamilyProperty
	FontSizeProperty
	FontSeriesProperty
	FontShapeProperty
)

// key returns the comparison key of the property's own (not computed) value
// on a style. The unset value has its own key, distinct from any concrete
// value.
func (p Property) key(s Style) string {
	switch p {
	case BackgroundColorProperty:
		return s.BackgroundColor
	case ColorProperty:
		return s.Color
	case FontFamilyProperty:
		return s.FontFamily
	case FontSizeProperty:
		if s.FontSize == 0 {
			return ""
		}

		return strconv.Itoa(s.FontSize)
	case FontSeriesProperty:
		return s.FontSeries
	case FontShapeProperty:
		return s.FontShape
	default:
		return ""
	}
}

// PartitionBy splits atoms into the minimal number of maximal contiguous
// runs in which every atom reports the same own value for the property.
// Order-preserving, non-destructive, linear; empty input yields nil.
func PartitionBy(atoms []*Atom, prop Property) [][]*Atom {
	var runs [][]*Atom

	for i, atom := range atoms {
		if i > 0 && prop.key(atom.Style) == prop.key(atoms[i-1].Style) {
			last := len(runs) - 1
			runs[last] = append(runs[last], atom)
			continue
		}

		runs = append(runs, []*Atom{atom})
	}

	return runs
}
