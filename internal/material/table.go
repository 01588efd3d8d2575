package material

import (
	"fmt"
	"sort"
)

// PropertyTable is an ordered, thickness-banded lookup table for a single
// strength property. thresholds[i] is the inclusive upper bound of band i;
// the lower bound is thresholds[i-1] (exclusive), implicitly 0 for the
// first band. Tables are immutable once built.
type PropertyTable struct {
	thresholds []float64
	values     []float64
}

// NewPropertyTable builds a PropertyTable from parallel threshold and value
// slices. The slices are copied, so the caller keeps ownership of its own
// data. It returns a *MalformedTableError if the shape is invalid:
// mismatched lengths, no bands at all, thresholds not strictly increasing
// and positive, or a negative strength value.
func NewPropertyTable(thresholds, values []float64) (*PropertyTable, error) {
	if len(thresholds) != len(values) {
		return nil, &MalformedTableError{
			Reason: fmt.Sprintf("%d thresholds but %d values", len(thresholds), len(values)),
		}
	}
	if len(thresholds) == 0 {
		return nil, &MalformedTableError{Reason: "table has no bands"}
	}
	if thresholds[0] <= 0 {
		return nil, &MalformedTableError{
			Reason: fmt.Sprintf("first threshold %v is not positive", thresholds[0]),
		}
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] <= thresholds[i-1] {
			return nil, &MalformedTableError{
				Reason: fmt.Sprintf("thresholds must be strictly increasing: %v followed by %v", thresholds[i-1], thresholds[i]),
			}
		}
	}
	for i, v := range values {
		if v < 0 {
			return nil, &MalformedTableError{
				Reason: fmt.Sprintf("value %v at band %d is negative", v, i),
			}
		}
	}

	return &PropertyTable{
		thresholds: append([]float64(nil), thresholds...),
		values:     append([]float64(nil), values...),
	}, nil
}

// Resolve returns the strength value for the band containing the given
// thickness. A band is inclusive of its upper threshold and exclusive of
// its lower one, matching how strength-reduction tables are published, so
// a thickness exactly on a threshold resolves to that band's value.
//
// Non-positive thickness returns *InvalidThicknessError; thickness beyond
// the largest threshold returns *ThicknessOutOfRangeError.
func (t *PropertyTable) Resolve(thickness float64) (float64, error) {
	if thickness <= 0 {
		return 0, &InvalidThicknessError{Thickness: thickness}
	}

	// Smallest i with thresholds[i] >= thickness.
	i := sort.SearchFloat64s(t.thresholds, thickness)
	if i == len(t.thresholds) {
		return 0, &ThicknessOutOfRangeError{Thickness: thickness, Max: t.MaxThickness()}
	}

	return t.values[i], nil
}

// MaxThickness returns the largest tabulated threshold, i.e. the upper
// bound of the table's certified range.
func (t *PropertyTable) MaxThickness() float64 {
	return t.thresholds[len(t.thresholds)-1]
}

// Len returns the number of bands in the table.
func (t *PropertyTable) Len() int {
	return len(t.thresholds)
}
