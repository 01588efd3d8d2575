package material

import "fmt"

// MalformedTableError reports a structural problem in a property table's
// raw data, detected when the table is built. The registry attaches the
// owning material key before surfacing it.
type MalformedTableError struct {
	Key      string
	Property string
	Reason   string
}

func (e *MalformedTableError) Error() string {
	msg := "malformed property table"
	if e.Property != "" {
		msg = fmt.Sprintf("malformed table for property %q", e.Property)
	}
	if e.Key != "" {
		return fmt.Sprintf("material %q: %s: %s", e.Key, msg, e.Reason)
	}
	return fmt.Sprintf("%s: %s", msg, e.Reason)
}

// UnknownMaterialError reports a lookup for a key that is not in the registry.
type UnknownMaterialError struct {
	Key string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("unknown material %q", e.Key)
}

// UnknownPropertyError reports a query for a property name the material
// does not carry. Absence of data is deliberately distinct from a
// thickness error: a material with no banded tables at all still answers
// with this error, never with a range error.
type UnknownPropertyError struct {
	Key      string
	Property string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("material %q has no property %q", e.Key, e.Property)
}

// InvalidThicknessError reports a non-positive queried thickness.
type InvalidThicknessError struct {
	Thickness float64
}

func (e *InvalidThicknessError) Error() string {
	return fmt.Sprintf("invalid thickness %v: must be greater than zero", e.Thickness)
}

// ThicknessOutOfRangeError reports a queried thickness beyond the largest
// tabulated threshold.
type ThicknessOutOfRangeError struct {
	Thickness float64
	Max       float64
}

func (e *ThicknessOutOfRangeError) Error() string {
	return fmt.Sprintf("thickness %v exceeds the tabulated range (max %v)", e.Thickness, e.Max)
}

// InvalidQueryError reports a caller logic error in a resolution query,
// such as supplying a thickness for a scalar property.
type InvalidQueryError struct {
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return "invalid query: " + e.Reason
}
