// Package material defines the core domain types for structural material
// properties: the immutable thickness-banded PropertyTable, the Material
// record that aggregates scalar and banded properties, and the error
// taxonomy shared by the registry and resolution layers.
//
// Strength values in design standards are published as discrete bands over
// thickness (strength steps down as plate thickness goes up), so resolution
// is a stepwise band lookup, never an interpolation. Values outside the
// tabulated range are rejected rather than extrapolated: a standard does
// not certify behaviour beyond its tables.
package material
