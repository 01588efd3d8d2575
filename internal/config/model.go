package config

// Row is the format-agnostic representation of one material entry in a
// source document. It carries raw, unvalidated field values; the registry
// builder owns all structural validation.
type Row struct {
	Key      string
	Type     string
	Name     string
	Standard string

	// Scalars holds thickness-independent numeric properties, keyed by
	// property name (e.g. "E" for the elastic modulus).
	Scalars map[string]float64

	// Banded holds one entry per named thickness-banded property. Loaders
	// are responsible for unpacking any packed multi-series encoding in
	// the source format into individual named properties before the row
	// reaches the registry.
	Banded []BandedProperty
}

// BandedProperty is the raw parallel-array form of one thickness-banded
// property, e.g. "yield_strength".
type BandedProperty struct {
	Name       string
	Thresholds []float64
	Values     []float64
}
