package material

import (
	"fmt"
	"sort"
)

// Material is a single material record: identity, scalar properties such as
// the elastic modulus, and zero or more thickness-banded strength tables.
// Records are built once by the registry and never mutated afterwards.
type Material struct {
	key      string
	kind     string
	name     string
	standard string
	scalars  map[string]float64
	banded   map[string]*PropertyTable
}

// New builds a Material record. The property maps are copied; a material
// with no banded tables is valid (it simply has no thickness-dependent
// properties to resolve).
func New(key, kind, name, standard string, scalars map[string]float64, banded map[string]*PropertyTable) *Material {
	m := &Material{
		key:      key,
		kind:     kind,
		name:     name,
		standard: standard,
		scalars:  make(map[string]float64, len(scalars)),
		banded:   make(map[string]*PropertyTable, len(banded)),
	}
	for k, v := range scalars {
		m.scalars[k] = v
	}
	for k, v := range banded {
		m.banded[k] = v
	}
	return m
}

// Key returns the registry key of the material.
func (m *Material) Key() string { return m.key }

// Type returns the material type, e.g. "steel".
func (m *Material) Type() string { return m.kind }

// Name returns the grade name, e.g. "250".
func (m *Material) Name() string { return m.name }

// Standard returns the governing design standard, e.g. "AS3678-2016".
func (m *Material) Standard() string { return m.standard }

// Scalar returns the named thickness-independent property, or an
// *UnknownPropertyError if the material does not carry it.
func (m *Material) Scalar(name string) (float64, error) {
	v, ok := m.scalars[name]
	if !ok {
		return 0, &UnknownPropertyError{Key: m.key, Property: name}
	}
	return v, nil
}

// Banded resolves the named thickness-banded property at the given
// thickness. An unknown property name returns *UnknownPropertyError before
// the thickness is even looked at, so a material with no tables never
// reports a thickness error. Thickness errors from the table pass through
// unchanged.
func (m *Material) Banded(name string, thickness float64) (float64, error) {
	table, ok := m.banded[name]
	if !ok {
		return 0, &UnknownPropertyError{Key: m.key, Property: name}
	}
	return table.Resolve(thickness)
}

// HasScalar reports whether the material carries the named scalar property.
func (m *Material) HasScalar(name string) bool {
	_, ok := m.scalars[name]
	return ok
}

// HasBanded reports whether the material carries the named banded property.
func (m *Material) HasBanded(name string) bool {
	_, ok := m.banded[name]
	return ok
}

// ScalarNames returns the scalar property names in sorted order.
func (m *Material) ScalarNames() []string {
	return sortedKeys(m.scalars)
}

// BandedNames returns the banded property names in sorted order.
func (m *Material) BandedNames() []string {
	return sortedKeys(m.banded)
}

func (m *Material) String() string {
	return fmt.Sprintf("Material(key=%s, type=%s, name=%s, standard=%s)", m.key, m.kind, m.name, m.standard)
}

func sortedKeys[V any](src map[string]V) []string {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
