package registry

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/vk/matprops/internal/config"
	"github.com/vk/matprops/internal/material"
)

// Registry holds all material records for one loaded document set, keyed by
// material key, preserving document order for deterministic listing.
type Registry struct {
	materials map[string]*material.Material
	order     []string
}

// Build validates every row and constructs the registry. Validation covers
// key uniqueness across the whole input, presence of the identity fields
// (type, name, standard), and the shape of every banded property table.
// Richer per-type schemas are left to the consuming domain layer.
//
// Build is atomic: any failure means no registry. All failing rows are
// reported in one aggregate error so a data-authoring mistake surfaces its
// full extent in a single pass.
func Build(rows []config.Row) (*Registry, error) {
	reg := &Registry{
		materials: make(map[string]*material.Material, len(rows)),
		order:     make([]string, 0, len(rows)),
	}
	var errs []string

	for _, row := range rows {
		if err := reg.addRow(row); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("material registry build failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return reg, nil
}

// addRow validates a single row and inserts the resulting record.
func (r *Registry) addRow(row config.Row) error {
	if row.Key == "" {
		return errors.New("row with empty key")
	}
	if _, exists := r.materials[row.Key]; exists {
		return fmt.Errorf("duplicate material key %q", row.Key)
	}
	if row.Type == "" || row.Name == "" || row.Standard == "" {
		return fmt.Errorf("material %q: type, name and standard are all required", row.Key)
	}

	banded := make(map[string]*material.PropertyTable, len(row.Banded))
	for _, bp := range row.Banded {
		if bp.Name == "" {
			return fmt.Errorf("material %q: banded property with empty name", row.Key)
		}
		if _, exists := banded[bp.Name]; exists {
			return fmt.Errorf("material %q: duplicate banded property %q", row.Key, bp.Name)
		}
		table, err := material.NewPropertyTable(bp.Thresholds, bp.Values)
		if err != nil {
			// Attach the owning key and property so the aggregate error
			// points straight at the offending document entry.
			var mt *material.MalformedTableError
			if errors.As(err, &mt) {
				mt.Key = row.Key
				mt.Property = bp.Name
			}
			return err
		}
		banded[bp.Name] = table
	}

	// A name must resolve unambiguously to one property kind.
	for name := range banded {
		if _, ok := row.Scalars[name]; ok {
			return fmt.Errorf("material %q: property %q is declared both scalar and banded", row.Key, name)
		}
	}

	r.materials[row.Key] = material.New(row.Key, row.Type, row.Name, row.Standard, row.Scalars, banded)
	r.order = append(r.order, row.Key)
	return nil
}

// Get returns the material record for the given key, or an
// *material.UnknownMaterialError if no such material exists.
func (r *Registry) Get(key string) (*material.Material, error) {
	m, ok := r.materials[key]
	if !ok {
		return nil, &material.UnknownMaterialError{Key: key}
	}
	return m, nil
}

// Keys returns a restartable sequence of all material keys in document
// order. It never exposes the registry's internal storage.
func (r *Registry) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range r.order {
			if !yield(k) {
				return
			}
		}
	}
}

// Len returns the number of materials in the registry.
func (r *Registry) Len() int {
	return len(r.order)
}
