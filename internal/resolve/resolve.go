package resolve

import (
	"fmt"

	"github.com/vk/matprops/internal/material"
	"github.com/vk/matprops/internal/registry"
)

// Property resolves one named property of one material. thickness is nil
// for scalar properties and required for banded ones; a mismatch either
// way is a caller logic error and returns *material.InvalidQueryError
// rather than being silently tolerated — a discarded thickness usually
// means the caller queried the wrong property.
//
// Resolution is pure: no caching, no side effects, safe for concurrent use.
func Property(reg *registry.Registry, key, name string, thickness *float64) (float64, error) {
	m, err := reg.Get(key)
	if err != nil {
		return 0, err
	}

	switch {
	case m.HasScalar(name):
		if thickness != nil {
			return 0, &material.InvalidQueryError{
				Reason: fmt.Sprintf("property %q of material %q is scalar; thickness must not be supplied", name, key),
			}
		}
		return m.Scalar(name)

	case m.HasBanded(name):
		if thickness == nil {
			return 0, &material.InvalidQueryError{
				Reason: fmt.Sprintf("property %q of material %q is thickness-banded; thickness is required", name, key),
			}
		}
		return m.Banded(name, *thickness)

	default:
		return 0, &material.UnknownPropertyError{Key: key, Property: name}
	}
}
