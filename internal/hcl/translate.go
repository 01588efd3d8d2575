package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/matprops/internal/config"
	"github.com/vk/matprops/internal/schema"
)

// Property names produced when unpacking the packed `strengths` block.
// The encoding packs thickness, yield and ultimate series as three
// parallel arrays; the agnostic model wants one named table per property.
const (
	yieldStrengthProperty   = "yield_strength"
	tensileStrengthProperty = "tensile_strength"
)

// translateMaterial converts one decoded material block into the
// format-agnostic row model, splitting the packed strengths encoding into
// named banded properties.
func (l *Loader) translateMaterial(mat *schema.Material) (config.Row, error) {
	row := config.Row{
		Key:      mat.Key,
		Type:     mat.Type,
		Name:     mat.Name,
		Standard: mat.Standard,
	}

	if mat.Properties != nil {
		scalars, err := decodeScalarAttributes(mat.Properties)
		if err != nil {
			return config.Row{}, fmt.Errorf("material %q: %w", mat.Key, err)
		}
		row.Scalars = scalars
	}

	if mat.Strengths != nil {
		row.Banded = append(row.Banded,
			config.BandedProperty{
				Name:       yieldStrengthProperty,
				Thresholds: mat.Strengths.Thicknesses,
				Values:     mat.Strengths.Yield,
			},
			config.BandedProperty{
				Name:       tensileStrengthProperty,
				Thresholds: mat.Strengths.Thicknesses,
				Values:     mat.Strengths.Ultimate,
			},
		)
	}

	for _, tbl := range mat.Tables {
		row.Banded = append(row.Banded, config.BandedProperty{
			Name:       tbl.Property,
			Thresholds: tbl.Thicknesses,
			Values:     tbl.Values,
		})
	}

	return row, nil
}

// decodeScalarAttributes reads the free-form properties block, where each
// attribute name is a property name and each value must be a number.
func decodeScalarAttributes(props *schema.Properties) (map[string]float64, error) {
	attrs, diags := props.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid properties block: %s", diags.Error())
	}

	scalars := make(map[string]float64, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("property %q: %s", name, diags.Error())
		}
		val, err := convert.Convert(val, cty.Number)
		if err != nil {
			return nil, fmt.Errorf("property %q: expected a number: %w", name, err)
		}
		f, _ := val.AsBigFloat().Float64()
		scalars[name] = f
	}
	return scalars, nil
}
