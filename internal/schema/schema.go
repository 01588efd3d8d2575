// Package schema defines the HCL shapes of a material document. These
// structs mirror the document syntax one-to-one and are translated into
// the format-agnostic config model by the hcl loader.
package schema

import "github.com/hashicorp/hcl/v2"

// Properties is the free-form scalar properties block within a material.
// Attribute names are property names, so the body is decoded manually.
type Properties struct {
	Body hcl.Body `hcl:",remain"`
}

// Strengths is the packed strength block used by steel entries: three
// parallel arrays under one block, as the standards publish them. The
// loader unpacks it into separate yield and tensile property tables.
type Strengths struct {
	Thicknesses []float64 `hcl:"thicknesses"`
	Yield       []float64 `hcl:"yield"`
	Ultimate    []float64 `hcl:"ultimate"`
}

// Table is an explicitly named thickness-banded property, for properties
// beyond the packed yield/ultimate pair.
type Table struct {
	Property    string    `hcl:"property,label"`
	Thicknesses []float64 `hcl:"thicknesses"`
	Values      []float64 `hcl:"values"`
}

// Material represents a `material "key" { ... }` block.
type Material struct {
	Key        string      `hcl:"key,label"`
	Type       string      `hcl:"type"`
	Name       string      `hcl:"name"`
	Standard   string      `hcl:"standard"`
	Properties *Properties `hcl:"properties,block"`
	Strengths  *Strengths  `hcl:"strengths,block"`
	Tables     []*Table    `hcl:"table,block"`
}

// Document represents the top-level structure of one material document file.
type Document struct {
	Materials []*Material `hcl:"material,block"`
	Body      hcl.Body    `hcl:",remain"`
}
