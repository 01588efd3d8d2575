// Package hcl implements the config.Loader interface for HCL material
// documents. It owns everything syntax-shaped: file discovery, parsing,
// decoding into the schema structs, and unpacking the packed `strengths`
// encoding into individually named property tables. Structural validation
// of the resulting rows is the registry's job, not the loader's.
package hcl
