// Package resolve is the query entry point for calculation clients: it
// looks a material up in a registry and resolves one named property,
// dispatching between scalar and thickness-banded kinds with strict
// thickness-presence checking.
package resolve
