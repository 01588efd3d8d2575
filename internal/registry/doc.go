// Package registry provides the keyed collection of material records.
//
// A Registry is built exactly once from ingested rows and is read-only from
// then on: no mutation API exists, so a built registry can be shared across
// concurrent readers without coordination. Construction is all-or-nothing —
// if any row fails validation the build fails with an aggregate error
// naming every offending key, and no partial registry is ever observable.
package registry
