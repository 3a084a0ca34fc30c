// Package jsonschema provides utilities for generating and representing JSON Schema
// structures from Go types using reflection.
//
// It supports structs, primitives, slices, maps, and pointers, which covers the
// shapes that tool parameter and result types take in this module. Field
// schemas are customized through `jsonschema` struct tags (description,
// required, enum, default).
//
// The main entry point is [GenerateJSONSchema], which derives a [Schema] from any
// Go type T without requiring a runtime value.
package jsonschema
