// Package parse provides utilities for converting raw tool-call argument
// strings into typed Go values. Hosts occasionally hand over arguments that
// are not strictly valid JSON, so complex types get an automatic JSON repair
// pass before the conversion fails with a clear error.
//
// The main entry point is the generic [ParseStringAs] function, which handles
// both primitive types (string, bool, int, float) and complex types (structs,
// maps, slices) in a single, uniform API.
package parse
