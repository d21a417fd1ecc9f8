// Package errors provides the structured error type used across fixmap.
// It implements machine-readable error codes so tests and tooling can
// distinguish a missing key from a protocol violation without parsing
// error text.
package errors
