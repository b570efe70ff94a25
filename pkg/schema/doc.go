// Package schema validates parsed submission variables against the fixed
// requirements of the two submission files.
//
// The config schema requires seven non-negative integer scalars, three of
// which (r, P, d_a) must be even. The data schema requires a length-4
// numeric vector b and three fixed-shape numeric matrices A (2x1), B (1x4),
// and Wprime (2x4).
//
// Validation is format-only: presence, types, shapes, and parity. Numeric
// correctness of the submitted values is never checked. Booleans are not
// numeric anywhere in this package.
//
// Both validators return an ordered list of human-readable error messages;
// an empty list means the file passes. When required variables are missing,
// only the missing-variable errors are reported and all structural checks
// are skipped.
package schema
