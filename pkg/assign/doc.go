// Package assign parses submission files written as sequences of
// NAME = LITERAL statements into a map of variable names to Go values.
//
// # Overview
//
// Submission files use a Python-like assignment grammar: each statement
// binds a name to a literal value, where a literal is a number, a string,
// True/False/None, or a possibly nested, possibly multi-line list literal
// of such values. The package parses the whole file structurally first
// (using the Starlark grammar, which accepts this statement form including
// bracketed literals spanning lines), then evaluates each top-level
// single-target assignment's right-hand side as a pure literal.
//
// Anything that is not a pure literal (a name reference, an operator, a
// function call) aborts the parse for the whole file. Top-level statements
// that are not single-target assignments are skipped. Repeated assignments
// to the same name follow last-write-wins semantics.
//
// # Value mapping
//
// Parsed values use plain Go types:
//
//	int    -> int64
//	float  -> float64
//	string -> string
//	True/False -> bool
//	None   -> nil
//	list   -> []any
//	tuple  -> Tuple
//	dict   -> map[string]any
//
// # Errors
//
// All failures are reported as *ParseError with a Kind distinguishing
// unreadable files, unparseable source, and non-literal right-hand sides.
// A parse either yields a complete map or fails as a whole; no partial
// results are returned.
package assign
