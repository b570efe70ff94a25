package assign

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrKind classifies a parse failure.
type ErrKind string

const (
	// ErrKindFileAccess indicates the file could not be opened or read.
	ErrKindFileAccess ErrKind = "file_access"

	// ErrKindSyntax indicates the source text is not parseable as a
	// statement sequence at all.
	ErrKindSyntax ErrKind = "syntax"

	// ErrKindLiteral indicates a top-level assignment's right-hand side
	// is not a pure literal.
	ErrKindLiteral ErrKind = "literal"
)

// ParseError is a classified parse failure. It is always fatal for the
// file being parsed: a ParseError means no assignments were produced.
type ParseError struct {
	// Kind is the failure classification.
	Kind ErrKind

	// Path is the file being parsed.
	Path string

	// Var is the variable whose value could not be evaluated.
	// Only set for ErrKindLiteral.
	Var string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface. The message is the user-facing
// diagnostic for the file.
func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrKindFileAccess:
		if errors.Is(e.Err, fs.ErrNotExist) {
			return fmt.Sprintf("File not found: %s", e.Path)
		}
		return fmt.Sprintf("Error opening %s: %v", e.Path, e.Err)
	case ErrKindSyntax:
		return fmt.Sprintf("Could not parse file: %v", e.Err)
	case ErrKindLiteral:
		return fmt.Sprintf("Could not parse value for %s: %v", e.Var, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for error chain inspection.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements error equality checking for errors.Is.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// IsFileAccess returns true if the error is a file access failure.
func IsFileAccess(err error) bool {
	return hasKind(err, ErrKindFileAccess)
}

// IsSyntax returns true if the error is a whole-file syntax failure.
func IsSyntax(err error) bool {
	return hasKind(err, ErrKindSyntax)
}

// IsLiteral returns true if the error is a non-literal right-hand side.
func IsLiteral(err error) bool {
	return hasKind(err, ErrKindLiteral)
}

func hasKind(err error, kind ErrKind) bool {
	var e *ParseError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
