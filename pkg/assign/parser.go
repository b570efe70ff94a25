package assign

import (
	"fmt"
	"os"

	"go.starlark.net/syntax"
)

// Assignments maps variable names to their parsed literal values.
// It is produced once per file and never mutated afterwards.
type Assignments map[string]any

// Tuple is a parsed tuple literal. It is kept distinct from []any so that
// shape checks expecting a list do not accept tuples.
type Tuple []any

// ParseFile reads the file at path and returns its assignment map.
// Failures are reported as *ParseError; either the whole file parses or
// no assignments are returned.
func ParseFile(path string) (Assignments, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Kind: ErrKindFileAccess, Path: path, Err: err}
	}
	return parse(path, src)
}

// Parse parses in-memory source text. The filename is used only for
// diagnostics.
func Parse(filename string, src []byte) (Assignments, error) {
	return parse(filename, src)
}

func parse(path string, src []byte) (Assignments, error) {
	file, err := syntax.Parse(path, src, 0)
	if err != nil {
		return nil, &ParseError{Kind: ErrKindSyntax, Path: path, Err: err}
	}

	out := make(Assignments)
	for _, stmt := range file.Stmts {
		// Only plain `name = literal` statements bind variables.
		// Everything else (def, if, for, expression statements,
		// augmented assignments, tuple/attribute targets) is skipped.
		as, ok := stmt.(*syntax.AssignStmt)
		if !ok || as.Op != syntax.EQ {
			continue
		}
		target, ok := as.LHS.(*syntax.Ident)
		if !ok {
			continue
		}

		val, err := evalLiteral(as.RHS)
		if err != nil {
			return nil, &ParseError{
				Kind: ErrKindLiteral,
				Path: path,
				Var:  target.Name,
				Err:  err,
			}
		}
		out[target.Name] = val
	}
	return out, nil
}

// evalLiteral evaluates an expression as a pure literal. Name references,
// operators between values, calls, and comprehensions are rejected.
func evalLiteral(expr syntax.Expr) (any, error) {
	switch e := expr.(type) {
	case *syntax.Literal:
		switch e.Token {
		case syntax.INT:
			if v, ok := e.Value.(int64); ok {
				return v, nil
			}
			return nil, fmt.Errorf("integer %s does not fit in 64 bits", e.Raw)
		case syntax.FLOAT:
			return e.Value.(float64), nil
		case syntax.STRING:
			return e.Value.(string), nil
		}
		return nil, fmt.Errorf("unsupported literal %s", e.Raw)

	case *syntax.Ident:
		// True, False, and None are identifiers in the grammar but
		// literals in this mini-language.
		switch e.Name {
		case "True":
			return true, nil
		case "False":
			return false, nil
		case "None":
			return nil, nil
		}
		return nil, fmt.Errorf("name %q is not a literal", e.Name)

	case *syntax.UnaryExpr:
		if e.Op != syntax.MINUS && e.Op != syntax.PLUS {
			return nil, fmt.Errorf("operator %s is not allowed in a literal", e.Op)
		}
		v, err := evalLiteral(e.X)
		if err != nil {
			return nil, err
		}
		switch n := v.(type) {
		case int64:
			if e.Op == syntax.MINUS {
				return -n, nil
			}
			return n, nil
		case float64:
			if e.Op == syntax.MINUS {
				return -n, nil
			}
			return n, nil
		}
		return nil, fmt.Errorf("unary %s applied to a non-number", e.Op)

	case *syntax.ParenExpr:
		return evalLiteral(e.X)

	case *syntax.ListExpr:
		list := make([]any, len(e.List))
		for i, elem := range e.List {
			v, err := evalLiteral(elem)
			if err != nil {
				return nil, err
			}
			list[i] = v
		}
		return list, nil

	case *syntax.TupleExpr:
		tuple := make(Tuple, len(e.List))
		for i, elem := range e.List {
			v, err := evalLiteral(elem)
			if err != nil {
				return nil, err
			}
			tuple[i] = v
		}
		return tuple, nil

	case *syntax.DictExpr:
		dict := make(map[string]any, len(e.List))
		for _, entry := range e.List {
			de, ok := entry.(*syntax.DictEntry)
			if !ok {
				return nil, fmt.Errorf("malformed dict literal")
			}
			k, err := evalLiteral(de.Key)
			if err != nil {
				return nil, err
			}
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("dict key must be a string literal")
			}
			v, err := evalLiteral(de.Value)
			if err != nil {
				return nil, err
			}
			dict[key] = v
		}
		return dict, nil

	case *syntax.BinaryExpr:
		return nil, fmt.Errorf("expressions are not allowed, only literal values")

	case *syntax.CallExpr:
		return nil, fmt.Errorf("function calls are not allowed, only literal values")
	}

	return nil, fmt.Errorf("value is not a literal")
}
