package schema

import (
	"fmt"
	"strconv"

	"github.com/peftcheck/peftcheck/pkg/assign"
)

// IsNumeric reports whether v is an integer or floating-point value.
// Booleans are not numeric, even where a source language would let them
// stand in for 0 and 1.
func IsNumeric(v any) bool {
	switch v.(type) {
	case int64, float64:
		return true
	}
	return false
}

// CheckVector reports whether v is a list of exactly length numeric
// elements. On failure the message names either the shape violation or the
// first non-numeric element by zero-based position.
func CheckVector(v any, length int) (bool, string) {
	list, ok := v.([]any)
	if !ok || len(list) != length {
		return false, fmt.Sprintf("Expected a list of length %d.", length)
	}
	for i, el := range list {
		if !IsNumeric(el) {
			return false, fmt.Sprintf("Element at position %d is not numeric: %s", i, repr(el))
		}
	}
	return true, ""
}

// CheckMatrix reports whether v is a list of exactly rows lists, each with
// exactly cols numeric elements. On failure the message names the first
// offending row, and the column as well for element-level failures.
func CheckMatrix(v any, rows, cols int) (bool, string) {
	mat, ok := v.([]any)
	if !ok || len(mat) != rows {
		return false, fmt.Sprintf("Expected a list with %d rows.", rows)
	}
	for r, rowVal := range mat {
		row, ok := rowVal.([]any)
		if !ok || len(row) != cols {
			return false, fmt.Sprintf("Row %d must be a list with %d elements.", r, cols)
		}
		for c, el := range row {
			if !IsNumeric(el) {
				return false, fmt.Sprintf("Non-numeric at (%d,%d): %s", r, c, repr(el))
			}
		}
	}
	return true, ""
}

// repr renders a value the way it would appear in the submission file.
func repr(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case bool:
		if x {
			return "True"
		}
		return "False"
	case string:
		return "'" + x + "'"
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// typeName names a parsed value's type in the submission language's terms.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "NoneType"
	case bool:
		return "bool"
	case int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "str"
	case []any:
		return "list"
	case assign.Tuple:
		return "tuple"
	case map[string]any:
		return "dict"
	}
	return fmt.Sprintf("%T", v)
}
