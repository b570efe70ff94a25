package schema

import (
	"testing"

	"github.com/peftcheck/peftcheck/pkg/assign"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"int", int64(3), true},
		{"float", 3.5, true},
		{"negative int", int64(-2), true},
		{"zero", int64(0), true},
		{"bool true is not numeric", true, false},
		{"bool false is not numeric", false, false},
		{"string", "3", false},
		{"nil", nil, false},
		{"list", []any{int64(1)}, false},
		{"tuple", assign.Tuple{int64(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNumeric(tt.v); got != tt.want {
				t.Errorf("IsNumeric(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestCheckVector(t *testing.T) {
	tests := []struct {
		name    string
		v       any
		length  int
		wantOK  bool
		wantMsg string
	}{
		{
			name:   "valid vector",
			v:      []any{1.0, int64(2), 3.5, int64(-4)},
			length: 4,
			wantOK: true,
		},
		{
			name:    "wrong length",
			v:       []any{int64(1), int64(2), int64(3)},
			length:  4,
			wantOK:  false,
			wantMsg: "Expected a list of length 4.",
		},
		{
			name:    "not a list",
			v:       int64(7),
			length:  4,
			wantOK:  false,
			wantMsg: "Expected a list of length 4.",
		},
		{
			name:    "tuple is not a list",
			v:       assign.Tuple{int64(1), int64(2), int64(3), int64(4)},
			length:  4,
			wantOK:  false,
			wantMsg: "Expected a list of length 4.",
		},
		{
			name:    "non-numeric element names its position",
			v:       []any{int64(1), "x", int64(3), int64(4)},
			length:  4,
			wantOK:  false,
			wantMsg: "Element at position 1 is not numeric: 'x'",
		},
		{
			name:    "boolean element is non-numeric",
			v:       []any{int64(1), int64(2), true, int64(4)},
			length:  4,
			wantOK:  false,
			wantMsg: "Element at position 2 is not numeric: True",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := CheckVector(tt.v, tt.length)
			if ok != tt.wantOK {
				t.Errorf("CheckVector ok = %v, want %v", ok, tt.wantOK)
			}
			if msg != tt.wantMsg {
				t.Errorf("CheckVector msg = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestCheckMatrix(t *testing.T) {
	tests := []struct {
		name    string
		v       any
		rows    int
		cols    int
		wantOK  bool
		wantMsg string
	}{
		{
			name:   "valid 2x4 matrix",
			v:      []any{[]any{int64(1), int64(2), int64(3), int64(4)}, []any{int64(5), int64(6), int64(7), int64(8)}},
			rows:   2,
			cols:   4,
			wantOK: true,
		},
		{
			name:   "valid 2x1 matrix",
			v:      []any{[]any{0.1}, []any{0.2}},
			rows:   2,
			cols:   1,
			wantOK: true,
		},
		{
			name:    "wrong row count",
			v:       []any{[]any{int64(1)}},
			rows:    2,
			cols:    1,
			wantOK:  false,
			wantMsg: "Expected a list with 2 rows.",
		},
		{
			name:    "not a list at all",
			v:       "matrix",
			rows:    2,
			cols:    1,
			wantOK:  false,
			wantMsg: "Expected a list with 2 rows.",
		},
		{
			name:    "row with wrong width",
			v:       []any{[]any{int64(1), int64(2)}, []any{int64(3), int64(4)}},
			rows:    2,
			cols:    1,
			wantOK:  false,
			wantMsg: "Row 0 must be a list with 1 elements.",
		},
		{
			name:    "row that is not a list",
			v:       []any{int64(1), []any{int64(2)}},
			rows:    2,
			cols:    1,
			wantOK:  false,
			wantMsg: "Row 0 must be a list with 1 elements.",
		},
		{
			name:    "non-numeric element names row and column",
			v:       []any{[]any{int64(1), int64(2), int64(3), int64(4)}, []any{int64(5), true, int64(7), int64(8)}},
			rows:    2,
			cols:    4,
			wantOK:  false,
			wantMsg: "Non-numeric at (1,1): True",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := CheckMatrix(tt.v, tt.rows, tt.cols)
			if ok != tt.wantOK {
				t.Errorf("CheckMatrix ok = %v, want %v", ok, tt.wantOK)
			}
			if msg != tt.wantMsg {
				t.Errorf("CheckMatrix msg = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}
