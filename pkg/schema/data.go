package schema

import (
	"fmt"

	"github.com/peftcheck/peftcheck/pkg/assign"
)

// dataRequired lists the variables the data file must define.
var dataRequired = []string{"b", "A", "B", "Wprime"}

// ValidateData checks the data file's variables: b is a length-4 numeric
// vector, A a 2x1 matrix, B a 1x4 matrix, and Wprime a 2x4 matrix. Missing
// variables short-circuit the shape checks; otherwise all four shape checks
// run regardless of earlier failures so every violation is reported in one
// pass.
func ValidateData(vars assign.Assignments) []string {
	errs := []string{}

	for _, name := range dataRequired {
		if _, ok := vars[name]; !ok {
			errs = append(errs, fmt.Sprintf("Missing variable: %s", name))
		}
	}
	if len(errs) > 0 {
		return errs
	}

	if ok, msg := CheckVector(vars["b"], 4); !ok {
		errs = append(errs, fmt.Sprintf("b must be a numeric list of length 4: %s", msg))
	}
	if ok, msg := CheckMatrix(vars["A"], 2, 1); !ok {
		errs = append(errs, fmt.Sprintf("A must be a 2x1 numeric matrix: %s", msg))
	}
	if ok, msg := CheckMatrix(vars["B"], 1, 4); !ok {
		errs = append(errs, fmt.Sprintf("B must be a 1x4 numeric matrix: %s", msg))
	}
	if ok, msg := CheckMatrix(vars["Wprime"], 2, 4); !ok {
		errs = append(errs, fmt.Sprintf("Wprime must be a 2x4 numeric matrix: %s", msg))
	}

	return errs
}
