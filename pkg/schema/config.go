package schema

import (
	"fmt"

	"github.com/peftcheck/peftcheck/pkg/assign"
)

// configRequired lists the variables the config file must define, in the
// order missing-variable errors are reported.
var configRequired = []string{
	"r",
	"num_trainable_lora",
	"P",
	"num_trainable_soft",
	"d_a",
	"num_trainable_adapters",
	"num_trainable_ia3",
}

// configScalarOrder is the order the integer constraint is checked.
var configScalarOrder = []string{
	"r",
	"P",
	"d_a",
	"num_trainable_lora",
	"num_trainable_soft",
	"num_trainable_adapters",
	"num_trainable_ia3",
}

// configEven lists the variables that must additionally be even.
var configEven = []string{"r", "P", "d_a"}

// ValidateConfig checks the config file's variables: all seven required
// names present, each a non-negative integer, and r, P, d_a even. Missing
// variables short-circuit all further checks. The returned messages are in
// check order; an empty slice means the file passes.
func ValidateConfig(vars assign.Assignments) []string {
	errs := []string{}

	for _, name := range configRequired {
		if _, ok := vars[name]; !ok {
			errs = append(errs, fmt.Sprintf("Missing variable: %s", name))
		}
	}
	if len(errs) > 0 {
		return errs
	}

	for _, name := range configScalarOrder {
		v := vars[name]
		n, ok := v.(int64)
		if !ok {
			errs = append(errs, fmt.Sprintf("%s must be an integer (got %s).", name, typeName(v)))
		} else if n < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0 (got %d).", name, n))
		}
	}

	// Sign and parity are independent: an even negative value gets only
	// the sign error, an odd non-negative value only the parity error.
	for _, name := range configEven {
		if n, ok := vars[name].(int64); ok && n%2 != 0 {
			errs = append(errs, fmt.Sprintf("%s must be even (got %d).", name, n))
		}
	}

	return errs
}
