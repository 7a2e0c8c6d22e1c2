// Released under an MIT license. See LICENSE.

// Package commands provides the functions that can be called from frac
// expressions.
package commands

import (
	"sort"

	"github.com/michaelmacinnis/frac/internal/number/rational"
)

// Function is a builtin. It receives evaluated arguments.
type Function func([]*rational.T) (*rational.T, error)

// Functions returns the builtins keyed by name.
func Functions() map[string]Function {
	return map[string]Function{
		"abs":    abs,
		"ceil":   ceil,
		"cmp":    cmp,
		"den":    den,
		"eq":     eq,
		"floor":  floor,
		"gcd":    gcd,
		"inv":    inv,
		"max":    maximum,
		"min":    minimum,
		"num":    num,
		"reduce": reduce,
		"sign":   sign,
	}
}

// Names returns the sorted names of the builtins.
func Names() []string {
	fs := Functions()

	names := make([]string, 0, len(fs))
	for k := range fs {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}
