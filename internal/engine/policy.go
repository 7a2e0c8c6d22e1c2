// Released under an MIT license. See LICENSE.

package engine

import (
	"errors"
	"fmt"
)

// ErrPolicy is returned when a reduction policy name is not recognised.
var ErrPolicy = errors.New("unknown reduction policy")

// Policy controls when results are reduced to lowest terms.
type Policy int

// Reduction policies.
const (
	Final  Policy = iota // Reduce the result of each statement.
	Always               // Reduce every intermediate result.
	Never                // Never reduce unless asked.
)

// ParsePolicy converts "always", "final", or "never" to a Policy.
// The empty string is Final.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "final":
		return Final, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	}

	return Final, fmt.Errorf("%w: %q", ErrPolicy, s)
}

// String returns the name of the policy.
func (p Policy) String() string {
	switch p {
	case Always:
		return "always"
	case Never:
		return "never"
	default:
		return "final"
	}
}
