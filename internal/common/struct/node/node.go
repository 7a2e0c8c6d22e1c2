// Released under an MIT license. See LICENSE.

// Package node defines the expression tree built by the parser and walked
// by the engine.
//
// Every node has a literal form. The literal form is fully parenthesised
// so that parsing it again produces an identical tree.
package node

import (
	"strings"

	"github.com/michaelmacinnis/frac/internal/common/struct/loc"
	"github.com/michaelmacinnis/frac/internal/number/rational"
)

// T (node) is an expression.
type T interface {
	Source() loc.T
	String() string
}

// Assign binds the value of X to Name.
type Assign struct {
	At   loc.T
	Name string
	X    T
}

// Binary is an infix operation: one of + - * / % ^.
type Binary struct {
	At loc.T
	Op rune
	X  T
	Y  T
}

// Call is a call of a builtin function.
type Call struct {
	At   loc.T
	Name string
	Args []T
}

// Identifier is a reference to a variable.
type Identifier struct {
	At   loc.T
	Name string
}

// Number is a numeric literal.
type Number struct {
	At    loc.T
	Text  string
	Value *rational.T
}

// Suffix is a postfix operation: the factorial "!" or a scale word such
// as "million".
type Suffix struct {
	At   loc.T
	Name string
	X    T
}

// Unary is a prefix + or -.
type Unary struct {
	At loc.T
	Op rune
	X  T
}

// Source returns where the assignment starts.
func (n *Assign) Source() loc.T { return n.At }

func (n *Assign) String() string {
	return "(" + n.Name + " = " + n.X.String() + ")"
}

// Source returns the location of the operator.
func (n *Binary) Source() loc.T { return n.At }

func (n *Binary) String() string {
	return "(" + n.X.String() + " " + string(n.Op) + " " + n.Y.String() + ")"
}

// Source returns the location of the function name.
func (n *Call) Source() loc.T { return n.At }

func (n *Call) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}

	return n.Name + "(" + strings.Join(args, ", ") + ")"
}

func (n *Identifier) Source() loc.T { return n.At }

func (n *Identifier) String() string { return n.Name }

func (n *Number) Source() loc.T { return n.At }

func (n *Number) String() string { return n.Text }

// Source returns the location of the suffix.
func (n *Suffix) Source() loc.T { return n.At }

func (n *Suffix) String() string {
	if n.Name == "!" {
		return "(" + n.X.String() + "!)"
	}

	return "(" + n.X.String() + " " + n.Name + ")"
}

func (n *Unary) Source() loc.T { return n.At }

func (n *Unary) String() string {
	return "(" + string(n.Op) + n.X.String() + ")"
}

// A compiler-checked list of types that are nodes. Never called.
func implements() { //nolint:deadcode,unused
	_ = T(&Assign{})
	_ = T(&Binary{})
	_ = T(&Call{})
	_ = T(&Identifier{})
	_ = T(&Number{})
	_ = T(&Suffix{})
	_ = T(&Unary{})
}
