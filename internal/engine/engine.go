// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed frac expressions.
package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/michaelmacinnis/frac/internal/common/struct/node"
	"github.com/michaelmacinnis/frac/internal/engine/commands"
	"github.com/michaelmacinnis/frac/internal/number/rational"
)

// Errors returned by the engine. Arithmetic errors are those of the
// rational package.
var (
	ErrUndefined = errors.New("undefined variable")
	ErrUnknown   = errors.New("unknown function")
)

// Answer is the variable that holds the result of the last statement.
const Answer = "ans"

// Multipliers for the scale suffixes.
var scale = map[string]int64{ //nolint:gochecknoglobals
	"thousand": 1e3,
	"million":  1e6,
	"billion":  1e9,
	"trillion": 1e12,
}

// Option configures a T.
type Option func(*T)

// WithLogger sets the logger used to trace evaluation.
func WithLogger(l zerolog.Logger) Option {
	return func(e *T) {
		e.log = l
	}
}

// WithPolicy sets when results are reduced to lowest terms.
func WithPolicy(p Policy) Option {
	return func(e *T) {
		e.policy = p
	}
}

// T (engine) evaluates expressions and holds the variables they assign.
// It is not safe for concurrent use.
type T struct {
	functions map[string]commands.Function
	log       zerolog.Logger
	policy    Policy
	variables map[string]*rational.T
}

type engine = T

// New creates a new T.
func New(options ...Option) *T {
	e := &T{
		functions: commands.Functions(),
		log:       zerolog.Nop(),
		policy:    Final,
		variables: map[string]*rational.T{},
	}

	for _, o := range options {
		o(e)
	}

	return e
}

// Evaluate evaluates the statement n. On success the result is stored
// in Answer.
func (e *engine) Evaluate(n node.T) (*rational.T, error) {
	v, err := e.eval(n)
	if err != nil {
		e.log.Debug().Str("statement", n.String()).Err(err).Msg("failed")

		return nil, err
	}

	v = e.settle(v)

	e.variables[Answer] = v

	e.log.Debug().Str("statement", n.String()).Stringer("result", v).Msg("evaluated")

	return v, nil
}

func (e *engine) Get(name string) (*rational.T, bool) {
	v, ok := e.variables[name]

	return v, ok
}

// Names returns the sorted names of all variables and builtins.
func (e *engine) Names() []string {
	names := e.Variables()

	for k := range e.functions {
		if _, ok := e.variables[k]; !ok {
			names = append(names, k)
		}
	}

	sort.Strings(names)

	return names
}

func (e *engine) Set(name string, v *rational.T) {
	e.variables[name] = v
}

// Variables returns the sorted names of all variables.
func (e *engine) Variables() []string {
	names := make([]string, 0, len(e.variables))
	for k := range e.variables {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

func (e *engine) eval(n node.T) (*rational.T, error) {
	var (
		v   *rational.T
		err error
	)

	switch n := n.(type) {
	case *node.Assign:
		v, err = e.assign(n)
	case *node.Binary:
		v, err = e.binary(n)
	case *node.Call:
		v, err = e.call(n)
	case *node.Identifier:
		v, err = e.identifier(n)
	case *node.Number:
		v = n.Value
	case *node.Suffix:
		v, err = e.suffix(n)
	case *node.Unary:
		v, err = e.unary(n)
	default:
		panic(fmt.Sprintf("unexpected node %T", n))
	}

	if err != nil {
		return nil, err
	}

	if e.policy == Always {
		v = v.Reduce()
	}

	return v, nil
}

func (e *engine) assign(n *node.Assign) (*rational.T, error) {
	v, err := e.eval(n.X)
	if err != nil {
		return nil, err
	}

	v = e.settle(v)

	e.variables[n.Name] = v

	return v, nil
}

func (e *engine) binary(n *node.Binary) (*rational.T, error) {
	x, err := e.eval(n.X)
	if err != nil {
		return nil, err
	}

	y, err := e.eval(n.Y)
	if err != nil {
		return nil, err
	}

	var v *rational.T

	switch n.Op {
	case '+':
		return x.Add(y), nil
	case '-':
		return x.Sub(y), nil
	case '*':
		return x.Mul(y), nil
	case '/':
		v, err = x.Div(y)
	case '%':
		v, err = x.Mod(y)
	case '^':
		var i int64

		i, err = y.Int64()
		if err == nil {
			v, err = x.Pow(i)
		}
	default:
		panic("unexpected operator " + string(n.Op))
	}

	if err != nil {
		return nil, fail(n, err)
	}

	return v, nil
}

func (e *engine) call(n *node.Call) (*rational.T, error) {
	f, ok := e.functions[n.Name]
	if !ok {
		return nil, fail(n, fmt.Errorf("%w: %s", ErrUnknown, n.Name))
	}

	args := make([]*rational.T, len(n.Args))

	for i, a := range n.Args {
		v, err := e.eval(a)
		if err != nil {
			return nil, err
		}

		args[i] = v
	}

	v, err := f(args)
	if err != nil {
		return nil, fail(n, fmt.Errorf("%s: %w", n.Name, err))
	}

	return v, nil
}

func (e *engine) identifier(n *node.Identifier) (*rational.T, error) {
	v, ok := e.variables[n.Name]
	if !ok {
		return nil, fail(n, fmt.Errorf("%w: %s", ErrUndefined, n.Name))
	}

	return v, nil
}

func (e *engine) settle(v *rational.T) *rational.T {
	if e.policy == Never {
		return v
	}

	return v.Reduce()
}

func (e *engine) suffix(n *node.Suffix) (*rational.T, error) {
	x, err := e.eval(n.X)
	if err != nil {
		return nil, err
	}

	if n.Name == "!" {
		v, err := x.Factorial()
		if err != nil {
			return nil, fail(n, err)
		}

		return v, nil
	}

	m, ok := scale[n.Name]
	if !ok {
		panic("unexpected suffix " + n.Name)
	}

	return x.Mul(rational.Int(m)), nil
}

func (e *engine) unary(n *node.Unary) (*rational.T, error) {
	x, err := e.eval(n.X)
	if err != nil {
		return nil, err
	}

	if n.Op == '-' {
		return x.Neg(), nil
	}

	return x, nil
}

// fail prefixes err with the location of n.
func fail(n node.T, err error) error {
	at := n.Source()

	return fmt.Errorf("%s: %w", at.String(), err)
}
