// Released under an MIT license. See LICENSE.

// Package parser provides a precedence climbing parser for frac expressions.
//
// Each infix operator has a left and a right binding power. An operator
// whose left power is lower than its right power is left associative;
// one whose left power is higher is right associative.
package parser

import (
	"fmt"

	"github.com/michaelmacinnis/frac/internal/common/struct/loc"
	"github.com/michaelmacinnis/frac/internal/common/struct/node"
	"github.com/michaelmacinnis/frac/internal/common/struct/token"
	"github.com/michaelmacinnis/frac/internal/number/rational"
)

// Binding powers.
const (
	prefixPower = 6
	suffixPower = 8
)

// Error is a syntax error.
type Error struct {
	Source loc.T
	Msg    string
}

func (e *Error) Error() string {
	return e.Source.String() + ": " + e.Msg
}

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	emit  func(node.T)    // Function to call to emit a parsed statement.
	item  func() *token.T // Function to call to get another token.
	last  loc.T           // Location of the last token consumed.
	token *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of expressions.
func New(emit func(node.T), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits statements until there are no more
// tokens. It stops at the first syntax error.
func (p *T) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(*Error)
		if !ok {
			panic(r)
		}

		p.resync()

		err = e
	}()

	p.ahead, p.token = 0, nil

	for t := p.peek(); t != nil; t = p.peek() {
		if t.Is('\n', ';') {
			p.consume()

			continue
		}

		n := p.expression(0)

		if t := p.peek(); t != nil && !t.Is('\n', ';') {
			p.fail(t, unexpected(t))
		}

		p.emit(n)
	}

	return nil
}

// Binding powers for infix operators.
func infix(t *token.T) (left, right int, ok bool) {
	switch {
	case t.Is('='):
		return 1, 0, true
	case t.Is('+', '-'):
		return 2, 3, true //nolint:gomnd
	case t.Is('*', '/', '%'):
		return 4, 5, true //nolint:gomnd
	case t.Is('^'):
		return 7, 6, true //nolint:gomnd
	}

	return 0, 0, false
}

func suffix(t *token.T) bool {
	if t.Is('!') {
		return true
	}

	if !t.Is(token.Identifier) {
		return false
	}

	switch t.Value() {
	case "thousand", "million", "billion", "trillion":
		return true
	}

	return false
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil
	p.last = t.Source()

	return t
}

func (p *T) expect(c token.Class) *token.T {
	t := p.peek()
	if t.Is(c) {
		return p.consume()
	}

	p.fail(t, "expected "+c.String()+" got "+describe(t))

	return nil
}

func (p *T) fail(t *token.T, msg string) {
	source := p.last
	if t != nil {
		source = t.Source()
	}

	panic(&Error{Source: source, Msg: msg})
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// resync skips the rest of the statement that caused an error.
func (p *T) resync() {
	for t := p.peek(); t != nil && !t.Is('\n', ';'); t = p.peek() {
		p.consume()
	}
}

// T state functions.

// <expression> ::= <prefix> (<infix> <expression> | <suffix>)*
func (p *T) expression(bp int) node.T {
	lhs := p.prefix()

	for {
		t := p.peek()

		if suffix(t) {
			if suffixPower < bp {
				break
			}

			p.consume()

			lhs = &node.Suffix{At: t.Source(), Name: t.Value(), X: lhs}

			continue
		}

		left, right, ok := infix(t)
		if !ok || left < bp {
			break
		}

		p.consume()

		rhs := p.expression(right)

		if t.Is('=') {
			id, ok := lhs.(*node.Identifier)
			if !ok {
				p.fail(t, "cannot assign to "+lhs.String())
			}

			lhs = &node.Assign{At: id.At, Name: id.Name, X: rhs}

			continue
		}

		lhs = &node.Binary{At: t.Source(), Op: rune(t.Class()), X: lhs, Y: rhs}
	}

	return lhs
}

// <prefix> ::= ('+' | '-') <expression> | <primary>
func (p *T) prefix() node.T {
	t := p.peek()
	if t.Is('+', '-') {
		p.consume()

		return &node.Unary{At: t.Source(), Op: rune(t.Class()), X: p.expression(prefixPower)}
	}

	return p.primary()
}

// <primary> ::= Number | Identifier | <call> | '(' <expression> ')'
func (p *T) primary() node.T {
	t := p.peek()

	switch {
	case t.Is(token.Number):
		p.consume()

		v, err := rational.Parse(t.Value())
		if err != nil {
			p.fail(t, "malformed number")
		}

		return &node.Number{At: t.Source(), Text: t.Value(), Value: v}

	case t.Is(token.Identifier):
		p.consume()

		if p.peek().Is('(') {
			return p.call(t)
		}

		return &node.Identifier{At: t.Source(), Name: t.Value()}

	case t.Is('('):
		p.consume()

		n := p.expression(0)

		p.expect(')')

		return n
	}

	p.fail(t, unexpected(t))

	return nil
}

// <call> ::= Identifier '(' (<expression> (',' <expression>)*)? ')'
func (p *T) call(name *token.T) node.T {
	p.expect('(')

	c := &node.Call{At: name.Source(), Name: name.Value()}

	if p.peek().Is(')') {
		p.consume()

		return c
	}

	for {
		c.Args = append(c.Args, p.expression(0))

		if !p.peek().Is(',') {
			break
		}

		p.consume()
	}

	p.expect(')')

	return c
}

func describe(t *token.T) string {
	switch {
	case t == nil:
		return "end of input"
	case t.Is('\n'):
		return "end of line"
	}

	return fmt.Sprintf("'%s'", t.Value())
}

func unexpected(t *token.T) string {
	if t.Is(token.Error) {
		return t.Value()
	}

	return "unexpected " + describe(t)
}
