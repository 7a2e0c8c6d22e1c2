// Released under an MIT license. See LICENSE.

// Package reader connects the frac lexer and parser.
package reader

import (
	"strings"

	"github.com/michaelmacinnis/frac/internal/common/struct/node"
	"github.com/michaelmacinnis/frac/internal/reader/lexer"
	"github.com/michaelmacinnis/frac/internal/reader/parser"
)

// T (reader) encapsulates the frac lexer and parser.
type T struct {
	p *parser.T
	s *lexer.T
	v []node.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	r := &T{
		s: lexer.New(name),
	}

	r.p = parser.New(func(n node.T) {
		r.v = append(r.v, n)
	}, r.s.Token)

	return r
}

// Scan reads the line and returns the statements parsed from it.
// If scan encounters an error, the rest of the line is discarded and
// the statements before the error are returned along with it.
func (r *reader) Scan(line string) ([]node.T, error) {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	r.s.Scan(line)

	err := r.p.Parse()
	if err != nil {
		for r.s.Token() != nil { //nolint:revive
			// Discard the rest of the line.
		}
	}

	v := r.v
	r.v = nil

	return v, err
}
