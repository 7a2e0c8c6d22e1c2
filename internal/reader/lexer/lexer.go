// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for frac expressions.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/michaelmacinnis/frac/internal/common/struct/loc"
	"github.com/michaelmacinnis/frac/internal/common/struct/token"
)

// Messages carried by Error tokens.
const (
	MalformedNumber     = "malformed number"
	UnexpectedCharacter = "unexpected character"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	state action   // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, norm.NFC.String(text))
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
// A token that is cut off by the end of the buffer is returned once
// enough text has been passed to Scan.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		// Because we update lines here, if we emit a newline
		// it will be reported as being part of the next line.
		// We fix this when emitting the newline.
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.source
	if c == '\n' {
		// Report newline as part of previous line.
		source.Line--
	}

	l.tokens <- token.New(c, v, source)
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	} else {
		l.source.Char = 1
		l.runes = 1
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16) //nolint:gomnd
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// T states.

func scanIdentifier(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case isLetter(r) || unicode.IsDigit(rune(r)):
			l.accept(r, w)
		default:
			l.emit(token.Identifier, l.Text())
			return skipWhitespace
		}
	}
}

func scanNumber(l *T) action {
	return scanDigits(l, strings.Contains(l.Text(), "."))
}

func scanDigits(l *T, dot bool) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case r >= '0' && r <= '9':
			l.accept(r, w)
		case r == '.' && !dot:
			l.accept(r, w)
			dot = true
		case r == '.':
			return skipMalformed
		default:
			if l.Text() == "." {
				l.emit(token.Error, MalformedNumber)
			} else {
				l.emit(token.Number, l.Text())
			}

			return skipWhitespace
		}
	}
}

// skipMalformed consumes the rest of a number with too many decimal points.
func skipMalformed(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case r == '.' || (r >= '0' && r <= '9'):
			l.accept(r, w)
		default:
			l.emit(token.Error, MalformedNumber)
			return skipWhitespace
		}
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n':
			l.skip()
			return skipWhitespace
		default:
			l.accept(r, w)
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r := l.next()

		switch {
		case r == eof:
			return nil
		case r == '\n':
			l.emit(r, l.Text())
			return skipWhitespace
		case r == ' ' || r == '\t' || r == '\r':
			l.skip()
			continue
		case r == '#':
			return skipComment
		case r == '.' || (r >= '0' && r <= '9'):
			return scanNumber
		case isLetter(r):
			return scanIdentifier
		}

		switch r {
		case '!', '%', '(', ')', '*', '+', ',', '-', '/', ';', '=', '^':
			l.emit(r, l.Text())
		default:
			l.emit(token.Error, UnexpectedCharacter)
		}

		return skipWhitespace
	}
}

func isLetter(r token.Class) bool {
	return r == '_' || unicode.IsLetter(rune(r))
}
