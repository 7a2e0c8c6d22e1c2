package lexer

import (
	"testing"

	"github.com/michaelmacinnis/frac/internal/common/struct/loc"
	"github.com/michaelmacinnis/frac/internal/common/struct/token"
)

func TestArithmetic(t *testing.T) {
	h := setup(t, "Arithmetic")

	h.scan("1 + 2*3\n",
		h.number("1"),
		h.space(1),
		h.literal("+"),
		h.space(1),
		h.number("2"),
		h.literal("*"),
		h.number("3"),
		h.newline(),
		nil,
	)
}

func TestOperators(t *testing.T) {
	h := setup(t, "Operators")

	h.scan("+-*/%^!(),;=\n",
		h.literal("+"),
		h.literal("-"),
		h.literal("*"),
		h.literal("/"),
		h.literal("%"),
		h.literal("^"),
		h.literal("!"),
		h.literal("("),
		h.literal(")"),
		h.literal(","),
		h.literal(";"),
		h.literal("="),
		h.newline(),
		nil,
	)
}

func TestDecimalNumbers(t *testing.T) {
	h := setup(t, "DecimalNumbers")

	h.scan("1.25 .5 7.\n",
		h.number("1.25"),
		h.space(1),
		h.number(".5"),
		h.space(1),
		h.number("7."),
		h.newline(),
		nil,
	)
}

func TestMalformedNumbers(t *testing.T) {
	h := setup(t, "MalformedNumbers")

	h.scan("1.2.3 + . \n",
		h.error(MalformedNumber, 5),
		h.space(1),
		h.literal("+"),
		h.space(1),
		h.error(MalformedNumber, 1),
		h.space(1),
		h.newline(),
		nil,
	)
}

func TestIdentifiers(t *testing.T) {
	h := setup(t, "Identifiers")

	h.scan("x = gcd(a_1, 2 million)\n",
		h.identifier("x"),
		h.space(1),
		h.literal("="),
		h.space(1),
		h.identifier("gcd"),
		h.literal("("),
		h.identifier("a_1"),
		h.literal(","),
		h.space(1),
		h.number("2"),
		h.space(1),
		h.identifier("million"),
		h.literal(")"),
		h.newline(),
		nil,
	)
}

func TestUnexpectedCharacter(t *testing.T) {
	h := setup(t, "UnexpectedCharacter")

	h.scan("1 $ 2\n",
		h.number("1"),
		h.space(1),
		h.error(UnexpectedCharacter, 1),
		h.space(1),
		h.number("2"),
		h.newline(),
		nil,
	)
}

func TestComments(t *testing.T) {
	h := setup(t, "Comments")

	h.scan("1 # one\n2\n",
		h.number("1"),
		h.space(6),
		h.newline(),
		h.number("2"),
		h.newline(),
		nil,
	)
}

func TestMultipleLines(t *testing.T) {
	h := setup(t, "MultipleLines")

	h.scan("1\n\n2\n",
		h.number("1"),
		h.newline(),
		h.newline(),
		h.number("2"),
		h.newline(),
		nil,
	)
}

func TestTokenSpansBuffers(t *testing.T) {
	h := setup(t, "TokenSpansBuffers")

	h.scan("12", nil)

	h.scan("3\n",
		h.number("123"),
		h.newline(),
		nil,
	)
}

type harness struct {
	index  int
	lexer  *T
	source loc.T
	t      *testing.T
}

var skip = token.New(token.Error, "", loc.T{}) //nolint:gochecknoglobals

func setup(t *testing.T, label string) *harness {
	return &harness{
		index: 1,
		lexer: New(label),
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		t: t,
	}
}

func (h *harness) expect(tokens ...*token.T) {
	h.t.Helper()

	for _, e := range tokens {
		if e == skip {
			continue
		}

		a := h.lexer.Token()

		switch {
		case a == e:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case *a != *e:
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) error(msg string, width int) *token.T {
	return h.other(token.Error, msg, width)
}

func (h *harness) identifier(s string) *token.T {
	return h.other(token.Identifier, s, len(s))
}

func (h *harness) literal(s string) *token.T {
	return h.other(token.Class(s[0]), s, len(s))
}

func (h *harness) newline() *token.T {
	t := h.other('\n', "\n", 1)

	h.index = 1
	h.source.Line++

	return t
}

func (h *harness) number(s string) *token.T {
	return h.other(token.Number, s, len(s))
}

func (h *harness) other(id token.Class, s string, width int) *token.T {
	h.source.Char = h.index
	h.index += width

	return token.New(id, s, h.source)
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.t.Helper()

	h.lexer.Scan(s)
	h.expect(tokens...)
}

func (h *harness) space(n int) *token.T {
	h.index += n

	return skip
}
