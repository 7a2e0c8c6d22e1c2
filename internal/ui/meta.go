// Released under an MIT license. See LICENSE.

package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/frac/internal/engine"
	"github.com/michaelmacinnis/frac/internal/engine/commands"
)

// Errors returned by meta commands.
var (
	ErrNoRegisters = errors.New("registers are not available")
	ErrUnknown     = errors.New("unknown command")
	ErrUsage       = errors.New("usage")
)

const usage = `Statements are separated by ';' or newlines. Assign with '='.
Operators: + - * / %% ^, prefix + -, suffix ! thousand million billion trillion.
Functions: %s.
The last result is in ans.

Commands:
  :help             Display this help.
  :quit             End the session.
  :vars [PATTERN]   List variables whose names match PATTERN.
  :save NAME...     Save variables as registers.
  :load [NAME...]   Load registers as variables. All if no names are given.
  :delete NAME...   Delete registers.
`

//nolint:gochecknoglobals
var meta = map[string]func(*ui, context.Context, []string) (bool, error){
	":delete": (*ui).delete,
	":help":   (*ui).help,
	":load":   (*ui).load,
	":quit":   (*ui).quit,
	":save":   (*ui).save,
	":vars":   (*ui).vars,
}

func (u *ui) command(ctx context.Context, fields []string) (bool, error) {
	f, ok := meta[fields[0]]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknown, fields[0])
	}

	return f(u, ctx, fields[1:])
}

func (u *ui) delete(ctx context.Context, names []string) (bool, error) {
	if u.registers == nil {
		return false, ErrNoRegisters
	}

	if len(names) == 0 {
		return false, fmt.Errorf("%w: :delete NAME...", ErrUsage)
	}

	for _, name := range names {
		if err := u.registers.Delete(ctx, name); err != nil {
			return false, err
		}
	}

	return false, nil
}

func (u *ui) help(_ context.Context, _ []string) (bool, error) {
	fmt.Fprintf(u.out, usage, strings.Join(commands.Names(), " "))

	return false, nil
}

func (u *ui) load(ctx context.Context, names []string) (bool, error) {
	if u.registers == nil {
		return false, ErrNoRegisters
	}

	if len(names) == 0 {
		var err error

		names, err = u.registers.Names(ctx)
		if err != nil {
			return false, err
		}
	}

	for _, name := range names {
		v, err := u.registers.Load(ctx, name)
		if err != nil {
			return false, err
		}

		u.evaluator.Set(name, v)

		fmt.Fprintf(u.out, "%s = %s\n", quote(name), v)
	}

	return false, nil
}

func (u *ui) quit(_ context.Context, _ []string) (bool, error) {
	return true, nil
}

func (u *ui) save(ctx context.Context, names []string) (bool, error) {
	if u.registers == nil {
		return false, ErrNoRegisters
	}

	if len(names) == 0 {
		return false, fmt.Errorf("%w: :save NAME...", ErrUsage)
	}

	for _, name := range names {
		v, ok := u.evaluator.Get(name)
		if !ok {
			return false, fmt.Errorf("%w: %s", engine.ErrUndefined, quote(name))
		}

		if err := u.registers.Save(ctx, name, v); err != nil {
			return false, err
		}
	}

	return false, nil
}

func (u *ui) vars(_ context.Context, args []string) (bool, error) {
	pattern := "*"

	switch len(args) {
	case 0:
	case 1:
		pattern = args[0]
	default:
		return false, fmt.Errorf("%w: :vars [PATTERN]", ErrUsage)
	}

	// Unlike adapted.Match, filepath.Match checks the whole pattern.
	if _, err := filepath.Match(pattern, ""); err != nil {
		return false, fmt.Errorf("%s: %w", quote(pattern), err)
	}

	for _, name := range u.evaluator.Variables() {
		if ok, _ := adapted.Match(pattern, name); !ok {
			continue
		}

		v, _ := u.evaluator.Get(name)

		fmt.Fprintf(u.out, "%s = %s\n", name, v)
	}

	return false, nil
}

// complete offers the variables, functions, and commands that start with
// the word at pos.
func (u *ui) complete(line string, pos int) (string, []string, string) {
	head, tail := line[:pos], line[pos:]

	start := strings.LastIndexFunc(head, func(r rune) bool {
		return r != '_' && r != ':' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if start < 0 {
		start = 0
	} else {
		_, w := utf8.DecodeRuneInString(head[start:])
		start += w
	}

	word := head[start:]
	if word == "" {
		return head, nil, tail
	}

	var candidates []string

	if strings.HasPrefix(word, ":") {
		for k := range meta {
			candidates = append(candidates, k)
		}
	} else {
		candidates = u.evaluator.Names()
	}

	var completions []string

	for _, c := range candidates {
		if strings.HasPrefix(c, word) {
			completions = append(completions, c)
		}
	}

	sort.Strings(completions)

	return head[:start], completions, tail
}

// quote returns name unchanged if it could be typed as an identifier.
func quote(name string) string {
	if name == "" {
		return adapted.CanonicalString(name)
	}

	for i, r := range name {
		if r != '_' && !unicode.IsLetter(r) && (i == 0 || !unicode.IsDigit(r)) {
			return adapted.CanonicalString(name)
		}
	}

	return name
}
