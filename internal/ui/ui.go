// Released under an MIT license. See LICENSE.

// Package ui provides the batch and interactive interfaces for frac.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/rs/zerolog"

	"github.com/michaelmacinnis/frac/internal/common/struct/node"
	"github.com/michaelmacinnis/frac/internal/number/rational"
	"github.com/michaelmacinnis/frac/internal/reader"
	"github.com/michaelmacinnis/frac/internal/system/history"
)

// Evaluator is the interface for things that want to process parsed
// statements.
type Evaluator interface {
	Evaluate(n node.T) (*rational.T, error)
	Get(name string) (*rational.T, bool)
	Names() []string
	Set(name string, v *rational.T)
	Variables() []string
}

// Registers is the interface for persistent named values.
type Registers interface {
	Delete(ctx context.Context, name string) error
	Load(ctx context.Context, name string) (*rational.T, error)
	Names(ctx context.Context) ([]string, error)
	Save(ctx context.Context, name string, v *rational.T) error
}

type Option func(*T)

// WithColor enables or disables highlighting of errors.
func WithColor(enabled bool) Option {
	return func(u *T) {
		if enabled {
			return
		}

		u.highlight.DisableColor()
	}
}

// WithLabel sets the name used in the location of errors.
func WithLabel(label string) Option {
	return func(u *T) {
		u.label = label
	}
}

// WithLogger sets the logger for diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(u *T) {
		u.log = l
	}
}

// WithOutput sets where results and errors are written.
func WithOutput(out, errs io.Writer) Option {
	return func(u *T) {
		u.out = out
		u.errs = errs
	}
}

// WithPlaces shows each result as a decimal to places places as well.
func WithPlaces(places int) Option {
	return func(u *T) {
		u.places = places
	}
}

// WithRegisters enables :save, :load, and :delete.
func WithRegisters(r Registers) Option {
	return func(u *T) {
		u.registers = r
	}
}

// T (ui) reads lines, evaluates them, and prints the results.
type T struct {
	errs      io.Writer
	evaluator Evaluator
	highlight *color.Color
	label     string
	log       zerolog.Logger
	out       io.Writer
	places    int
	reader    *reader.T
	registers Registers
}

type ui = T

// New creates a new T that sends statements to e.
func New(e Evaluator, options ...Option) *T {
	u := &T{
		errs:      os.Stderr,
		evaluator: e,
		highlight: color.New(color.FgRed),
		label:     "frac",
		log:       zerolog.Nop(),
		out:       os.Stdout,
	}

	for _, o := range options {
		o(u)
	}

	u.reader = reader.New(u.label)

	return u
}

// Interactive runs a line editing session until end of input or :quit.
// History is read from and written to the file at path.
func (u *ui) Interactive(ctx context.Context, path string) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(u.complete)

	if err := history.Load(path, cli.ReadHistory); err != nil {
		u.log.Warn().Err(err).Str("path", path).Msg("cannot read history")
	}

	for {
		line, err := cli.Prompt("> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if errors.Is(err, io.EOF) {
			fmt.Fprintln(u.out)

			break
		} else if err != nil {
			return err
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		quit, err := u.Line(ctx, line)
		if err != nil {
			u.report(err)
		}

		if quit {
			break
		}
	}

	if err := history.Save(path, cli.WriteHistory); err != nil {
		u.log.Warn().Err(err).Str("path", path).Msg("cannot save history")
	}

	return nil
}

// Line evaluates a line of statements or a meta command and prints the
// results. It returns true if the line asked to end the session. Evaluation
// stops at the first error, which is returned unprinted.
func (u *ui) Line(ctx context.Context, line string) (bool, error) {
	if strings.HasPrefix(strings.TrimSpace(line), ":") {
		return u.command(ctx, strings.Fields(line))
	}

	statements, perr := u.reader.Scan(line)

	for _, n := range statements {
		v, err := u.evaluator.Evaluate(n)
		if err != nil {
			return false, err
		}

		u.result(v)
	}

	return false, perr
}

// Run evaluates each line read from r until end of input or :quit.
// It returns the number of lines that failed.
func (u *ui) Run(ctx context.Context, r io.Reader) (int, error) {
	failed := 0

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)

	for s.Scan() {
		quit, err := u.Line(ctx, s.Text())
		if err != nil {
			u.report(err)

			failed++
		}

		if quit {
			break
		}
	}

	return failed, s.Err()
}

func (u *ui) report(err error) {
	fmt.Fprintln(u.errs, u.highlight.Sprint("error: "+err.Error()))
}

func (u *ui) result(v *rational.T) {
	s := v.String()
	if u.places > 0 {
		s += " ≈ " + v.Decimal(u.places)
	}

	fmt.Fprintln(u.out, s)
}
