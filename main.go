/*
Frac is a calculator for exact rational arithmetic. Results are kept as
fractions of arbitrarily large integers and are never rounded:

    1/2 + 1/3
    x = 2 ^ -3; x * 16
    gcd(12, 18)
    1.5 million / 7
    20!

For more detail, run frac and type :help.

Frac is released under an MIT-style license.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/michaelmacinnis/frac/internal/engine"
	"github.com/michaelmacinnis/frac/internal/system/config"
	"github.com/michaelmacinnis/frac/internal/system/logger"
	"github.com/michaelmacinnis/frac/internal/system/options"
	"github.com/michaelmacinnis/frac/internal/system/store"
	"github.com/michaelmacinnis/frac/internal/ui"
)

//nolint:gochecknoglobals
var version = "0.1.0"

func main() {
	o, err := options.Parse(version)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2) //nolint:gomnd
	}

	os.Exit(run(o, os.Stdin, os.Stdout, os.Stderr))
}

// run evaluates input as directed by o and returns the exit status.
func run(o *options.T, stdin io.Reader, stdout, stderr io.Writer) int {
	red := color.New(color.FgRed)

	fail := func(err error) int {
		red.Fprintln(stderr, "error: "+err.Error())

		return 1
	}

	c, err := settings(o.Config)
	if err != nil {
		return fail(err)
	}

	if !c.Color {
		red.DisableColor()
	}

	if o.Debug {
		c.LogLevel = "debug"
	}

	log, err := logger.New(stderr, c.LogLevel, c.Color)
	if err != nil {
		return fail(err)
	}

	if o.Reduce != "" {
		c.Reduce = o.Reduce
	}

	policy, err := engine.ParsePolicy(c.Reduce)
	if err != nil {
		return fail(err)
	}

	if o.Decimal >= 0 {
		c.Precision = o.Decimal
	}

	log.Debug().
		Str("policy", policy.String()).
		Int("precision", c.Precision).
		Bool("interactive", o.Interactive).
		Msg("starting")

	e := engine.New(engine.WithLogger(log), engine.WithPolicy(policy))

	uo := []ui.Option{
		ui.WithColor(c.Color),
		ui.WithLogger(log),
		ui.WithOutput(stdout, stderr),
		ui.WithPlaces(c.Precision),
	}

	ctx := context.Background()

	if o.Interactive {
		return interactive(ctx, e, c, log, uo)
	}

	label, input := "stdin", stdin

	switch {
	case o.Command != "":
		label, input = "command", strings.NewReader(o.Command)
	case o.Script != "":
		f, err := os.Open(o.Script)
		if err != nil {
			return fail(err)
		}
		defer f.Close()

		label, input = o.Script, f
	}

	failed, err := ui.New(e, append(uo, ui.WithLabel(label))...).Run(ctx, input)
	if err != nil {
		return fail(err)
	}

	if failed > 0 {
		return 1
	}

	return 0
}

func interactive(ctx context.Context, e *engine.T, c *config.T, log zerolog.Logger, uo []ui.Option) int {
	s, err := store.Open(c.Registers)
	if err != nil {
		log.Warn().Err(err).Str("path", c.Registers).Msg("registers disabled")
	} else {
		defer s.Close()

		uo = append(uo, ui.WithRegisters(s))
	}

	err = ui.New(e, uo...).Interactive(ctx, c.History)
	if err != nil {
		log.Error().Err(err).Msg("interactive session ended")

		return 1
	}

	return 0
}

// settings reads the configuration file at path. With no path the default
// file is read if it exists.
func settings(path string) (*config.T, error) {
	if path != "" {
		return config.Load(path)
	}

	c, err := config.Load(config.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}

	return c, err
}
