// Released under an MIT license. See LICENSE.

// Package options parses the frac command line.
package options

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// ErrPlaces is returned when the number of decimal places is not a
// non-negative integer.
var ErrPlaces = errors.New("decimal places must be a non-negative integer")

//nolint:gochecknoglobals
var usage = `frac

Usage:
  frac [options] SCRIPT
  frac [options] -c EXPRESSION
  frac [options] [-s]
  frac -h | --help
  frac -v | --version

Arguments:
  SCRIPT  Path to a file of frac statements.

Options:
  -c, --command=EXPRESSION  Evaluate EXPRESSION.
  -d, --decimal=PLACES      Also show each result to PLACES decimal places.
  -r, --reduce=POLICY       When to reduce: never, final, or always.
  -f, --config=FILE         Read settings from FILE instead of ~/.frac.yaml.
  -i, --interactive         Invert interactive mode.
  -s, --stdin               Read statements from stdin.
  --debug                   Log each evaluation to stderr.
  -h, --help                Display this help.
  -v, --version             Print frac version.

If frac's stdin is a TTY, and frac was invoked with no script or expression,
interactive mode is enabled. Otherwise, statements are evaluated in batch
mode and any error sets a non-zero exit status.
`

// T (options) holds the parsed command line.
type T struct {
	Command     string // Expression passed with -c.
	Config      string // Configuration file passed with -f.
	Debug       bool
	Decimal     int // Decimal places or -1 if not given.
	Interactive bool
	Reduce      string // Reduction policy or "" if not given.
	Script      string // Path to script.
}

// Parse parses os.Args. It prints usage and exits on a usage error or when
// help or the version was requested.
func Parse(version string) (*T, error) {
	return ParseArgs(os.Args[1:], version, isatty.IsTerminal(os.Stdin.Fd()))
}

// ParseArgs parses argv. Terminal is true if stdin is a TTY.
func ParseArgs(argv []string, version string, terminal bool) (*T, error) {
	p := &docopt.Parser{
		HelpHandler: docopt.PrintHelpAndExit,
	}

	return parse(p, argv, version, terminal)
}

func parse(p *docopt.Parser, argv []string, version string, terminal bool) (*T, error) {
	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		return nil, err
	}

	o := &T{Decimal: -1}

	o.Command, _ = opts.String("--command")
	o.Config, _ = opts.String("--config")
	o.Debug, _ = opts.Bool("--debug")
	o.Reduce, _ = opts.String("--reduce")
	o.Script, _ = opts.String("SCRIPT")

	if s, _ := opts.String("--decimal"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrPlaces, s)
		}

		o.Decimal = n
	}

	if o.Script == "" && o.Command == "" && terminal {
		o.Interactive = true
	}

	invertInteractive, _ := opts.Bool("--interactive")
	o.Interactive = o.Interactive != invertInteractive

	return o, nil
}
