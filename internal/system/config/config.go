// Released under an MIT license. See LICENSE.

// Package config reads the optional frac configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/michaelmacinnis/frac/internal/system/history"
)

// ErrInvalid is wrapped by errors for values that decode but make no sense.
var ErrInvalid = errors.New("invalid configuration")

// T (config) holds settings that can also come from the command line.
type T struct {
	Precision int    `yaml:"precision"` // Decimal places shown after a result. Zero for none.
	Reduce    string `yaml:"reduce"`    // Reduction policy: never, final, or always.
	History   string `yaml:"history"`   // Path to the history file.
	Registers string `yaml:"registers"` // Path to the registers database.
	Color     bool   `yaml:"color"`     // Highlight errors.
	LogLevel  string `yaml:"log_level"` // Diagnostic log level.
}

type config = T

// Default returns the settings used when there is no configuration file.
func Default() *T {
	return &T{
		Reduce:    "final",
		History:   history.Default(),
		Registers: home(".frac.db"),
		Color:     true,
		LogLevel:  "warn",
	}
}

// Path returns the default configuration file, ~/.frac.yaml.
func Path() string {
	return home(".frac.yaml")
}

// Load reads the configuration file at path. Settings not in the file
// keep their default values.
func Load(path string) (*T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Read decodes configuration from r.
func Read(r io.Reader) (*T, error) {
	c := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.History = expand(c.History)
	c.Registers = expand(c.Registers)

	return c, nil
}

// Validate checks values that the decoder cannot.
func (c *config) Validate() error {
	if c.Precision < 0 {
		return fmt.Errorf("%w: precision must not be negative", ErrInvalid)
	}

	switch c.Reduce {
	case "", "always", "final", "never":
	default:
		return fmt.Errorf("%w: reduce must be never, final, or always", ErrInvalid)
	}

	return nil
}

func expand(path string) string {
	if len(path) > 1 && path[:2] == "~/" {
		return home(path[2:])
	}

	return path
}

func home(name string) string {
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = os.Getenv("HOME")
	}

	return filepath.Join(dir, name)
}
