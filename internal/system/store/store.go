// Released under an MIT license. See LICENSE.

// Package store keeps named values (registers) in a SQLite database so
// that they survive between sessions.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // Registers the sqlite3 driver.

	"github.com/michaelmacinnis/frac/internal/number/rational"
)

// ErrNotFound is returned when loading a register that was never saved.
var ErrNotFound = errors.New("no such register")

const schema = `CREATE TABLE IF NOT EXISTS registers (
	name  TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// T (store) is a registers database.
type T struct {
	db *sql.DB
}

type store = T

// Open creates or opens the registers database at path.
func Open(path string) (*T, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open registers: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, stmt := range []string{
		"PRAGMA busy_timeout = 5000",
		schema,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()

			return nil, fmt.Errorf("open registers: %w", err)
		}
	}

	return &T{db: db}, nil
}

func (s *store) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

// Delete removes the register name. Deleting a missing register is not
// an error.
func (s *store) Delete(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM registers WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}

	return nil
}

// Load returns the value saved as name.
func (s *store) Load(ctx context.Context, name string) (*rational.T, error) {
	var text string

	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM registers WHERE name = ?", name,
	).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	} else if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	v, err := rational.ParseFraction(text)
	if err != nil {
		return nil, fmt.Errorf("load %s: %q: %w", name, text, err)
	}

	return v, nil
}

// Names returns the names of all saved registers in order.
func (s *store) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM registers ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list registers: %w", err)
	}
	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list registers: %w", err)
		}

		names = append(names, name)
	}

	return names, rows.Err()
}

// Save stores v as name, replacing any earlier value.
func (s *store) Save(ctx context.Context, name string, v *rational.T) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO registers (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		name, v.String(),
	)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}

	return nil
}
