// Package store provides a SQLite-backed library of named plan scenarios.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/theirongolddev/nestplan/internal/config"
	"github.com/theirongolddev/nestplan/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when no scenario has the requested name.
var ErrNotFound = errors.New("scenario not found")

// Scenario is a named set of plan inputs.
type Scenario struct {
	ID        string
	Name      string
	Input     model.PlanInput
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Library stores scenarios in a SQLite database.
type Library struct {
	db  *sql.DB
	now func() time.Time
}

// DefaultPath returns the scenario database location under the cache dir.
func DefaultPath() string {
	return filepath.Join(config.CacheDir(), "scenarios.db")
}

// Open opens or creates the scenario database at the given path.
func Open(dbPath string) (*Library, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating scenario dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening scenario db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Library{db: db, now: time.Now}, nil
}

// Close closes the scenario database.
func (l *Library) Close() error {
	return l.db.Close()
}

// Save inserts s, or replaces the inputs of the scenario with the same name.
// An existing scenario keeps its ID and creation time.
func (l *Library) Save(ctx context.Context, s Scenario) (Scenario, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return Scenario{}, errors.New("scenario name is required")
	}
	if err := config.DefaultLimits.Validate(s.Input); err != nil {
		return Scenario{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	now := l.now().UTC().Truncate(time.Second)
	stamp := now.Format(time.RFC3339)

	_, err := l.db.ExecContext(ctx, `INSERT INTO scenarios
		(id, name, income, savings_percent, annual_return, horizon_years, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			income = excluded.income,
			savings_percent = excluded.savings_percent,
			annual_return = excluded.annual_return,
			horizon_years = excluded.horizon_years,
			updated_at = excluded.updated_at`,
		uuid.NewString(), s.Name, s.Input.Income, s.Input.SavingsPercent,
		s.Input.AnnualReturn, s.Input.HorizonYears, stamp, stamp,
	)
	if err != nil {
		return Scenario{}, fmt.Errorf("saving scenario %q: %w", s.Name, err)
	}

	return l.Get(ctx, s.Name)
}

// Get returns the scenario with the given name, or ErrNotFound.
func (l *Library) Get(ctx context.Context, name string) (Scenario, error) {
	row := l.db.QueryRowContext(ctx, `SELECT
		id, name, income, savings_percent, annual_return, horizon_years, created_at, updated_at
		FROM scenarios WHERE name = ?`, strings.TrimSpace(name))

	s, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Scenario{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return s, err
}

// List returns all scenarios ordered by name.
func (l *Library) List(ctx context.Context) ([]Scenario, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT
		id, name, income, savings_percent, annual_return, horizon_years, created_at, updated_at
		FROM scenarios ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Scenario
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes the named scenario. Deleting a missing name returns ErrNotFound.
func (l *Library) Delete(ctx context.Context, name string) error {
	res, err := l.db.ExecContext(ctx, "DELETE FROM scenarios WHERE name = ?", strings.TrimSpace(name))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanScenario(sc scanner) (Scenario, error) {
	var s Scenario
	var created, updated string
	err := sc.Scan(&s.ID, &s.Name, &s.Input.Income, &s.Input.SavingsPercent,
		&s.Input.AnnualReturn, &s.Input.HorizonYears, &created, &updated)
	if err != nil {
		return Scenario{}, err
	}
	s.CreatedAt, _ = time.Parse(time.RFC3339, created)
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return s, nil
}
