/*
Package sqlite stores saved lease vs buy scenarios in SQLite.

KEY TABLES:

	scenarios: one row per saved scenario; input and slab table are kept
	           as JSON so the schema does not track ProjectionInput fields.

USAGE:

	store, err := sqlite.New(":memory:")
	if err != nil {
	    log.Fatal(err)
	}
	defer store.Close()

An in-memory database lives only as long as the process. Pass a file path
to keep scenarios across restarts.
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rpgo/carlease-calculator/internal/domain"
)

// ErrNotFound is returned when a scenario id does not exist.
var ErrNotFound = errors.New("scenario not found")

// Store persists scenarios in SQLite.
type Store struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == ":memory:" {
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scenarios (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		input_json TEXT NOT NULL,
		slabs_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scenarios_created_at
		ON scenarios(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveScenario assigns an id and creation time to sc and stores it.
// A nil slab table is stored as the default table.
func (s *Store) SaveScenario(ctx context.Context, sc domain.Scenario) (domain.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc.ID = uuid.New().String()
	sc.CreatedAt = s.now().UTC().Truncate(time.Second)
	if len(sc.Slabs) == 0 {
		sc.Slabs = domain.DefaultSlabTable()
	}

	inputJSON, err := json.Marshal(sc.Input)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("encode input: %w", err)
	}
	slabsJSON, err := json.Marshal(sc.Slabs)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("encode slabs: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO scenarios (id, name, input_json, slabs_json, created_at) VALUES (?, ?, ?, ?, ?)",
		sc.ID, sc.Name, string(inputJSON), string(slabsJSON), sc.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("insert scenario: %w", err)
	}
	return sc, nil
}

// GetScenario loads a scenario by id.
func (s *Store) GetScenario(ctx context.Context, id string) (*domain.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, input_json, slabs_json, created_at FROM scenarios WHERE id = ?",
		id,
	)
	sc, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// ListScenarios returns all scenarios, newest first.
func (s *Store) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, input_json, slabs_json, created_at FROM scenarios ORDER BY created_at DESC, name",
	)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	scenarios := []domain.Scenario{}
	for rows.Next() {
		sc, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, *sc)
	}
	return scenarios, rows.Err()
}

// DeleteScenario removes a scenario. It returns ErrNotFound for unknown ids.
func (s *Store) DeleteScenario(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM scenarios WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete scenario: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete scenario: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanScenario(row scanner) (*domain.Scenario, error) {
	var sc domain.Scenario
	var inputJSON, slabsJSON, createdAt string
	if err := row.Scan(&sc.ID, &sc.Name, &inputJSON, &slabsJSON, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(inputJSON), &sc.Input); err != nil {
		return nil, fmt.Errorf("decode input of scenario %s: %w", sc.ID, err)
	}
	if err := json.Unmarshal([]byte(slabsJSON), &sc.Slabs); err != nil {
		return nil, fmt.Errorf("decode slabs of scenario %s: %w", sc.ID, err)
	}
	sc.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &sc, nil
}
