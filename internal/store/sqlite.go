// Package store persists loan scenarios and their computed results in a
// local SQLite database and round-trips them through the versioned JSON
// envelope format.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"

	"github.com/loanscope/loan-compare/internal/config"
	"github.com/loanscope/loan-compare/internal/engine"
)

// Store is a SQLite-backed scenario and result store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize store schema: %w", err)
	}

	return &Store{db: db}, nil
}

// SaveScenario stores a raw scenario record and returns its generated ID.
func (s *Store) SaveScenario(sc config.ScenarioConfig) (string, error) {
	payload, err := json.Marshal(sc)
	if err != nil {
		return "", fmt.Errorf("failed to encode scenario %s: %w", sc.Name, err)
	}

	id := ulid.Make().String()
	_, err = s.db.Exec(`
		INSERT INTO scenarios (id, name, loan_type, payload, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		id, sc.Name, sc.LoanType, string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("failed to save scenario %s: %w", sc.Name, err)
	}
	return id, nil
}

// PutScenario stores a scenario under an explicit ID, replacing any existing
// record. Used by envelope import to preserve identifiers.
func (s *Store) PutScenario(id string, sc config.ScenarioConfig) error {
	payload, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("failed to encode scenario %s: %w", sc.Name, err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO scenarios (id, name, loan_type, payload, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		id, sc.Name, sc.LoanType, string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save scenario %s: %w", sc.Name, err)
	}
	return nil
}

// GetScenario loads one scenario by ID.
func (s *Store) GetScenario(id string) (config.ScenarioConfig, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM scenarios WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		return config.ScenarioConfig{}, fmt.Errorf("failed to load scenario %s: %w", id, err)
	}

	var sc config.ScenarioConfig
	if err := json.Unmarshal([]byte(payload), &sc); err != nil {
		return config.ScenarioConfig{}, fmt.Errorf("failed to decode scenario %s: %w", id, err)
	}
	return sc, nil
}

// ListScenarios loads all stored scenarios keyed by ID.
func (s *Store) ListScenarios() (map[string]config.ScenarioConfig, error) {
	rows, err := s.db.Query(`SELECT id, payload FROM scenarios ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer rows.Close()

	scenarios := make(map[string]config.ScenarioConfig)
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, err
		}
		var sc config.ScenarioConfig
		if err := json.Unmarshal([]byte(payload), &sc); err != nil {
			return nil, fmt.Errorf("failed to decode scenario %s: %w", id, err)
		}
		scenarios[id] = sc
	}
	return scenarios, rows.Err()
}

// DeleteScenario removes a scenario and its results.
func (s *Store) DeleteScenario(id string) error {
	if _, err := s.db.Exec(`DELETE FROM results WHERE scenario_id = ?`, id); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM scenarios WHERE id = ?`, id)
	return err
}

// SaveResult stores a computed result for a scenario. Results are append-only;
// the latest one wins for reporting.
func (s *Store) SaveResult(scenarioID string, r engine.Result) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode result for %s: %w", scenarioID, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO results (scenario_id, payload, computed_at)
		VALUES (?, ?, ?)`,
		scenarioID, string(payload), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save result for %s: %w", scenarioID, err)
	}
	return nil
}

// LatestResults loads the most recent result per scenario, keyed by
// scenario ID.
func (s *Store) LatestResults() (map[string]engine.Result, error) {
	rows, err := s.db.Query(`
		SELECT scenario_id, payload FROM results
		WHERE rowid IN (
			SELECT MAX(rowid) FROM results GROUP BY scenario_id
		)`)
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}
	defer rows.Close()

	results := make(map[string]engine.Result)
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, err
		}
		var r engine.Result
		if err := json.Unmarshal([]byte(payload), &r); err != nil {
			return nil, fmt.Errorf("failed to decode result for %s: %w", id, err)
		}
		results[id] = r
	}
	return results, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
