package store

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/loanscope/loan-compare/internal/config"
	"github.com/loanscope/loan-compare/internal/engine"
	"github.com/loanscope/loan-compare/pkg/constants"
)

// Envelope is the versioned document format for scenario import/export.
// Scenario payloads are the raw form-field records; numeric coercion has
// already happened by the time they reach the engine.
type Envelope struct {
	Type      string                           `json:"type"`
	Version   int                              `json:"version"`
	Scenarios map[string]config.ScenarioConfig `json:"scenarios"`
	Results   map[string]engine.Result         `json:"results,omitempty"`
}

// NewEnvelope wraps scenarios and results in the current envelope version.
func NewEnvelope(scenarios map[string]config.ScenarioConfig, results map[string]engine.Result) Envelope {
	return Envelope{
		Type:      constants.EnvelopeType,
		Version:   constants.EnvelopeVersion,
		Scenarios: scenarios,
		Results:   results,
	}
}

// Validate rejects documents of the wrong type or an unknown version.
func (e Envelope) Validate() error {
	if e.Type != constants.EnvelopeType {
		return fmt.Errorf("unexpected document type %q", e.Type)
	}
	if e.Version != constants.EnvelopeVersion {
		return fmt.Errorf("unsupported envelope version %d", e.Version)
	}
	return nil
}

// Export writes the full store contents as an envelope document.
func (s *Store) Export(w io.Writer) error {
	scenarios, err := s.ListScenarios()
	if err != nil {
		return err
	}
	results, err := s.LatestResults()
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewEnvelope(scenarios, results))
}

// Import reads an envelope document and merges its scenarios and results
// into the store, preserving scenario IDs. Returns the number of scenarios
// imported.
func (s *Store) Import(r io.Reader) (int, error) {
	var envelope Envelope
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return 0, fmt.Errorf("failed to decode envelope: %w", err)
	}
	if err := envelope.Validate(); err != nil {
		return 0, err
	}

	imported := 0
	for id, sc := range envelope.Scenarios {
		if err := s.PutScenario(id, sc); err != nil {
			return imported, err
		}
		imported++

		if result, ok := envelope.Results[id]; ok {
			if err := s.SaveResult(id, result); err != nil {
				return imported, err
			}
		}
	}
	return imported, nil
}
