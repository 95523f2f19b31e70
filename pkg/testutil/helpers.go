// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/loanscope/loan-compare/internal/engine"
)

// FindResult finds a computed result by scenario name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindResult(results []engine.Result, name string) *engine.Result {
	for i := range results {
		if results[i].ScenarioName == name {
			return &results[i]
		}
	}
	return nil
}
