package store

// Schema creates the scenario and result tables. Payloads are stored as JSON
// documents; the engine never reads them directly.
const Schema = `
CREATE TABLE IF NOT EXISTS scenarios (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	loan_type  TEXT NOT NULL,
	payload    TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
	scenario_id TEXT NOT NULL REFERENCES scenarios(id) ON DELETE CASCADE,
	payload     TEXT NOT NULL,
	computed_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_results_scenario ON results(scenario_id, computed_at);
`
