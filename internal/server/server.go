// Package server exposes the loan computation engine as an HTTP JSON API.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/loanscope/loan-compare/internal/cache"
	"github.com/loanscope/loan-compare/internal/compare"
	"github.com/loanscope/loan-compare/internal/config"
	"github.com/loanscope/loan-compare/internal/engine"
	"github.com/loanscope/loan-compare/internal/store"
	"github.com/loanscope/loan-compare/pkg/constants"
	"github.com/loanscope/loan-compare/pkg/output"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger         *zap.Logger
	engine         *engine.Engine
	results        *cache.ResultCache
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the loan comparison API.
// The result cache is optional; pass nil to compute every request from
// scratch.
func NewHandler(logger *zap.Logger, results *cache.ResultCache, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		engine:         engine.New(logger),
		results:        results,
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
	}

	mux := http.NewServeMux()

	// Scenario comparison endpoint
	mux.HandleFunc("/api/compute", h.handleCompute)

	// Reverse mortgage sizing endpoint
	mux.HandleFunc("/api/hecm", h.handleHECM)

	// Scenario document export endpoint
	mux.HandleFunc("/api/export", h.handleExport)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type computeResponse struct {
	Scenarios  []string           `json:"scenarios"`
	Results    []engine.Result    `json:"results"`
	Comparison compare.Comparison `json:"comparison"`
	CSV        string             `json:"csv"`
	Warnings   []string           `json:"warnings,omitempty"`
	Duration   string             `json:"duration"`
}

func (h *handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	op := "server.handleCompute"

	cfg, ok := h.decodeConfiguration(w, r, op)
	if !ok {
		return
	}

	warnings := cfg.ValidateConfiguration()

	ctx := r.Context()
	results := make([]engine.Result, 0, len(cfg.Scenarios))
	for _, sc := range cfg.Scenarios {
		if h.results != nil {
			if cached, hit := h.results.Lookup(ctx, sc); hit {
				results = append(results, cached)
				continue
			}
		}

		scenario, err := sc.Build()
		if err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid scenario %s: %v", sc.Name, err), op)
			return
		}
		result, err := h.engine.Compute(scenario)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to compute scenario %s: %v", sc.Name, err), op)
			return
		}
		if h.results != nil {
			h.results.Store(ctx, sc, result)
		}
		results = append(results, result)
	}

	var csv bytes.Buffer
	output.CsvComparison(&csv, results)

	elapsed := time.Since(start)

	response := computeResponse{
		Scenarios:  scenarioNames(results),
		Results:    results,
		Comparison: compare.Results(results),
		CSV:        csv.String(),
		Warnings:   warnings,
		Duration:   elapsed.String(),
	}

	h.logger.Info("comparison computed",
		zap.String("op", op),
		zap.Int("scenarios", len(response.Scenarios)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleHECM(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	op := "server.handleHECM"

	h.limitBody(w, r)

	var hecmConfig config.HECMConfig
	if err := json.NewDecoder(r.Body).Decode(&hecmConfig); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode scenario: %v", err), op)
		return
	}

	cfg := config.Configuration{HECM: &hecmConfig}
	cfg.ApplyDefaults()

	result, err := h.engine.ComputeHECM(hecmConfig.BuildHECM())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to compute reverse mortgage: %v", err), op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("reverse mortgage computed",
		zap.String("op", op),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, struct {
		Result   interface{} `json:"result"`
		Duration string      `json:"duration"`
	}{Result: result, Duration: elapsed.String()})
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	op := "server.handleExport"

	cfg, ok := h.decodeConfiguration(w, r, op)
	if !ok {
		return
	}

	scenarios := make(map[string]config.ScenarioConfig, len(cfg.Scenarios))
	results := make(map[string]engine.Result, len(cfg.Scenarios))
	for _, sc := range cfg.Scenarios {
		id := ulid.Make().String()
		scenarios[id] = sc

		scenario, err := sc.Build()
		if err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid scenario %s: %v", sc.Name, err), op)
			return
		}
		result, err := h.engine.Compute(scenario)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to compute scenario %s: %v", sc.Name, err), op)
			return
		}
		results[id] = result
	}

	envelope := store.NewEnvelope(scenarios, results)

	if strings.EqualFold(r.URL.Query().Get("format"), "yaml") {
		data, err := yaml.Marshal(envelope)
		if err != nil {
			h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode document: %v", err), op)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			h.logger.Error("failed to write YAML response", zap.String("op", op), zap.Error(err))
		}
		return
	}

	h.writeJSON(w, http.StatusOK, envelope)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeConfiguration reads a JSON configuration document from the request
// body, either the document itself or wrapped as {"config": {...}}, and runs
// it through the same YAML loading path the CLI uses so defaults apply
// identically.
func (h *handler) decodeConfiguration(w http.ResponseWriter, r *http.Request, op string) (*config.Configuration, bool) {
	h.limitBody(w, r)

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return nil, false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), op)
		return nil, false
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	configPayload := payload
	if rawConfig, ok := payload["config"]; ok {
		cfgMap, ok := rawConfig.(map[string]interface{})
		if !ok {
			h.respondError(w, http.StatusBadRequest, "invalid config payload: expected object", op)
			return nil, false
		}
		configPayload = cfgMap
	}

	configBytes, err := yaml.Marshal(configPayload)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return nil, false
	}

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return nil, false
	}
	return cfg, true
}

func (h *handler) limitBody(w http.ResponseWriter, r *http.Request) {
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func scenarioNames(results []engine.Result) []string {
	names := make([]string, 0, len(results))
	for _, result := range results {
		names = append(names, result.ScenarioName)
	}
	return names
}
