/*
handlers.go - HTTP handlers for the lease vs buy calculator

ENDPOINTS:
  GET    /api/health                    Liveness and cache counters
  GET    /api/defaults                  Default input, slabs and perquisite
  GET    /api/slabs/default             Default FY 2025-26 slab table
  POST   /api/projections               Project a JSON input
  GET    /api/projections?ctc=...       Project a share-link query
  POST   /api/reports/{format}          Formatted report for a JSON input
  POST   /api/scenarios                 Save a scenario
  GET    /api/scenarios                 List saved scenarios
  GET    /api/scenarios/{id}            Fetch a saved scenario
  GET    /api/scenarios/{id}/projection Project a saved scenario
  DELETE /api/scenarios/{id}            Delete a saved scenario

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid slab tables, unknown report formats
  - 404: Unknown scenario
  - 500: Store and formatter failures
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpgo/carlease-calculator/internal/cache"
	"github.com/rpgo/carlease-calculator/internal/calculation"
	"github.com/rpgo/carlease-calculator/internal/config"
	"github.com/rpgo/carlease-calculator/internal/domain"
	"github.com/rpgo/carlease-calculator/internal/output"
	"github.com/rpgo/carlease-calculator/internal/store/sqlite"
)

// maxBodyBytes bounds request bodies; a full input with a custom slab table is well under 64KiB.
const maxBodyBytes = 1 << 20

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine *cache.CachedEngine
	Store  *sqlite.Store
	Parser *config.InputParser
	Logger calculation.Logger
}

// NewHandler creates a new handler. The engine's logger is reused for handler errors.
func NewHandler(engine *cache.CachedEngine, store *sqlite.Store) *Handler {
	logger := engine.Engine().Logger
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Handler{
		Engine: engine,
		Store:  store,
		Parser: config.NewInputParser(),
		Logger: logger,
	}
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Health reports liveness.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	hits, misses := h.Engine.Stats()
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", CacheHits: hits, CacheMisses: misses})
}

// GetDefaults returns the reference scenario.
// GET /api/defaults
func (h *Handler) GetDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DefaultsResponse{
		Input:      domain.DefaultInput(),
		Slabs:      domain.DefaultSlabTable(),
		Perquisite: h.Engine.Engine().Perquisite,
	})
}

// GetDefaultSlabs returns the default slab table.
// GET /api/slabs/default
func (h *Handler) GetDefaultSlabs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.DefaultSlabTable())
}

// =============================================================================
// PROJECTIONS
// =============================================================================

// Project runs a projection for a JSON body.
// POST /api/projections
func (h *Handler) Project(w http.ResponseWriter, r *http.Request) {
	in, slabs, ok := h.decodeProjection(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.project(r, in, slabs))
}

// ProjectFromQuery runs a projection for a share-link query string.
// Unknown keys are ignored and unparseable values keep their defaults.
// GET /api/projections
func (h *Handler) ProjectFromQuery(w http.ResponseWriter, r *http.Request) {
	in := config.ParseQuery(r.URL.Query(), domain.DefaultInput())
	if err := h.Parser.ValidateInput(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input", err)
		return
	}
	writeJSON(w, http.StatusOK, h.project(r, in, domain.DefaultSlabTable()))
}

// Report renders a formatted report for a JSON body.
// POST /api/reports/{format}
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	formatter, err := output.LookupFormatter(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown report format", err)
		return
	}
	in, slabs, ok := h.decodeProjection(w, r)
	if !ok {
		return
	}

	result := h.Engine.Project(r.Context(), in, slabs)
	data, err := formatter.Format(output.NewReport(in, slabs, result))
	if err != nil {
		h.Logger.Errorf("format %s report: %v", formatter.Name(), err)
		writeError(w, http.StatusInternalServerError, "Failed to render report", err)
		return
	}

	w.Header().Set("Content-Type", output.ContentType(formatter.Name()))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="lease_vs_buy.%s"`, output.Extension(formatter.Name())))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// =============================================================================
// SCENARIOS
// =============================================================================

// SaveScenario stores a named scenario.
// POST /api/scenarios
func (h *Handler) SaveScenario(w http.ResponseWriter, r *http.Request) {
	req := SaveScenarioRequest{Input: domain.DefaultInput()}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		req.Name = "Untitled scenario"
	}
	if err := h.Parser.ValidateInput(&req.Input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input", err)
		return
	}
	slabs, err := resolveSlabs(req.Slabs, req.Permissive || permissiveQuery(r))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid slab table", err)
		return
	}

	saved, err := h.Store.SaveScenario(r.Context(), domain.Scenario{Name: req.Name, Input: req.Input, Slabs: slabs})
	if err != nil {
		h.Logger.Errorf("save scenario: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save scenario", err)
		return
	}
	writeJSON(w, http.StatusCreated, toScenarioDTO(saved))
}

// ListScenarios returns all saved scenarios, newest first.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.Store.ListScenarios(r.Context())
	if err != nil {
		h.Logger.Errorf("list scenarios: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list scenarios", err)
		return
	}
	dtos := make([]ScenarioDTO, len(scenarios))
	for i, sc := range scenarios {
		dtos[i] = toScenarioDTO(sc)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetScenario returns one saved scenario.
// GET /api/scenarios/{id}
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.loadScenario(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toScenarioDTO(*sc))
}

// ProjectScenario runs the projection of a saved scenario with its own slabs.
// GET /api/scenarios/{id}/projection
func (h *Handler) ProjectScenario(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.loadScenario(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.project(r, sc.Input, sc.Slabs))
}

// DeleteScenario removes a saved scenario.
// DELETE /api/scenarios/{id}
func (h *Handler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteScenario(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Scenario not found", nil)
		return
	}
	if err != nil {
		h.Logger.Errorf("delete scenario: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete scenario", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) loadScenario(w http.ResponseWriter, r *http.Request) (*domain.Scenario, bool) {
	sc, err := h.Store.GetScenario(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Scenario not found", nil)
		return nil, false
	}
	if err != nil {
		h.Logger.Errorf("get scenario: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return nil, false
	}
	return sc, true
}

// decodeProjection reads a ProjectionRequest and resolves its slab table.
// It writes the error response itself and reports whether to continue.
func (h *Handler) decodeProjection(w http.ResponseWriter, r *http.Request) (domain.ProjectionInput, domain.SlabTable, bool) {
	req := ProjectionRequest{Input: domain.DefaultInput()}
	if !decodeBody(w, r, &req) {
		return domain.ProjectionInput{}, nil, false
	}
	if err := h.Parser.ValidateInput(&req.Input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input", err)
		return domain.ProjectionInput{}, nil, false
	}
	slabs, err := resolveSlabs(req.Slabs, req.Permissive || permissiveQuery(r))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid slab table", err)
		return domain.ProjectionInput{}, nil, false
	}
	return req.Input, slabs, true
}

func (h *Handler) project(r *http.Request, in domain.ProjectionInput, slabs domain.SlabTable) ProjectionResponse {
	result := h.Engine.Project(r.Context(), in, slabs)
	return ProjectionResponse{
		Input:       in,
		Slabs:       slabs,
		Result:      result,
		Verdict:     calculation.AnalyzeResult(result),
		Composition: calculation.ComposeCosts(in, result),
		ShareQuery:  config.EncodeQuery(in).Encode(),
	}
}

// resolveSlabs returns the default table for an empty request, the rows
// as given in permissive mode, and a validated table otherwise.
func resolveSlabs(rows []domain.SlabRow, permissive bool) (domain.SlabTable, error) {
	if len(rows) == 0 {
		return domain.DefaultSlabTable(), nil
	}
	if permissive {
		return domain.SlabTable(rows).Clone(), nil
	}
	return domain.ParseSlabTable(rows)
}

func permissiveQuery(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("permissive"))
	return err == nil && v
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

func toScenarioDTO(sc domain.Scenario) ScenarioDTO {
	return ScenarioDTO{
		ID:         sc.ID,
		Name:       sc.Name,
		Input:      sc.Input,
		Slabs:      sc.Slabs,
		CreatedAt:  sc.CreatedAt.Format(time.RFC3339),
		ShareQuery: config.EncodeQuery(sc.Input).Encode(),
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
