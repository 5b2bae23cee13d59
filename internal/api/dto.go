/*
dto.go - Request and response bodies of the lease vs buy API

NAMING CONVENTION:
  - *Request: request bodies from clients
  - *DTO: resources returned to clients
  - *Response: composite responses

Validation happens in handlers; these types only carry data.
*/
package api

import (
	"github.com/rpgo/carlease-calculator/internal/calculation"
	"github.com/rpgo/carlease-calculator/internal/domain"
)

// ProjectionRequest is the body of POST /api/projections and POST /api/reports/{format}.
// Input fields left out of the body keep their default values.
type ProjectionRequest struct {
	Input      domain.ProjectionInput `json:"input"`
	Slabs      []domain.SlabRow       `json:"slabs,omitempty"`
	Permissive bool                   `json:"permissive,omitempty"`
}

// ProjectionResponse is a projection with its verdict and cost breakdown.
type ProjectionResponse struct {
	Input       domain.ProjectionInput      `json:"input"`
	Slabs       domain.SlabTable            `json:"slabs"`
	Result      domain.ProjectionResult     `json:"result"`
	Verdict     calculation.Verdict         `json:"verdict"`
	Composition calculation.CostComposition `json:"composition"`
	ShareQuery  string                      `json:"share_query"`
}

// DefaultsResponse seeds a fresh calculator form.
type DefaultsResponse struct {
	Input      domain.ProjectionInput `json:"input"`
	Slabs      domain.SlabTable       `json:"slabs"`
	Perquisite domain.PerquisiteRates `json:"perquisite"`
}

// SaveScenarioRequest is the body of POST /api/scenarios.
type SaveScenarioRequest struct {
	Name       string                 `json:"name"`
	Input      domain.ProjectionInput `json:"input"`
	Slabs      []domain.SlabRow       `json:"slabs,omitempty"`
	Permissive bool                   `json:"permissive,omitempty"`
}

// ScenarioDTO represents a saved scenario in API responses.
type ScenarioDTO struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Input      domain.ProjectionInput `json:"input"`
	Slabs      domain.SlabTable       `json:"slabs"`
	CreatedAt  string                 `json:"created_at"`
	ShareQuery string                 `json:"share_query"`
}

// HealthResponse reports liveness and projection cache counters.
type HealthResponse struct {
	Status      string `json:"status"`
	CacheHits   int64  `json:"cache_hits"`
	CacheMisses int64  `json:"cache_misses"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
