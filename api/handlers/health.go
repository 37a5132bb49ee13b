// ABOUTME: Liveness endpoint for the Huma API
// ABOUTME: Returns service status and version for load balancer probes

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler handles the liveness probe
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getHealth",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Service liveness check",
		Tags:        []string{"Health"},
	}, h.Get)
}

// GetHealthOutput defines the output for the Get operation
type GetHealthOutput struct {
	Body struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
}

// Get handles the GET /api/health endpoint
func (h *HealthHandler) Get(ctx context.Context, input *struct{}) (*GetHealthOutput, error) {
	output := &GetHealthOutput{}
	output.Body.Status = "ok"
	output.Body.Version = h.version
	return output, nil
}
