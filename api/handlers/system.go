// ABOUTME: System handlers for the Huma API
// ABOUTME: Provides the service banner and liveness endpoints

package handlers

import (
	"context"
	"net/http"

	"opencosts-api/api/dto/responses"

	"github.com/danielgtaylor/huma/v2"
)

// ServiceName is returned by the root endpoint
const ServiceName = "OpenCosts API"

// SystemHandler serves the banner and health endpoints
type SystemHandler struct{}

// NewSystemHandler creates a new system handler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// RegisterRoutes registers the system routes
func (h *SystemHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Service banner",
		Tags:        []string{"System"},
	}, h.Root)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Liveness check",
		Tags:        []string{"System"},
	}, h.Health)
}

// RootOutput defines the output for the Root operation
type RootOutput struct {
	Body responses.MessageResponse
}

// Root handles the GET / endpoint
func (h *SystemHandler) Root(ctx context.Context, input *struct{}) (*RootOutput, error) {
	return &RootOutput{Body: responses.MessageResponse{Message: ServiceName}}, nil
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /health endpoint
func (h *SystemHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: responses.HealthResponse{Status: "healthy"}}, nil
}
