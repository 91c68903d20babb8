// ABOUTME: Models handler for the Huma API
// ABOUTME: Runs a live pipeline and returns rows grouped by author and model

package handlers

import (
	"context"
	"net/http"

	"opencosts-api/core/export"
	"opencosts-api/core/interfaces"
	"opencosts-api/pkg/searchterms"

	"github.com/danielgtaylor/huma/v2"
)

// ModelsHandler serves grouped pricing data from a live run
type ModelsHandler struct {
	pipeline interfaces.PipelineService
	terms    interfaces.TermsSource
}

// NewModelsHandler creates a new models handler
func NewModelsHandler(pipeline interfaces.PipelineService, terms interfaces.TermsSource) *ModelsHandler {
	return &ModelsHandler{
		pipeline: pipeline,
		terms:    terms,
	}
}

// RegisterRoutes registers the models route
func (h *ModelsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listModels",
		Method:      http.MethodGet,
		Path:        "/models",
		Summary:     "List matching models grouped by author",
		Description: "Runs discovery and provider expansion now and returns author -> model -> providers with average prices",
		Tags:        []string{"Pricing"},
	}, h.ListModels)
}

// ListModelsInput defines the input for the ListModels operation
type ListModelsInput struct {
	Terms string `query:"terms" doc:"Comma separated search terms; defaults to the configured terms" example:"Sonnet 4,Kimi K2"`
}

// ListModelsOutput defines the output for the ListModels operation
type ListModelsOutput struct {
	Body []export.AuthorEntry
}

// ListModels handles the GET /models endpoint
func (h *ModelsHandler) ListModels(ctx context.Context, input *ListModelsInput) (*ListModelsOutput, error) {
	terms := searchterms.SplitList(input.Terms)
	if len(terms) == 0 {
		var err error
		if terms, err = h.terms(); err != nil {
			return nil, toHumaError(err)
		}
	}

	snapshot, err := h.pipeline.Run(ctx, terms)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListModelsOutput{Body: export.ToAuthorEntries(snapshot.Rows)}, nil
}
