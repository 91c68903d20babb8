// ABOUTME: Domain model for one (model, hosting provider) pairing
// ABOUTME: Rows are produced once by provider expansion and never mutated afterwards

package domain

// ProviderRow represents one hosting provider's offering of a discovered model.
type ProviderRow struct {
	ModelName string `json:"model_name"`
	ModelURL  string `json:"model_url"`
	ModelID   string `json:"model_id"`

	// Provider is always non-empty; endpoints without a provider name produce no row
	Provider string `json:"provider"`

	ContextLength *int `json:"context_length,omitempty"`

	// Prices are kept as the opaque strings the catalog reported
	PriceInputToken  *string `json:"price_input_token,omitempty"`
	PriceOutputToken *string `json:"price_output_token,omitempty"`

	// Latency and Throughput are only set when the catalog reports them
	Latency    *float64 `json:"latency,omitempty"`
	Throughput *float64 `json:"throughput,omitempty"`

	CreationDate *string `json:"creation_date,omitempty"`
}
