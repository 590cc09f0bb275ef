package models

// HealthResponse is returned by the frontend GET /health endpoint.
type HealthResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`

	// APIBase is the configured backend base URL, empty when unset.
	APIBase string `json:"api_base"`
}
