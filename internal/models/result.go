package models

// ErrorResponse is the body of every failed request. Details is only set in
// development mode.
type ErrorResponse struct {
	Error   string  `json:"error"`
	Details *string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status      string      `json:"status"`
	Timestamp   string      `json:"timestamp,omitempty"`
	ModelLoaded bool        `json:"model_loaded"`
	Cache       *CacheStats `json:"cache,omitempty"`
	Error       string      `json:"error,omitempty"`
}

type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}
