package models

// HealthResponse is returned by the connectivity probe.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}
