package dto

const (
	DatabaseConnected     = "connected"
	DatabaseDisconnected  = "disconnected"
	DatabaseNotConfigured = "not configured"
)

type RootResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}

type HealthResponse struct {
	Status    string   `json:"status"`
	Database  string   `json:"database"`
	Endpoints []string `json:"endpoints"`
}
