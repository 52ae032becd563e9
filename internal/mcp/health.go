package mcp

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse represents the JSON response from the health check endpoint.
type HealthResponse struct {
	Status      string `json:"status"`
	Collections int    `json:"collections"`
	Endpoints   int    `json:"endpoints"`
	Timestamp   string `json:"timestamp"`
}

// StatsProvider reports index counters for the health endpoint.
// The endpoint index implements this via its Stats() method.
type StatsProvider interface {
	Stats() (collections, endpoints int)
}

// NewHealthHandler creates an HTTP handler for the /health endpoint. The
// index is in-process memory, so the server is healthy whenever it answers.
func NewHealthHandler(store StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collections, endpoints := store.Stats()

		response := HealthResponse{
			Status:      "healthy",
			Collections: collections,
			Endpoints:   endpoints,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
	}
}
