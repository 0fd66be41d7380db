package api

import (
	"encoding/json"
	"net/http"

	"github.com/parsa000721/records/models"
)

// HealthCheckHandler reports that the process is up
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.HealthCheckResponse{Alive: true})
}
