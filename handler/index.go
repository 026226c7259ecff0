package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

// Status is the catalog summary reported at the API root.
type Status struct {
	Products   int `json:"products"`
	Categories int `json:"categories"`
}

// Root answers the API root with a service banner, the catalog summary and
// the process uptime.
func Root(status Status) http.HandlerFunc {
	started := time.Now()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "ok",
			"message": "Crypto Cart API",
			"path":    r.URL.Path,
			"catalog": status,
			"uptime":  time.Since(started).Round(time.Second).String(),
		})
	}
}
