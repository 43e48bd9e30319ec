package http

import (
	"net/http"
	"time"

	"github.com/lagoshomes/homefind/pkg/httpx"
)

// LivezHandler answers liveness probes. Always 200 while the process runs.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
