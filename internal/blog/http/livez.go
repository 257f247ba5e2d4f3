package http

import (
	"net/http"
	"time"

	"github.com/quillworks/quill/pkg/blogsdk"
	"github.com/quillworks/quill/pkg/httpx"
)

// LivezHandler always reports ok while the process is up.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, blogsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
