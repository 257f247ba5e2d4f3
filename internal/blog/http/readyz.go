package http

import (
	"net/http"
	"time"

	"github.com/quillworks/quill/internal/blog/store"
	"github.com/quillworks/quill/pkg/blogsdk"
	"github.com/quillworks/quill/pkg/httpx"
)

// ReadyzHandler reports whether the service can serve traffic, checking the
// database on every probe.
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &blogsdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, blogsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
