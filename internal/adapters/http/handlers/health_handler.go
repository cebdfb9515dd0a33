package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/batch-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"

	checkHierarchy       = "hierarchy"
	hierarchyUnpublished = "view not yet published"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	view     ports.HierarchyViewer
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
// When view is non-nil, readiness also requires that a hierarchy view has been
// published and reports its version.
func NewHealthHandler(registry ports.HealthRegistry, view ports.HierarchyViewer) *HealthHandler {
	return &HealthHandler{registry: registry, view: view}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if all checks pass and the
// hierarchy view has been published, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			healthy = false
		} else {
			checks[name] = statusOK
		}
	}

	body := map[string]any{"checks": checks}

	if h.view != nil {
		v := h.view.Current()
		if v.Version == 0 {
			checks[checkHierarchy] = hierarchyUnpublished
			healthy = false
		} else {
			checks[checkHierarchy] = statusOK
			body["hierarchy"] = map[string]any{
				"version":      v.Version,
				"refreshed_at": v.RefreshedAt.UTC().Format(time.RFC3339),
			}
		}
	}

	body["status"] = statusReady
	code := http.StatusOK
	if !healthy {
		body["status"] = statusNotReady
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, body)
}
