package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const apiPrefix = "/api/v1/"

// Entity labels derived from the API path.
const (
	EntityBatch     = "batch"
	EntityCourse    = "course"
	EntityMonth     = "month"
	EntityHierarchy = "hierarchy"
)

// routeUnmatched labels requests that no route handled, keeping metric
// cardinality bounded.
const routeUnmatched = "unmatched"

// EntityFromPath returns the hierarchy entity an API path addresses, or ""
// for paths outside /api/v1 such as the health endpoints.
func EntityFromPath(path string) string {
	rest, ok := strings.CutPrefix(path, apiPrefix)
	if !ok {
		return ""
	}
	collection, _, _ := strings.Cut(rest, "/")
	switch collection {
	case "batches":
		return EntityBatch
	case "courses":
		return EntityCourse
	case "months":
		return EntityMonth
	case "hierarchy":
		return EntityHierarchy
	default:
		return ""
	}
}

// routePattern returns the chi pattern that matched r, such as
// "/api/v1/batches/{id}". It is only populated once routing has run, so
// middleware must call it after the downstream handler returns. Returns ""
// outside a chi router or when nothing matched.
func routePattern(r *http.Request) string {
	rc := chi.RouteContext(r.Context())
	if rc == nil {
		return ""
	}
	return rc.RoutePattern()
}
