// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/batch-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/batch-service/internal/adapters/http/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Batch     *handlers.BatchHandler
	Course    *handlers.CourseHandler
	Month     *handlers.MonthHandler
	Hierarchy *handlers.HierarchyHandler
	Health    *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. DELETE routes also read
// the caller's confirmation via middleware.Confirmation.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(middlewares...))

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/hierarchy", h.Hierarchy.GetHierarchy)

		confirmed := r.With(middleware.Confirmation())

		r.Get("/batches", h.Batch.ListBatches)
		r.Post("/batches", h.Batch.CreateBatch)
		r.Get("/batches/{id}", h.Batch.GetBatch)
		r.Patch("/batches/{id}", h.Batch.UpdateBatch)
		confirmed.Delete("/batches/{id}", h.Batch.DeleteBatch)

		r.Get("/courses", h.Course.ListCourses)
		r.Post("/courses", h.Course.CreateCourse)
		r.Get("/courses/{id}", h.Course.GetCourse)
		r.Patch("/courses/{id}", h.Course.UpdateCourse)
		confirmed.Delete("/courses/{id}", h.Course.DeleteCourse)

		r.Get("/months", h.Month.ListMonths)
		r.Post("/months", h.Month.CreateMonth)
		r.Get("/months/{id}", h.Month.GetMonth)
		r.Patch("/months/{id}", h.Month.UpdateMonth)
		confirmed.Delete("/months/{id}", h.Month.DeleteMonth)
	})

	return r
}
