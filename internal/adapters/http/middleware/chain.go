package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/batch-service/internal/platform/telemetry"
)

// Chain composes multiple middleware into a single middleware. The first
// argument becomes the outermost middleware (executed first on request,
// last on response). This matches the intuitive reading order:
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is equivalent to:
//
//	Recovery(RequestID(Logging(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Standard returns the inbound pipeline for the lifecycle API in the order
// documented on the package. Confirmation is not included; it applies per
// route to the DELETE endpoints only.
func Standard(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	}
}
