package middleware

import (
	"context"
	"net/http"
	"strings"
)

const (
	headerConfirm = "X-Confirm"
	queryConfirm  = "confirm"
)

type confirmKey struct{}

// WithConfirmation returns a new context recording whether the caller has
// confirmed a destructive action.
func WithConfirmation(ctx context.Context, confirmed bool) context.Context {
	return context.WithValue(ctx, confirmKey{}, confirmed)
}

// ConfirmedFromContext reports whether the request carried a confirmation.
// Returns false if Confirmation did not run.
func ConfirmedFromContext(ctx context.Context) bool {
	ok, _ := ctx.Value(confirmKey{}).(bool)
	return ok
}

// Confirmation returns middleware that reads the caller's answer to a
// confirmation prompt from the X-Confirm header or the confirm query
// parameter and stores it in the request context. "yes", "true" and "1"
// (case-insensitive) count as confirmed; anything else, including absence,
// declines.
func Confirmation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			answer := r.Header.Get(headerConfirm)
			if answer == "" {
				answer = r.URL.Query().Get(queryConfirm)
			}
			ctx := WithConfirmation(r.Context(), affirmative(answer))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func affirmative(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "true", "1":
		return true
	default:
		return false
	}
}
