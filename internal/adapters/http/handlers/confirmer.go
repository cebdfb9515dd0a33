package handlers

import (
	"context"

	"github.com/jsamuelsen11/batch-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/batch-service/internal/ports"
)

// Compile-time check that RequestConfirmer implements ports.Confirmer.
var _ ports.Confirmer = RequestConfirmer{}

// RequestConfirmer answers confirmation prompts from the current HTTP
// request. The answer is recorded by middleware.Confirmation; without it
// every prompt is declined.
type RequestConfirmer struct{}

// Confirm implements ports.Confirmer.
func (RequestConfirmer) Confirm(ctx context.Context, _ string) bool {
	return middleware.ConfirmedFromContext(ctx)
}
