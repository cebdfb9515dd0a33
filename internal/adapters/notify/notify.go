// Package notify delivers lifecycle feedback to users. The log notifier is
// always active; the webhook notifier forwards the same notifications to an
// HTTP endpoint through the instrumented client.
package notify

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/batch-service/internal/ports"
)

// Compile-time checks that the notifiers implement ports.Notifier.
var (
	_ ports.Notifier = (*LogNotifier)(nil)
	_ ports.Notifier = Multi(nil)
)

// LogNotifier writes notifications to a structured logger. Success is logged
// at info and failure at warn, since a rejected request is not a service
// fault.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier. A nil logger discards output.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogNotifier{logger: logger}
}

// Notify implements ports.Notifier.
func (n *LogNotifier) Notify(ctx context.Context, note ports.Notification) {
	level := slog.LevelInfo
	if note.Level == ports.NotifyError {
		level = slog.LevelWarn
	}
	n.logger.Log(ctx, level, note.Message,
		slog.String("notification", string(note.Level)),
		slog.String("entity", note.Entity),
		slog.String("operation", note.Operation),
	)
}

// Multi fans a notification out to every notifier in order.
type Multi []ports.Notifier

// Notify implements ports.Notifier.
func (m Multi) Notify(ctx context.Context, note ports.Notification) {
	for _, n := range m {
		n.Notify(ctx, note)
	}
}
