package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/batch-service/internal/ports"
)

// Compile-time check that WebhookNotifier implements ports.Notifier.
var _ ports.Notifier = (*WebhookNotifier)(nil)

// Poster sends a JSON document to a path on a configured base URL.
// Implemented by *httpclient.Client.
type Poster interface {
	PostJSON(ctx context.Context, path string, payload any) error
}

// HealthPoster is a Poster that also reports its own health, such as a
// client guarded by a circuit breaker.
type HealthPoster interface {
	Poster
	ports.HealthChecker
}

// WebhookNotifier POSTs each notification asynchronously. Delivery runs on a
// context detached from the triggering request so that a finished request
// does not cancel it; each delivery is bounded by its own timeout. Failures
// are logged and otherwise ignored.
type WebhookNotifier struct {
	client  HealthPoster
	path    string
	timeout time.Duration
	logger  *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewWebhookNotifier creates a WebhookNotifier that posts to path through
// client. A nil logger discards output.
func NewWebhookNotifier(client HealthPoster, path string, timeout time.Duration, logger *slog.Logger) *WebhookNotifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &WebhookNotifier{
		client:  client,
		path:    path,
		timeout: timeout,
		logger:  logger,
	}
}

// Notify implements ports.Notifier. It returns immediately. Notifications
// arriving after Close are dropped.
func (w *WebhookNotifier) Notify(ctx context.Context, note ports.Notification) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.logger.DebugContext(ctx, "notification dropped after close",
			slog.String("entity", note.Entity),
		)
		return
	}
	w.wg.Add(1)
	w.mu.Unlock()

	deliverCtx := context.WithoutCancel(ctx)
	go func() {
		defer w.wg.Done()

		ctx, cancel := context.WithTimeout(deliverCtx, w.timeout)
		defer cancel()

		if err := w.client.PostJSON(ctx, w.path, note); err != nil {
			w.logger.WarnContext(ctx, "notification webhook delivery failed",
				slog.String("operation", "Notify"),
				slog.String("entity", note.Entity),
				slog.Any("error", err),
			)
		}
	}()
}

// Close stops accepting notifications and waits for in-flight deliveries
// to finish or ctx to end, whichever comes first.
func (w *WebhookNotifier) Close(ctx context.Context) error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Name implements ports.HealthChecker.
func (w *WebhookNotifier) Name() string {
	return w.client.Name()
}

// HealthCheck implements ports.HealthChecker by delegating to the client.
func (w *WebhookNotifier) HealthCheck(ctx context.Context) error {
	return w.client.HealthCheck(ctx)
}
