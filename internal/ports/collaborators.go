package ports

import "context"

// Sanitizer strips markup and other unsafe content from free text before it
// is validated or stored.
type Sanitizer interface {
	Sanitize(s string) string
}

// NotificationLevel distinguishes success feedback from failure feedback.
type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
)

// Notification is user-facing feedback about a lifecycle operation.
type Notification struct {
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	Entity    string            `json:"entity"`
	Operation string            `json:"operation"`
}

// Notifier delivers feedback to the user. Delivery is best effort: Notify
// never fails the operation that triggered it.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Confirmer asks the user to approve a destructive action and reports the
// answer. Implementations must return false when no answer is available.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}
