// Package gate decides whether a proposed create or update of a hierarchy
// entity is admissible. Every check is a pure function over the records it is
// handed: callers pass the current siblings in the relevant scope (all
// batches, the courses of one batch, the months of one course) and receive a
// Verdict. Nothing here reads a store or mutates its arguments.
//
// Names are expected to be normalized (trimmed and sanitized) by the caller;
// the checks trim again so that whitespace-only input is always rejected.
package gate

import (
	"github.com/jsamuelsen11/batch-service/internal/domain"
)

// Verdict is the outcome of an admission check. A zero Verdict admits the
// change. A Verdict with a Reason rejects it. NoOp marks an admitted update
// whose proposed values equal the current ones.
type Verdict struct {
	Reason  domain.Reason
	Field   string
	Message string
	NoOp    bool
}

// Admitted reports whether the proposed change may proceed.
func (v Verdict) Admitted() bool {
	return v.Reason == ""
}

// Err returns nil for an admitted verdict and a *domain.RejectionError
// otherwise.
func (v Verdict) Err() error {
	if v.Admitted() {
		return nil
	}
	return &domain.RejectionError{
		Reason:  v.Reason,
		Field:   v.Field,
		Message: v.Message,
	}
}

func admit() Verdict {
	return Verdict{}
}

func unchanged() Verdict {
	return Verdict{NoOp: true}
}

func reject(reason domain.Reason, field, msg string) Verdict {
	return Verdict{Reason: reason, Field: field, Message: msg}
}
