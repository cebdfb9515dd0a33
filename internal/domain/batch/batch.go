// Package batch defines the top-level entity of the hierarchy.
package batch

import "time"

// Batch is the top-level scope. Names are unique across all batches,
// compared case-insensitively.
type Batch struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Patch carries the fields of a Batch that an update may change.
// A nil field is left untouched.
type Patch struct {
	Name *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil
}

// Apply returns a copy of b with the patch applied.
func (p Patch) Apply(b Batch) Batch {
	if p.Name != nil {
		b.Name = *p.Name
	}
	return b
}
