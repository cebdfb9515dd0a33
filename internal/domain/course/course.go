// Package course defines the middle tier of the hierarchy. A Course belongs
// to exactly one Batch by reference and its name is unique within that batch.
package course

import "time"

// Course is owned by the Batch identified by BatchID.
type Course struct {
	ID        string
	Name      string
	BatchID   string
	CreatedAt time.Time
}

// Patch carries the fields of a Course that an update may change. The parent
// batch is fixed at creation.
type Patch struct {
	Name *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil
}

// Apply returns a copy of c with the patch applied.
func (p Patch) Apply(c Course) Course {
	if p.Name != nil {
		c.Name = *p.Name
	}
	return c
}
