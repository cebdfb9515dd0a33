// Package month defines the leaf tier of the hierarchy: a numbered, priced
// period of a Course.
package month

import (
	"time"

	"github.com/shopspring/decimal"
)

// Month belongs to the Course identified by CourseID. Both Name and Number
// are unique within that course.
type Month struct {
	ID        string
	Name      string
	Number    int
	CourseID  string
	Payment   decimal.Decimal
	CreatedAt time.Time
}

// Draft holds the caller-supplied fields of a Month that does not exist yet.
type Draft struct {
	Name     string
	Number   int
	CourseID string
	Payment  decimal.Decimal
}

// Patch carries the fields of a Month that an update may change. Number and
// CourseID are fixed at creation.
type Patch struct {
	Name    *string
	Payment *decimal.Decimal
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Payment == nil
}

// Apply returns a copy of m with the patch applied.
func (p Patch) Apply(m Month) Month {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Payment != nil {
		m.Payment = *p.Payment
	}
	return m
}
