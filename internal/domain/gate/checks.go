package gate

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/batch-service/internal/domain"
	"github.com/jsamuelsen11/batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/batch-service/internal/domain/course"
	"github.com/jsamuelsen11/batch-service/internal/domain/month"
)

// Field names reported in rejections. They match the JSON request fields.
const (
	FieldName        = "name"
	FieldBatchID     = "batch_id"
	FieldCourseID    = "course_id"
	FieldMonthNumber = "month_number"
	FieldPayment     = "payment"
)

const (
	msgBatchNameRequired  = "Please enter batch name"
	msgCourseNameRequired = "Please enter course name"
	msgMonthNameRequired  = "Please enter month name"
	msgBatchRequired      = "Please select a batch"
	msgCourseRequired     = "Please select a course"
	msgNumberPositive     = "Month number must be a positive whole number"
	msgPaymentPositive    = "Payment must be greater than zero"
	msgDuplicateBatch     = "Batch with this name already exists"
	msgDuplicateCourse    = "Course with this name already exists in the selected batch"
	msgDuplicateMonthName = "Month with this name already exists for the selected course"
	msgDuplicateMonthNum  = "Month with this number already exists for the selected course"
)

// CanCreateBatch checks a new batch name against every existing batch.
func CanCreateBatch(existing []batch.Batch, name string) Verdict {
	name = strings.TrimSpace(name)
	if name == "" {
		return reject(domain.ReasonEmptyField, FieldName, msgBatchNameRequired)
	}
	if batchNameTaken(existing, name, "") {
		return reject(domain.ReasonDuplicateName, FieldName, msgDuplicateBatch)
	}
	return admit()
}

// CanRenameBatch checks a proposed new name for current. The batch's own
// record is ignored during the collision scan, so a change of letter case
// alone is admitted.
func CanRenameBatch(existing []batch.Batch, current batch.Batch, newName string) Verdict {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return reject(domain.ReasonEmptyField, FieldName, msgBatchNameRequired)
	}
	if newName == current.Name {
		return unchanged()
	}
	if batchNameTaken(existing, newName, current.ID) {
		return reject(domain.ReasonDuplicateName, FieldName, msgDuplicateBatch)
	}
	return admit()
}

// CanCreateCourse checks a new course against the courses already in
// batchID. Siblings from other batches are ignored.
func CanCreateCourse(siblings []course.Course, name, batchID string) Verdict {
	name = strings.TrimSpace(name)
	batchID = strings.TrimSpace(batchID)
	if name == "" {
		return reject(domain.ReasonEmptyField, FieldName, msgCourseNameRequired)
	}
	if batchID == "" {
		return reject(domain.ReasonEmptyField, FieldBatchID, msgBatchRequired)
	}
	if courseNameTaken(siblings, batchID, name, "") {
		return reject(domain.ReasonDuplicateName, FieldName, msgDuplicateCourse)
	}
	return admit()
}

// CanRenameCourse checks a proposed new name for current within its own
// batch.
func CanRenameCourse(siblings []course.Course, current course.Course, newName string) Verdict {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return reject(domain.ReasonEmptyField, FieldName, msgCourseNameRequired)
	}
	if newName == current.Name {
		return unchanged()
	}
	if courseNameTaken(siblings, current.BatchID, newName, current.ID) {
		return reject(domain.ReasonDuplicateName, FieldName, msgDuplicateCourse)
	}
	return admit()
}

// CanCreateMonth checks a new month against the months already in its
// course. Name and number are independent uniqueness axes: a collision on
// either one rejects the month.
func CanCreateMonth(siblings []month.Month, d month.Draft) Verdict {
	name := strings.TrimSpace(d.Name)
	courseID := strings.TrimSpace(d.CourseID)

	switch {
	case name == "":
		return reject(domain.ReasonEmptyField, FieldName, msgMonthNameRequired)
	case courseID == "":
		return reject(domain.ReasonEmptyField, FieldCourseID, msgCourseRequired)
	case d.Number <= 0:
		return reject(domain.ReasonInvalidNumeric, FieldMonthNumber, msgNumberPositive)
	case !d.Payment.IsPositive():
		return reject(domain.ReasonInvalidNumeric, FieldPayment, msgPaymentPositive)
	}

	if monthNameTaken(siblings, courseID, name, "") {
		return reject(domain.ReasonDuplicateName, FieldName, msgDuplicateMonthName)
	}
	for _, m := range siblings {
		if m.CourseID == courseID && m.Number == d.Number {
			return reject(domain.ReasonDuplicateNumber, FieldMonthNumber, msgDuplicateMonthNum)
		}
	}
	return admit()
}

// CanRenameOrRepriceMonth checks a proposed name and payment for current.
// The month number cannot change after creation, so only the name axis is
// rescanned for collisions.
func CanRenameOrRepriceMonth(siblings []month.Month, current month.Month, newName string, newPayment decimal.Decimal) Verdict {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return reject(domain.ReasonEmptyField, FieldName, msgMonthNameRequired)
	}
	if !newPayment.IsPositive() {
		return reject(domain.ReasonInvalidNumeric, FieldPayment, msgPaymentPositive)
	}

	renamed := newName != current.Name
	if !renamed && newPayment.Equal(current.Payment) {
		return unchanged()
	}
	if renamed && monthNameTaken(siblings, current.CourseID, newName, current.ID) {
		return reject(domain.ReasonDuplicateName, FieldName, msgDuplicateMonthName)
	}
	return admit()
}

func batchNameTaken(existing []batch.Batch, name, selfID string) bool {
	for _, b := range existing {
		if b.ID != selfID && domain.SameName(b.Name, name) {
			return true
		}
	}
	return false
}

func courseNameTaken(siblings []course.Course, batchID, name, selfID string) bool {
	for _, c := range siblings {
		if c.BatchID == batchID && c.ID != selfID && domain.SameName(c.Name, name) {
			return true
		}
	}
	return false
}

func monthNameTaken(siblings []month.Month, courseID, name, selfID string) bool {
	for _, m := range siblings {
		if m.CourseID == courseID && m.ID != selfID && domain.SameName(m.Name, name) {
			return true
		}
	}
	return false
}
