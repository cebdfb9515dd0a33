// Package hierarchy builds the derived, read-only presentation of the
// Batch, Course, Month tree: flat row lists with resolved parent names and the
// option sets used to pick a parent when creating a child.
package hierarchy

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/batch-service/internal/domain/course"
	"github.com/jsamuelsen11/batch-service/internal/domain/month"
)

// Placeholders shown when a parent reference cannot be resolved.
const (
	Unknown      = "Unknown"
	UnknownBatch = "Unknown Batch"
)

// BatchRow is a Batch as listed.
type BatchRow struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// CourseRow is a Course with its batch name resolved.
type CourseRow struct {
	ID        string
	Name      string
	BatchID   string
	BatchName string
	CreatedAt time.Time
}

// MonthRow is a Month with its course and batch names resolved.
type MonthRow struct {
	ID         string
	Name       string
	Number     int
	Payment    decimal.Decimal
	CourseID   string
	CourseName string
	BatchName  string
	CreatedAt  time.Time
}

// Option is one selectable parent in a create form.
type Option struct {
	Value string
	Label string
}

// View is a consistent snapshot of the whole hierarchy. Version increases by
// one on every publish.
type View struct {
	Batches       []BatchRow
	Courses       []CourseRow
	Months        []MonthRow
	BatchOptions  []Option
	CourseOptions []Option
	Version       uint64
	RefreshedAt   time.Time
}

// Build derives the rows and option sets from the three record lists. Input
// order is preserved. Version and RefreshedAt are left for the publisher.
func Build(batches []batch.Batch, courses []course.Course, months []month.Month) View {
	batchNames := make(map[string]string, len(batches))
	for _, b := range batches {
		batchNames[b.ID] = b.Name
	}

	type courseRef struct {
		name    string
		batchID string
	}
	courseRefs := make(map[string]courseRef, len(courses))
	for _, c := range courses {
		courseRefs[c.ID] = courseRef{name: c.Name, batchID: c.BatchID}
	}

	v := View{
		Batches:       make([]BatchRow, 0, len(batches)),
		Courses:       make([]CourseRow, 0, len(courses)),
		Months:        make([]MonthRow, 0, len(months)),
		BatchOptions:  make([]Option, 0, len(batches)),
		CourseOptions: make([]Option, 0, len(courses)),
	}

	for _, b := range batches {
		v.Batches = append(v.Batches, BatchRow{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt})
		v.BatchOptions = append(v.BatchOptions, Option{Value: b.ID, Label: b.Name})
	}

	for _, c := range courses {
		rowName, labelName := Unknown, UnknownBatch
		if name, ok := batchNames[c.BatchID]; ok {
			rowName, labelName = name, name
		}
		v.Courses = append(v.Courses, CourseRow{
			ID:        c.ID,
			Name:      c.Name,
			BatchID:   c.BatchID,
			BatchName: rowName,
			CreatedAt: c.CreatedAt,
		})
		v.CourseOptions = append(v.CourseOptions, Option{
			Value: c.ID,
			Label: c.Name + " (" + labelName + ")",
		})
	}

	for _, m := range months {
		courseName, batchName := Unknown, Unknown
		if ref, ok := courseRefs[m.CourseID]; ok {
			courseName = ref.name
			if name, ok := batchNames[ref.batchID]; ok {
				batchName = name
			}
		}
		v.Months = append(v.Months, MonthRow{
			ID:         m.ID,
			Name:       m.Name,
			Number:     m.Number,
			Payment:    m.Payment,
			CourseID:   m.CourseID,
			CourseName: courseName,
			BatchName:  batchName,
			CreatedAt:  m.CreatedAt,
		})
	}

	return v
}
