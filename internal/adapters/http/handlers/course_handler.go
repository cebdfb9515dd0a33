package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/batch-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/batch-service/internal/domain/hierarchy"
	"github.com/jsamuelsen11/batch-service/internal/ports"
)

// CourseHandler handles HTTP requests for courses.
type CourseHandler struct {
	svc  ports.LifecycleService
	view ports.HierarchyViewer
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(svc ports.LifecycleService, view ports.HierarchyViewer) *CourseHandler {
	return &CourseHandler{svc: svc, view: view}
}

// ListCourses handles GET /api/v1/courses. The optional batch_id query
// parameter restricts the rows to one batch.
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	v := h.view.Current()
	if batchID := r.URL.Query().Get("batch_id"); batchID != "" {
		rows := make([]hierarchy.CourseRow, 0, len(v.Courses))
		for _, c := range v.Courses {
			if c.BatchID == batchID {
				rows = append(rows, c)
			}
		}
		v.Courses = rows
	}
	writeJSON(w, http.StatusOK, dto.ToCourseListResponse(v))
}

// CreateCourse handles POST /api/v1/courses.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCourseRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateCourse(r.Context(), req.Name, req.BatchID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCourseResponse(created))
}

// GetCourse handles GET /api/v1/courses/{id}.
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	c, err := h.svc.GetCourse(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCourseResponse(c))
}

// UpdateCourse handles PATCH /api/v1/courses/{id}.
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateCourseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, changed, err := h.svc.UpdateCourse(r.Context(), id, req.Patch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UpdateResponse[dto.CourseResponse]{
		Item:    dto.ToCourseResponse(c),
		Changed: changed,
	})
}

// DeleteCourse handles DELETE /api/v1/courses/{id}.
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	out, err := h.svc.DeleteCourse(r.Context(), id)
	writeDeleteResult(w, r, id, out, err)
}
