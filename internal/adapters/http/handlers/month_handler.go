package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/batch-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/batch-service/internal/domain/hierarchy"
	"github.com/jsamuelsen11/batch-service/internal/ports"
)

// MonthHandler handles HTTP requests for months.
type MonthHandler struct {
	svc  ports.LifecycleService
	view ports.HierarchyViewer
}

// NewMonthHandler creates a new MonthHandler.
func NewMonthHandler(svc ports.LifecycleService, view ports.HierarchyViewer) *MonthHandler {
	return &MonthHandler{svc: svc, view: view}
}

// ListMonths handles GET /api/v1/months. The optional course_id query
// parameter restricts the rows to one course.
func (h *MonthHandler) ListMonths(w http.ResponseWriter, r *http.Request) {
	v := h.view.Current()
	if courseID := r.URL.Query().Get("course_id"); courseID != "" {
		rows := make([]hierarchy.MonthRow, 0, len(v.Months))
		for _, m := range v.Months {
			if m.CourseID == courseID {
				rows = append(rows, m)
			}
		}
		v.Months = rows
	}
	writeJSON(w, http.StatusOK, dto.ToMonthListResponse(v))
}

// CreateMonth handles POST /api/v1/months.
func (h *MonthHandler) CreateMonth(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMonthRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateMonth(r.Context(), req.Draft())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToMonthResponse(created))
}

// GetMonth handles GET /api/v1/months/{id}.
func (h *MonthHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	m, err := h.svc.GetMonth(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMonthResponse(m))
}

// UpdateMonth handles PATCH /api/v1/months/{id}. Only name and payment can
// change.
func (h *MonthHandler) UpdateMonth(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateMonthRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	m, changed, err := h.svc.UpdateMonth(r.Context(), id, req.Patch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UpdateResponse[dto.MonthResponse]{
		Item:    dto.ToMonthResponse(m),
		Changed: changed,
	})
}

// DeleteMonth handles DELETE /api/v1/months/{id}.
func (h *MonthHandler) DeleteMonth(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	out, err := h.svc.DeleteMonth(r.Context(), id)
	writeDeleteResult(w, r, id, out, err)
}
