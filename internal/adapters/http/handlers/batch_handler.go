// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/batch-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/batch-service/internal/ports"
)

// BatchHandler handles HTTP requests for batches.
type BatchHandler struct {
	svc  ports.LifecycleService
	view ports.HierarchyViewer
}

// NewBatchHandler creates a new BatchHandler. Lists are served from the
// published view; everything else goes through the lifecycle service.
func NewBatchHandler(svc ports.LifecycleService, view ports.HierarchyViewer) *BatchHandler {
	return &BatchHandler{svc: svc, view: view}
}

// ListBatches handles GET /api/v1/batches.
func (h *BatchHandler) ListBatches(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToBatchListResponse(h.view.Current()))
}

// CreateBatch handles POST /api/v1/batches.
func (h *BatchHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBatchRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateBatch(r.Context(), req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToBatchResponse(created))
}

// GetBatch handles GET /api/v1/batches/{id}.
func (h *BatchHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	b, err := h.svc.GetBatch(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBatchResponse(b))
}

// UpdateBatch handles PATCH /api/v1/batches/{id}.
func (h *BatchHandler) UpdateBatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateBatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, changed, err := h.svc.UpdateBatch(r.Context(), id, req.Patch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UpdateResponse[dto.BatchResponse]{
		Item:    dto.ToBatchResponse(b),
		Changed: changed,
	})
}

// DeleteBatch handles DELETE /api/v1/batches/{id}. Its courses and their
// months are removed with it.
func (h *BatchHandler) DeleteBatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	out, err := h.svc.DeleteBatch(r.Context(), id)
	writeDeleteResult(w, r, id, out, err)
}
