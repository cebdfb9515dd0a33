package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/batch-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/batch-service/internal/ports"
)

// HierarchyHandler serves the published hierarchy view.
type HierarchyHandler struct {
	view ports.HierarchyViewer
}

// NewHierarchyHandler creates a new HierarchyHandler.
func NewHierarchyHandler(view ports.HierarchyViewer) *HierarchyHandler {
	return &HierarchyHandler{view: view}
}

// GetHierarchy handles GET /api/v1/hierarchy. With refresh=true the view is
// rebuilt from the store before it is returned.
func (h *HierarchyHandler) GetHierarchy(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("refresh") != "true" {
		writeJSON(w, http.StatusOK, dto.ToHierarchyResponse(h.view.Current()))
		return
	}

	v, err := h.view.Refresh(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToHierarchyResponse(v))
}
