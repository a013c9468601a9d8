package httpx

import (
	"errors"
	"net/http"

	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	"github.com/shanuka19697/LMS-sub001/internal/service"
)

// PaperMarkHandlers provides HTTP handlers for per-student paper marks.
type PaperMarkHandlers struct {
	Svc *service.PaperMarkService
}

// Create handles HTTP requests to record a student's marks for a paper.
func (h *PaperMarkHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePaperMarkRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	mark, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, mark)
}

// ListByPaper handles HTTP requests to list all marks recorded for one
// paper. GET /api/admin/paper-marks?paper_id=<id>.
func (h *PaperMarkHandlers) ListByPaper(w http.ResponseWriter, r *http.Request) {
	paperID := r.URL.Query().Get("paper_id")
	if paperID == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_query", Err: errors.New("paper_id is required")},
		)
		return
	}
	limit, offset := ParseLimitOffset(r, defaultListLimit, maxListLimit)

	marks, err := h.Svc.ListByPaper(r.Context(), paperID, limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"paper_marks": marks,
		"limit":       limit,
		"offset":      offset,
	})
}

// GetByID handles HTTP requests to get one mark record by ID.
func (h *PaperMarkHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("paper mark id is required")},
		)
		return
	}

	mark, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, mark)
}

// Update handles HTTP requests to correct a mark record.
func (h *PaperMarkHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("paper mark id is required")},
		)
		return
	}

	var req model.UpdatePaperMarkRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	mark, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, mark)
}

// Delete handles HTTP requests to delete a mark record.
func (h *PaperMarkHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("paper mark id is required")},
		)
		return
	}

	deleted, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if !deleted {
		WriteError(
			w,
			ErrorParams{Code: http.StatusNotFound, ErrCode: "paper_mark_not_found", Err: errors.New("paper mark not found")},
		)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
