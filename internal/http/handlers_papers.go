package httpx

import (
	"errors"
	"net/http"

	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	"github.com/shanuka19697/LMS-sub001/internal/service"
)

// PaperHandlers provides HTTP handlers for past papers.
type PaperHandlers struct {
	Svc *service.PaperService
}

// Create handles HTTP requests to create a paper.
func (h *PaperHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePaperRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	paper, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, paper)
}

// List handles HTTP requests to list papers, newest year first.
func (h *PaperHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultListLimit, maxListLimit)

	papers, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"papers": papers,
		"limit":  limit,
		"offset": offset,
	})
}

// GetByID handles HTTP requests to get a paper by ID.
func (h *PaperHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("paper id is required")},
		)
		return
	}

	paper, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, paper)
}

// Update handles HTTP requests to update a paper.
func (h *PaperHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("paper id is required")},
		)
		return
	}

	var req model.UpdatePaperRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	paper, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, paper)
}

// Delete handles HTTP requests to delete a paper.
func (h *PaperHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("paper id is required")},
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
			ErrorParams{Code: http.StatusNotFound, ErrCode: "paper_not_found", Err: errors.New("paper not found")},
		)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
