package httpx

import (
	"errors"
	"net/http"

	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	"github.com/shanuka19697/LMS-sub001/internal/service"
)

// LessonHandlers provides HTTP handlers for the lesson catalogue.
type LessonHandlers struct {
	Svc *service.LessonService
}

// Create handles HTTP requests to create a lesson. The meeting URL in the
// request is decomposed into meeting ID and password before storage.
func (h *LessonHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateLessonRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	lesson, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, lesson)
}

// List handles HTTP requests to list lessons, newest date first.
func (h *LessonHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultListLimit, maxListLimit)

	lessons, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"lessons": lessons,
		"limit":   limit,
		"offset":  offset,
	})
}

// GetByID handles HTTP requests to get a lesson by ID.
func (h *LessonHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("lesson id is required")},
		)
		return
	}

	lesson, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, lesson)
}

// Update handles HTTP requests to update a lesson.
func (h *LessonHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("lesson id is required")},
		)
		return
	}

	var req model.UpdateLessonRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	lesson, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, lesson)
}

// Delete handles HTTP requests to delete a lesson.
func (h *LessonHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("lesson id is required")},
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
			ErrorParams{Code: http.StatusNotFound, ErrCode: "lesson_not_found", Err: errors.New("lesson not found")},
		)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
