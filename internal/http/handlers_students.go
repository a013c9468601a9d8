// Package httpx provides HTTP handlers and middleware for the LMS API.
package httpx

import (
	"errors"
	"net/http"

	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	"github.com/shanuka19697/LMS-sub001/internal/service"
)

// StudentHandlers provides HTTP handlers for student account management.
type StudentHandlers struct {
	Svc *service.StudentService
}

// Create handles HTTP requests to create a student account.
func (h *StudentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateStudentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	student, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, student)
}

// List handles HTTP requests to list students with pagination.
func (h *StudentHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultListLimit, maxListLimit)

	students, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"students": students,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetByID handles HTTP requests to get a student by ID.
func (h *StudentHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("student id is required")},
		)
		return
	}

	student, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, student)
}

// Update handles HTTP requests to update a student's profile fields.
func (h *StudentHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("student id is required")},
		)
		return
	}

	var req model.UpdateStudentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	student, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, student)
}

// resetPasswordRequest is the body of password reset endpoints.
type resetPasswordRequest struct {
	Password string `json:"password"`
}

// ResetPassword handles HTTP requests to replace a student's password.
func (h *StudentHandlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("student id is required")},
		)
		return
	}

	var req resetPasswordRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.ResetPassword(r.Context(), id, req.Password); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// Delete handles HTTP requests to delete a student.
func (h *StudentHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("student id is required")},
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
			ErrorParams{Code: http.StatusNotFound, ErrCode: "student_not_found", Err: errors.New("student not found")},
		)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
