package httpx

import (
	"errors"
	"net/http"

	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	"github.com/shanuka19697/LMS-sub001/internal/service"
)

// AdminHandlers provides HTTP handlers for staff account management.
type AdminHandlers struct {
	Svc *service.AdminService
}

// Create handles HTTP requests to create an admin account.
func (h *AdminHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAdminRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	admin, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, admin)
}

// List handles HTTP requests to list admins with pagination.
func (h *AdminHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultListLimit, maxListLimit)

	admins, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"admins": admins,
		"limit":  limit,
		"offset": offset,
	})
}

// GetByID handles HTTP requests to get an admin by ID.
func (h *AdminHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("admin id is required")},
		)
		return
	}

	admin, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, admin)
}

// Update handles HTTP requests to update an admin's name or role.
func (h *AdminHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("admin id is required")},
		)
		return
	}

	var req model.UpdateAdminRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	admin, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, admin)
}

// ResetPassword handles HTTP requests to replace an admin's password.
// The route is keyed by username to match credential resets done from
// the command line.
func (h *AdminHandlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("admin username is required")},
		)
		return
	}

	var req resetPasswordRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.ResetPassword(r.Context(), username, req.Password); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// Delete handles HTTP requests to delete an admin.
func (h *AdminHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("admin id is required")},
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
			ErrorParams{Code: http.StatusNotFound, ErrCode: "admin_not_found", Err: errors.New("admin not found")},
		)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
