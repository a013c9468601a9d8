package httpx

import (
	"errors"
	"net/http"

	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	"github.com/shanuka19697/LMS-sub001/internal/service"
)

// NotificationHandlers provides HTTP handlers for site notifications.
type NotificationHandlers struct {
	Svc *service.NotificationService
}

// Create handles HTTP requests to publish a notification.
func (h *NotificationHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateNotificationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	notification, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, notification)
}

// List handles HTTP requests to list notifications, newest first.
func (h *NotificationHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultListLimit, maxListLimit)

	notifications, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"notifications": notifications,
		"limit":         limit,
		"offset":        offset,
	})
}

// GetByID handles HTTP requests to get a notification by ID.
func (h *NotificationHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("notification id is required")},
		)
		return
	}

	notification, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, notification)
}

// Update handles HTTP requests to update a notification.
func (h *NotificationHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("notification id is required")},
		)
		return
	}

	var req model.UpdateNotificationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	notification, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, notification)
}

// Delete handles HTTP requests to delete a notification.
func (h *NotificationHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("notification id is required")},
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
			ErrorParams{Code: http.StatusNotFound, ErrCode: "notification_not_found", Err: errors.New("notification not found")},
		)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
