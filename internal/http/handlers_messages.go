package httpx

import (
	"errors"
	"net/http"

	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	"github.com/shanuka19697/LMS-sub001/internal/service"
)

// MessageHandlers provides HTTP handlers for broadcast messages.
type MessageHandlers struct {
	Svc *service.MessageService
}

// Create handles HTTP requests to post a message.
func (h *MessageHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMessageRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	message, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, message)
}

// List handles HTTP requests to list messages, newest first.
func (h *MessageHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultListLimit, maxListLimit)

	messages, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"messages": messages,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetByID handles HTTP requests to get a message by ID.
func (h *MessageHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("message id is required")},
		)
		return
	}

	message, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, message)
}

// Update handles HTTP requests to update a message.
func (h *MessageHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("message id is required")},
		)
		return
	}

	var req model.UpdateMessageRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	message, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, message)
}

// Delete handles HTTP requests to delete a message.
func (h *MessageHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("message id is required")},
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
			ErrorParams{Code: http.StatusNotFound, ErrCode: "message_not_found", Err: errors.New("message not found")},
		)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
