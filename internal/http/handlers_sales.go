package httpx

import (
	"errors"
	"net/http"

	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	"github.com/shanuka19697/LMS-sub001/internal/service"
)

// SaleHandlers provides HTTP handlers for the sales ledger. Sales are
// append-only from the admin side: they can be recorded and voided but
// never edited.
type SaleHandlers struct {
	Svc *service.SaleService
}

// Create handles HTTP requests to record a sale on a student's behalf,
// for payments taken outside the site.
func (h *SaleHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSaleRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	sale, err := h.Svc.Purchase(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, sale)
}

// List handles HTTP requests to list sales with pagination. An optional
// student_id query parameter narrows the ledger to one student.
func (h *SaleHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultListLimit, maxListLimit)

	var (
		sales []*model.Sale
		err   error
	)
	if studentID := r.URL.Query().Get("student_id"); studentID != "" {
		sales, err = h.Svc.ListByStudent(r.Context(), studentID, limit, offset)
	} else {
		sales, err = h.Svc.List(r.Context(), limit, offset)
	}
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"sales":  sales,
		"limit":  limit,
		"offset": offset,
	})
}

// GetByID handles HTTP requests to get a sale by ID.
func (h *SaleHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("sale id is required")},
		)
		return
	}

	sale, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, sale)
}

// Delete handles HTTP requests to void a sale.
func (h *SaleHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("sale id is required")},
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
			ErrorParams{Code: http.StatusNotFound, ErrCode: "sale_not_found", Err: errors.New("sale not found")},
		)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
