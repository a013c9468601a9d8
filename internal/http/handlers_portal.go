package httpx

import (
	"errors"
	"net/http"

	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	"github.com/shanuka19697/LMS-sub001/internal/service"
)

// PortalHandlers provides the student-facing JSON API. Every handler
// resolves the acting student from the session carrier; clients never
// pass their own student ID.
type PortalHandlers struct {
	Students *service.StudentService
	Lessons  *service.LessonService
	Marks    *service.PaperMarkService
	Sales    *service.SaleService
	Messages *service.MessageService
	Notices  *service.NotificationService
}

// actingStudent resolves the session subject to the student record. The
// session carries the index number; records are keyed by UUID, so a
// lookup sits between the two.
func (h *PortalHandlers) actingStudent(w http.ResponseWriter, r *http.Request) (*model.Student, bool) {
	sess, ok := GetStudentSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("student session required"),
		})
		return nil, false
	}

	student, err := h.Students.GetByIndexNumber(r.Context(), sess.Subject)
	if err != nil {
		// The account can disappear while its token is still live.
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "account_not_found",
			Err:     errors.New("account no longer exists"),
		})
		return nil, false
	}
	return student, true
}

// Profile returns the acting student's own record.
// GET /api/me.
func (h *PortalHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	student, ok := h.actingStudent(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, student)
}

// ListLessons returns the lesson catalogue with meeting credentials
// blanked on unpurchased lessons.
// GET /api/lessons.
func (h *PortalHandlers) ListLessons(w http.ResponseWriter, r *http.Request) {
	student, ok := h.actingStudent(w, r)
	if !ok {
		return
	}
	limit, offset := ParseLimitOffset(r, defaultListLimit, maxListLimit)

	lessons, err := h.Lessons.ListForStudent(r.Context(), student.ID, limit, offset)
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

// GetLesson returns one lesson, with meeting credentials included only
// when the acting student has purchased it.
// GET /api/lessons/{id}.
func (h *PortalHandlers) GetLesson(w http.ResponseWriter, r *http.Request) {
	student, ok := h.actingStudent(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("lesson id is required")},
		)
		return
	}

	lesson, err := h.Lessons.GetForStudent(r.Context(), id, student.ID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, lesson)
}

// purchaseRequest is the body of POST /api/purchases.
type purchaseRequest struct {
	LessonID string `json:"lesson_id"`
}

// Purchase buys a lesson for the acting student. The price is captured
// from the lesson at purchase time.
// POST /api/purchases.
func (h *PortalHandlers) Purchase(w http.ResponseWriter, r *http.Request) {
	student, ok := h.actingStudent(w, r)
	if !ok {
		return
	}

	var req purchaseRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	sale, err := h.Sales.Purchase(r.Context(), &model.CreateSaleRequest{
		StudentID: student.ID,
		LessonID:  req.LessonID,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, sale)
}

// ListPurchases returns the acting student's purchase history.
// GET /api/purchases.
func (h *PortalHandlers) ListPurchases(w http.ResponseWriter, r *http.Request) {
	student, ok := h.actingStudent(w, r)
	if !ok {
		return
	}
	limit, offset := ParseLimitOffset(r, defaultListLimit, maxListLimit)

	sales, err := h.Sales.ListByStudent(r.Context(), student.ID, limit, offset)
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

// ListResults returns the acting student's paper marks joined with
// their papers, totals included.
// GET /api/results.
func (h *PortalHandlers) ListResults(w http.ResponseWriter, r *http.Request) {
	student, ok := h.actingStudent(w, r)
	if !ok {
		return
	}
	limit, offset := ParseLimitOffset(r, defaultListLimit, maxListLimit)

	results, err := h.Marks.ResultsForStudent(r.Context(), student.ID, limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"limit":   limit,
		"offset":  offset,
	})
}

// ListMessages returns broadcast messages, newest first.
// GET /api/messages.
func (h *PortalHandlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultListLimit, maxListLimit)

	messages, err := h.Messages.List(r.Context(), limit, offset)
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

// ListNotifications returns site notifications, newest first.
// GET /api/notifications.
func (h *PortalHandlers) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultListLimit, maxListLimit)

	notifications, err := h.Notices.List(r.Context(), limit, offset)
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
