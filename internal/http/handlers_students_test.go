package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	apperrors "github.com/shanuka19697/LMS-sub001/internal/errors"
	"github.com/shanuka19697/LMS-sub001/internal/mocks"
	"github.com/shanuka19697/LMS-sub001/internal/service"
)

func newStudentHandlers(t *testing.T) (*StudentHandlers, *mocks.MockStudentRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStudentRepository(ctrl)
	svc := service.MustNewStudentService(service.StudentServiceOptions{Repo: repo})
	return &StudentHandlers{Svc: svc}, repo
}

func TestStudentHandlers_Create(t *testing.T) {
	h, repo := newStudentHandlers(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&model.Student{ID: "stu-1", IndexNumber: "2024/IT/0001"}, nil)

	body := `{"index_number":"2024/IT/0001","full_name":"Nimal Perera",` +
		`"email":"nimal@example.com","password":"correct-horse-battery"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/students", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"stu-1"`)
}

func TestStudentHandlers_Create_ValidationError(t *testing.T) {
	h, _ := newStudentHandlers(t)

	req := httptest.NewRequest(
		http.MethodPost, "/api/admin/students",
		strings.NewReader(`{"index_number":"","full_name":"","email":"","password":""}`),
	)
	w := httptest.NewRecorder()
	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation")
}

func TestStudentHandlers_Create_Conflict(t *testing.T) {
	h, repo := newStudentHandlers(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Conflict("index number already registered"))

	body := `{"index_number":"2024/IT/0001","full_name":"Nimal Perera",` +
		`"email":"nimal@example.com","password":"correct-horse-battery"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/students", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
}

func TestStudentHandlers_GetByID_NotFound(t *testing.T) {
	h, repo := newStudentHandlers(t)

	repo.EXPECT().
		GetByID(gomock.Any(), "missing").
		Return(nil, apperrors.NotFound("student not found"))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/students/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	h.GetByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudentHandlers_Delete(t *testing.T) {
	h, repo := newStudentHandlers(t)

	t.Run("deleted", func(t *testing.T) {
		repo.EXPECT().Delete(gomock.Any(), "stu-1").Return(true, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/students/stu-1", nil)
		req.SetPathValue("id", "stu-1")
		w := httptest.NewRecorder()
		h.Delete(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"deleted":true}`, w.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		repo.EXPECT().Delete(gomock.Any(), "ghost").Return(false, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/students/ghost", nil)
		req.SetPathValue("id", "ghost")
		w := httptest.NewRecorder()
		h.Delete(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStudentHandlers_ResetPassword(t *testing.T) {
	h, repo := newStudentHandlers(t)

	repo.EXPECT().
		UpdatePasswordHash(gomock.Any(), "stu-1", gomock.Any()).
		Return(nil)

	req := httptest.NewRequest(
		http.MethodPost, "/api/admin/students/stu-1/password",
		strings.NewReader(`{"password":"new-correct-horse"}`),
	)
	req.SetPathValue("id", "stu-1")
	w := httptest.NewRecorder()
	h.ResetPassword(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":true}`, w.Body.String())
}
