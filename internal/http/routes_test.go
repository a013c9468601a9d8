package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shanuka19697/LMS-sub001/internal/adapters/sessiontoken"
	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	"github.com/shanuka19697/LMS-sub001/internal/mocks"
	"github.com/shanuka19697/LMS-sub001/internal/service"
)

// newTestRouter wires a router with a real token codec and a mocked
// student repository; enough surface for cookie-to-handler round trips.
func newTestRouter(t *testing.T, ctrl *gomock.Controller) (http.Handler, *sessiontoken.Codec, *mocks.MockStudentRepository) {
	t.Helper()
	codec := testCodec(t)
	repo := mocks.NewMockStudentRepository(ctrl)

	students := service.MustNewStudentService(service.StudentServiceOptions{Repo: repo})
	router := NewRouter(RouterServices{
		Students:        students,
		Tokens:          codec,
		TrustCachedRole: true,
	})
	return router, codec, repo
}

func TestRouter_Healthz(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, _, _ := newTestRouter(t, ctrl)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_PageGateRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, codec, _ := newTestRouter(t, ctrl)

	// Anonymous request for the dashboard bounces to the login page.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// With a valid student cookie the page renders.
	token := issueToken(t, codec, liveStudentSession())
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: StudentSessionCookie, Value: token})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-page="/dashboard"`)

	// And the login page now bounces back to the dashboard.
	req = httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: StudentSessionCookie, Value: token})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestRouter_AdminAPIRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, codec, repo := newTestRouter(t, ctrl)

	// No session: 401 before any repository call.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/students", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Message admin on a super-admin resource: 403.
	messageToken := issueToken(t, codec, liveAdminSession(domainauth.RoleMessageAdmin))
	req := httptest.NewRequest(http.MethodGet, "/api/admin/students", nil)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: messageToken})
	req.AddCookie(&http.Cookie{Name: AdminRoleCookie, Value: string(domainauth.RoleMessageAdmin)})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Super admin reaches the handler.
	repo.EXPECT().List(gomock.Any(), 50, 0).Return([]*model.Student{}, nil)
	superToken := issueToken(t, codec, liveAdminSession(domainauth.RoleSuperAdmin))
	req = httptest.NewRequest(http.MethodGet, "/api/admin/students", nil)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: superToken})
	req.AddCookie(&http.Cookie{Name: AdminRoleCookie, Value: string(domainauth.RoleSuperAdmin)})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"students":[]`)
}

func TestRouter_PortalRequiresStudent(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, codec, _ := newTestRouter(t, ctrl)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// An admin session does not open the student API.
	adminToken := issueToken(t, codec, liveAdminSession(domainauth.RoleSuperAdmin))
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: adminToken})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
