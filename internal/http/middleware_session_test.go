package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanuka19697/LMS-sub001/internal/access"
	"github.com/shanuka19697/LMS-sub001/internal/adapters/sessiontoken"
	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
)

func testCodec(t *testing.T) *sessiontoken.Codec {
	t.Helper()
	codec, err := sessiontoken.New("test-secret", "lms")
	require.NoError(t, err)
	return codec
}

func issueToken(t *testing.T, codec *sessiontoken.Codec, sess domainauth.Session) string {
	t.Helper()
	token, err := codec.Issue(sess)
	require.NoError(t, err)
	return token
}

func liveStudentSession() domainauth.Session {
	return domainauth.Session{
		ID:        "sess-student",
		Subject:   "2024/IT/0001",
		Kind:      domainauth.KindStudent,
		IssuedAt:  time.Now().Add(-time.Minute),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func liveAdminSession(role domainauth.Role) domainauth.Session {
	return domainauth.Session{
		ID:        "sess-admin",
		Subject:   "kasun",
		Kind:      domainauth.KindAdmin,
		Role:      role,
		IssuedAt:  time.Now().Add(-time.Minute),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// carrierWith builds a context carrier for handler-level tests.
func carrierWith(student, admin domainauth.Session) access.Carrier {
	return access.Carrier{
		Student:   &student,
		Admin:     &admin,
		AdminRole: admin.Role,
	}
}

// carrierProbe records the carrier the middleware stored.
func carrierProbe(got *access.Carrier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = GetCarrierFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestDecodeSessions_StudentCookie(t *testing.T) {
	codec := testCodec(t)
	token := issueToken(t, codec, liveStudentSession())

	var got access.Carrier
	handler := DecodeSessions(SessionConfig{Tokens: codec})(carrierProbe(&got))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: StudentSessionCookie, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got.Student)
	assert.Equal(t, "2024/IT/0001", got.Student.Subject)
	assert.Nil(t, got.Admin)
}

func TestDecodeSessions_AdminCookieWithRole(t *testing.T) {
	codec := testCodec(t)
	token := issueToken(t, codec, liveAdminSession(domainauth.RolePaperAdmin))

	var got access.Carrier
	handler := DecodeSessions(SessionConfig{Tokens: codec, TrustCachedRole: true})(carrierProbe(&got))

	req := httptest.NewRequest(http.MethodGet, "/admin/papers", nil)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: token})
	req.AddCookie(&http.Cookie{Name: AdminRoleCookie, Value: string(domainauth.RolePaperAdmin)})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got.Admin)
	assert.Equal(t, "kasun", got.Admin.Subject)
	assert.Equal(t, domainauth.RolePaperAdmin, got.AdminRole)
}

func TestDecodeSessions_MissingRoleCookieMeansNoRole(t *testing.T) {
	codec := testCodec(t)
	// The token claim carries a role, but the role cookie is the sole role
	// carrier: without it the session has no role.
	token := issueToken(t, codec, liveAdminSession(domainauth.RoleMessageAdmin))

	var got access.Carrier
	handler := DecodeSessions(SessionConfig{Tokens: codec, TrustCachedRole: true})(carrierProbe(&got))

	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got.Admin)
	assert.Equal(t, domainauth.Role(""), got.AdminRole)
}

func TestDecodeSessions_MalformedRoleCookieMeansNoRole(t *testing.T) {
	codec := testCodec(t)
	token := issueToken(t, codec, liveAdminSession(domainauth.RoleSuperAdmin))

	var got access.Carrier
	handler := DecodeSessions(SessionConfig{Tokens: codec, TrustCachedRole: true})(carrierProbe(&got))

	req := httptest.NewRequest(http.MethodGet, "/admin/students", nil)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: token})
	req.AddCookie(&http.Cookie{Name: AdminRoleCookie, Value: "OWNER"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got.Admin)
	assert.Equal(t, domainauth.Role(""), got.AdminRole)
}

func TestDecodeSessions_MissingRoleCookieDeniedByGate(t *testing.T) {
	codec := testCodec(t)
	token := issueToken(t, codec, liveAdminSession(domainauth.RoleSuperAdmin))

	decode := DecodeSessions(SessionConfig{Tokens: codec, TrustCachedRole: true})
	gate := AccessGate(access.NewGate())
	handler := decode(gate(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodGet, "/admin/students", nil)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: token})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestDecodeSessions_RejectsKindMismatch(t *testing.T) {
	codec := testCodec(t)
	// A student token pasted into the admin cookie slot must not mint an
	// admin session.
	studentToken := issueToken(t, codec, liveStudentSession())

	var got access.Carrier
	handler := DecodeSessions(SessionConfig{Tokens: codec})(carrierProbe(&got))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: studentToken})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Nil(t, got.Admin)
	assert.Nil(t, got.Student)
}

func TestDecodeSessions_GarbageCookieIgnored(t *testing.T) {
	codec := testCodec(t)

	var got access.Carrier
	handler := DecodeSessions(SessionConfig{Tokens: codec})(carrierProbe(&got))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: StudentSessionCookie, Value: "not-a-token"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Nil(t, got.Student)
}

func TestAccessGate_RedirectsAnonymousStudent(t *testing.T) {
	handler := AccessGate(access.NewGate())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAccessGate_BouncesAuthenticatedStudentFromLogin(t *testing.T) {
	handler := AccessGate(access.NewGate())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	sess := liveStudentSession()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req = req.WithContext(SetCarrierInContext(req.Context(), access.Carrier{Student: &sess}))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestAccessGate_ExpiredSessionTreatedAsAbsent(t *testing.T) {
	handler := AccessGate(access.NewGate())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	sess := liveStudentSession()
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req = req.WithContext(SetCarrierInContext(req.Context(), access.Carrier{Student: &sess}))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAccessGate_RoleRedirect(t *testing.T) {
	handler := AccessGate(access.NewGate())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	sess := liveAdminSession(domainauth.RoleMessageAdmin)
	carrier := access.Carrier{Admin: &sess, AdminRole: sess.Role}

	req := httptest.NewRequest(http.MethodGet, "/admin/students", nil)
	req = req.WithContext(SetCarrierInContext(req.Context(), carrier))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	req = req.WithContext(SetCarrierInContext(req.Context(), carrier))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireStudentAPI(t *testing.T) {
	handler := RequireStudentAPI()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("anonymous gets 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/lessons", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("live session passes", func(t *testing.T) {
		sess := liveStudentSession()
		req := httptest.NewRequest(http.MethodGet, "/api/lessons", nil)
		req = req.WithContext(SetCarrierInContext(req.Context(), access.Carrier{Student: &sess}))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("expired session gets 401", func(t *testing.T) {
		sess := liveStudentSession()
		sess.ExpiresAt = time.Now().Add(-time.Minute)
		req := httptest.NewRequest(http.MethodGet, "/api/lessons", nil)
		req = req.WithContext(SetCarrierInContext(req.Context(), access.Carrier{Student: &sess}))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdminAPI_RoleMatrix(t *testing.T) {
	handler := RequireAdminAPI(domainauth.RoleSuperAdmin, domainauth.RolePaperAdmin)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	run := func(carrier access.Carrier) int {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/papers", nil)
		req = req.WithContext(SetCarrierInContext(req.Context(), carrier))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, run(access.Carrier{}))

	super := liveAdminSession(domainauth.RoleSuperAdmin)
	assert.Equal(t, http.StatusOK, run(access.Carrier{Admin: &super, AdminRole: super.Role}))

	paper := liveAdminSession(domainauth.RolePaperAdmin)
	assert.Equal(t, http.StatusOK, run(access.Carrier{Admin: &paper, AdminRole: paper.Role}))

	message := liveAdminSession(domainauth.RoleMessageAdmin)
	assert.Equal(t, http.StatusForbidden, run(access.Carrier{Admin: &message, AdminRole: message.Role}))

	// A live session with a malformed role cookie is denied on restricted
	// prefixes.
	assert.Equal(t, http.StatusForbidden, run(access.Carrier{Admin: &super, AdminRole: "BOGUS"}))
}
