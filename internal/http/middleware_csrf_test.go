package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfTestConfig() CSRFConfig {
	return CSRFConfig{
		CookieName:    DefaultCSRFCookieName,
		HeaderName:    DefaultCSRFHeaderName,
		FormFieldName: DefaultCSRFCookieName,
		TokenLength:   DefaultCSRFTokenLength,
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// csrfCookieFrom extracts the token cookie from a recorded response, or nil.
func csrfCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()
	for _, c := range resp.Cookies() {
		if c.Name == DefaultCSRFCookieName {
			return c
		}
	}
	return nil
}

// fetchCSRFToken loads the login page through the middleware and returns the
// planted token, the way a browser acquires one before posting the form.
func fetchCSRFToken(t *testing.T, handler http.Handler) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	cookie := csrfCookieFrom(t, w)
	require.NotNil(t, cookie, "token cookie not planted on page load")
	require.NotEmpty(t, cookie.Value)
	return cookie.Value
}

func TestCSRFProtection_PageLoadPlantsToken(t *testing.T) {
	handler := CSRFProtection(csrfTestConfig())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := csrfCookieFrom(t, w)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
}

func TestCSRFProtection_PostWithoutTokenFails(t *testing.T) {
	handler := CSRFProtection(csrfTestConfig())(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRFProtection_PostWithHeaderToken(t *testing.T) {
	handler := CSRFProtection(csrfTestConfig())(okHandler())
	token := fetchCSRFToken(t, handler)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
	req.Header.Set(DefaultCSRFHeaderName, token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFProtection_PostWithFormToken(t *testing.T) {
	handler := CSRFProtection(csrfTestConfig())(okHandler())
	token := fetchCSRFToken(t, handler)

	form := url.Values{}
	form.Set("index_number", "2024001")
	form.Set("password", "secret")
	form.Set(DefaultCSRFCookieName, token)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFProtection_MismatchedTokenFails(t *testing.T) {
	handler := CSRFProtection(csrfTestConfig())(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "cookie-token"})
	req.Header.Set(DefaultCSRFHeaderName, "different-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRFProtection_SafeMethodsExempt(t *testing.T) {
	handler := CSRFProtection(csrfTestConfig())(okHandler())

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/dashboard", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestCSRFProtection_TokenInContext(t *testing.T) {
	var seen string
	handler := CSRFProtection(csrfTestConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetCSRFToken(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.NotEmpty(t, seen, "token not available to the template")
	cookie := csrfCookieFrom(t, w)
	require.NotNil(t, cookie)
	assert.Equal(t, cookie.Value, seen, "context token must match the planted cookie")
}

func TestCSRFProtection_CookieAttributes(t *testing.T) {
	cfg := csrfTestConfig()
	cfg.CookieDomain = "lms.example.lk"
	handler := CSRFProtection(cfg)(okHandler())

	t.Run("direct TLS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "https://lms.example.lk/login", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		cookie := csrfCookieFrom(t, w)
		require.NotNil(t, cookie)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		assert.False(t, cookie.HttpOnly, "scripts must be able to read the token")
		assert.Equal(t, "lms.example.lk", cookie.Domain)
		assert.Equal(t, "/", cookie.Path)
	})

	t.Run("TLS terminated upstream", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://lms.example.lk/login", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		cookie := csrfCookieFrom(t, w)
		require.NotNil(t, cookie)
		assert.True(t, cookie.Secure)
	})
}

func TestCSRFProtection_ExistingTokenNotReplanted(t *testing.T) {
	handler := CSRFProtection(csrfTestConfig())(okHandler())
	token := fetchCSRFToken(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Nil(t, csrfCookieFrom(t, w), "no Set-Cookie expected when the token already exists")
}

func TestCSRFProtection_JSONBodyNeedsHeader(t *testing.T) {
	handler := CSRFProtection(csrfTestConfig())(okHandler())
	token := fetchCSRFToken(t, handler)

	t.Run("without header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"index_number":"2024001"}`))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("with header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"index_number":"2024001"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(DefaultCSRFHeaderName, token)
		req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetCSRFToken_NoToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	assert.Empty(t, GetCSRFToken(req))
}
