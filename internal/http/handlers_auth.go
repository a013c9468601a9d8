package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	apperrors "github.com/shanuka19697/LMS-sub001/internal/errors"
	"github.com/shanuka19697/LMS-sub001/internal/service"
)

// AuthServiceInterface defines the auth service operations the handlers need.
type AuthServiceInterface interface {
	RegisterStudent(ctx context.Context, req *model.CreateStudentRequest) (*service.LoginResult, error)
	AuthenticateStudent(ctx context.Context, indexNumber, password string) (*service.LoginResult, error)
	AuthenticateAdmin(ctx context.Context, username, password string) (*service.LoginResult, error)
}

// AuthHandlers provides HTTP handlers for login, registration, and logout.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	CookieDomain string
	// DevMode relaxes the Secure cookie flag for plain-HTTP local serving.
	DevMode bool
	Logger  *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// studentLoginRequest is the body of POST /login.
type studentLoginRequest struct {
	IndexNumber string `json:"index_number"`
	Password    string `json:"password"`
}

// adminLoginRequest is the body of POST /admin/login.
type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// StudentLogin handles POST /login.
func (h *AuthHandlers) StudentLogin(w http.ResponseWriter, r *http.Request) {
	var req studentLoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.AuthenticateStudent(r.Context(), req.IndexNumber, req.Password)
	if err != nil {
		h.writeLoginFailure(w, r, err)
		return
	}

	h.setStudentCookie(w, r, result.Token)
	WriteJSON(w, http.StatusOK, loginResponse(result, "/dashboard"))
}

// Register handles POST /register. A successful registration logs the
// student straight in.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req model.CreateStudentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.RegisterStudent(r.Context(), &req)
	if err != nil {
		if apperrors.IsValidation(err) || apperrors.IsConflict(err) {
			WriteAppError(w, err)
			return
		}
		h.logger().ErrorContext(r.Context(), "student registration failed", "error", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "registration_failed",
			Err:     errors.New("registration failed"),
		})
		return
	}

	h.setStudentCookie(w, r, result.Token)
	WriteJSON(w, http.StatusCreated, loginResponse(result, "/dashboard"))
}

// AdminLogin handles POST /admin/login. On success the role cookie is
// issued alongside the session cookie.
func (h *AuthHandlers) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.AuthenticateAdmin(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeLoginFailure(w, r, err)
		return
	}

	h.setAdminCookies(w, r, result)
	WriteJSON(w, http.StatusOK, loginResponse(result, "/admin"))
}

// StudentLogout handles POST /logout. Logging out is purely client-side:
// tokens are self-contained, so clearing the cookie ends the session.
func (h *AuthHandlers) StudentLogout(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, r, StudentSessionCookie)
	h.redirectOrJSON(w, r, "/login")
}

// AdminLogout handles POST /admin/logout. The role cookie is cleared
// together with the session cookie.
func (h *AuthHandlers) AdminLogout(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, r, AdminSessionCookie)
	h.clearCookie(w, r, AdminRoleCookie)
	h.redirectOrJSON(w, r, "/admin/login")
}

// Status returns the current authentication state for both principals.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	c := GetCarrierFromContext(r.Context())
	now := time.Now()

	body := map[string]any{"student": nil, "admin": nil}
	if c.Student != nil && !c.Student.Expired(now) {
		body["student"] = map[string]any{
			"index_number": c.Student.Subject,
			"expires_at":   c.Student.ExpiresAt,
		}
	}
	if c.Admin != nil && !c.Admin.Expired(now) {
		body["admin"] = map[string]any{
			"username":   c.Admin.Subject,
			"role":       c.AdminRole,
			"expires_at": c.Admin.ExpiresAt,
		}
	}
	WriteJSON(w, http.StatusOK, body)
}

// writeLoginFailure answers a failed login. Invalid credentials get a
// uniform 401 regardless of whether the account exists.
func (h *AuthHandlers) writeLoginFailure(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrInvalidCredentials) {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "invalid_credentials",
			Err:     service.ErrInvalidCredentials,
		})
		return
	}
	h.logger().ErrorContext(r.Context(), "login failed", "error", err)
	WriteError(w, ErrorParams{
		Code:    http.StatusInternalServerError,
		ErrCode: "login_failed",
		Err:     errors.New("login failed"),
	})
}

// loginResponse builds the success body for login and register endpoints.
func loginResponse(result *service.LoginResult, redirectTo string) map[string]any {
	return map[string]any{
		"status":      "success",
		"redirect_to": redirectTo,
		"expires_at":  result.Session.ExpiresAt,
	}
}

// redirectOrJSON answers logout requests: AJAX callers get JSON, form
// posts get a redirect. A "next" query param overrides the target when
// it is a same-origin relative path.
func (h *AuthHandlers) redirectOrJSON(w http.ResponseWriter, r *http.Request, target string) {
	if next := r.URL.Query().Get("next"); next != "" {
		if safe := safeRedirectPath(next); safe != "/" {
			target = safe
		}
	}
	isAJAX := strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
	if isAJAX {
		WriteJSON(w, http.StatusOK, map[string]string{
			"status":      "success",
			"redirect_to": target,
		})
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// setStudentCookie writes the student session cookie. It carries no
// Max-Age on purpose: the browser drops it when the session ends, while
// the signed claim inside bounds the server-side lifetime.
func (h *AuthHandlers) setStudentCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     StudentSessionCookie,
		Value:    token,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   h.secureCookie(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// setAdminCookies writes the admin session cookie and the co-issued role
// cookie with matching attributes and lifetime.
func (h *AuthHandlers) setAdminCookies(w http.ResponseWriter, r *http.Request, result *service.LoginResult) {
	secure := h.secureCookie(r)
	http.SetCookie(w, &http.Cookie{
		Name:     AdminSessionCookie,
		Value:    result.Token,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   adminSessionMaxAge,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     AdminRoleCookie,
		Value:    string(result.Session.Role),
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   adminSessionMaxAge,
	})
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors the attributes used when setting cookies to maximize
// compatibility across browsers during deletion.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   h.secureCookie(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// secureCookie decides the Secure flag. Outside dev mode the flag is
// always on; in dev mode it follows the actual transport so plain-HTTP
// local serving still gets working cookies.
func (h *AuthHandlers) secureCookie(r *http.Request) bool {
	if h.DevMode {
		return isSecureRequest(r)
	}
	return true
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
