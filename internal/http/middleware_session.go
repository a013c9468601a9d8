package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shanuka19697/LMS-sub001/internal/access"
	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
	"github.com/shanuka19697/LMS-sub001/internal/ports"
)

// SessionConfig holds dependencies for the session-decoding middleware.
type SessionConfig struct {
	Tokens ports.SessionCodec
	// Roles re-resolves the admin role from the record store on every
	// request when TrustCachedRole is false. Optional otherwise.
	Roles ports.RoleResolver
	// TrustCachedRole accepts the role cookie at face value. The cookie
	// is HttpOnly and co-issued with the signed session, so trusting it
	// saves a lookup per admin request.
	TrustCachedRole bool
	Logger          *slog.Logger
}

// DecodeSessions returns a middleware that reads the session cookies,
// verifies their tokens, and stores the resulting carrier in the request
// context. A missing, malformed, or mis-signed cookie leaves its slot
// nil; this middleware never rejects a request.
func DecodeSessions(cfg SessionConfig) func(http.Handler) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var c access.Carrier

			if sess, ok := verifyCookie(r, cfg.Tokens, StudentSessionCookie, domainauth.KindStudent); ok {
				c.Student = sess
			}
			if sess, ok := verifyCookie(r, cfg.Tokens, AdminSessionCookie, domainauth.KindAdmin); ok {
				c.Admin = sess
				c.AdminRole = adminRole(r, sess, cfg)
			}

			ctx := SetCarrierInContext(r.Context(), c)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// verifyCookie decodes one session cookie. A token whose principal kind
// does not match the cookie it arrived in is discarded; a student token
// pasted into the admin cookie must not mint an admin session.
func verifyCookie(r *http.Request, tokens ports.SessionCodec, name string, kind domainauth.PrincipalKind) (*domainauth.Session, bool) {
	cookie, err := r.Cookie(name)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	sess, err := tokens.Verify(cookie.Value)
	if err != nil || sess.Kind != kind {
		return nil, false
	}
	return &sess, true
}

// adminRole determines the effective admin role for this request, either
// from the role cookie or by re-resolving against the store. A missing or
// malformed role cookie, like a failed resolution, yields an empty role,
// which denies every restricted prefix. The role claim inside the session
// token is never consulted: the role cookie is the sole role carrier, so
// clearing it demotes the session without reissuing the token.
func adminRole(r *http.Request, sess *domainauth.Session, cfg SessionConfig) domainauth.Role {
	if cfg.TrustCachedRole || cfg.Roles == nil {
		cookie, err := r.Cookie(AdminRoleCookie)
		if err != nil {
			return ""
		}
		if role := domainauth.Role(cookie.Value); role.Valid() {
			return role
		}
		return ""
	}

	role, err := cfg.Roles.ResolveRole(r.Context(), sess.Subject)
	if err != nil {
		cfg.Logger.DebugContext(r.Context(), "role resolution failed",
			"username", sess.Subject, "error", err)
		return ""
	}
	return role
}

// AccessGate returns a middleware that evaluates the page gate before the
// handler runs and redirects when the gate denies. It expects
// DecodeSessions to have run first.
func AccessGate(gate access.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := gate.Decide(r.URL.Path, GetCarrierFromContext(r.Context()))
			if !d.Allow {
				http.Redirect(w, r, d.Location, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireStudentAPI returns a middleware for JSON endpoints that need a
// live student session. Unlike the page gate it answers 401 instead of
// redirecting.
func RequireStudentAPI() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := GetCarrierFromContext(r.Context())
			if c.Student == nil || c.Student.Expired(time.Now()) {
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("student session required"),
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdminAPI returns a middleware for JSON endpoints that need a live
// admin session. When roles are given, the effective admin role must be
// one of them; with no roles any authenticated admin passes.
func RequireAdminAPI(roles ...domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := GetCarrierFromContext(r.Context())
			if c.Admin == nil || c.Admin.Expired(time.Now()) {
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("admin session required"),
				})
				return
			}
			if len(roles) > 0 && !roleIn(c.AdminRole, roles) {
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "insufficient_permissions",
					Err:     errors.New("insufficient permissions"),
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func roleIn(role domainauth.Role, set []domainauth.Role) bool {
	if !role.Valid() {
		return false
	}
	for _, r := range set {
		if role == r {
			return true
		}
	}
	return false
}
