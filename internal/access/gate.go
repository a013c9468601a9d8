package access

import (
	"time"

	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
)

// Carrier is the per-request view of the credential cookies, decoded and
// verified by the caller before the gate runs. A session that failed
// verification or expired must be left nil; a role token that failed to
// parse must be left empty. The gate never inspects raw cookies.
type Carrier struct {
	Student *domainauth.Session
	Admin   *domainauth.Session
	// AdminRole is the co-issued role token. When the gate is configured
	// to re-resolve roles, the caller fills this from the record store
	// instead of the cookie; the gate itself stays free of I/O either way.
	AdminRole domainauth.Role
}

// Decision is the terminal outcome of one gate evaluation.
type Decision struct {
	Allow bool
	// Location is the redirect target when Allow is false.
	Location string
}

var (
	allow                = Decision{Allow: true}
	redirectStudentLogin = Decision{Location: studentLoginPath}
	redirectAdminLogin   = Decision{Location: adminLoginPath}
	redirectUnauthorized = Decision{Location: adminHomePath}
	redirectDashboard    = Decision{Location: studentHomePath}
	redirectAdminHome    = Decision{Location: adminHomePath}
)

// Gate decides, before any page logic runs, whether a request proceeds or
// redirects. It is stateless between requests; evaluating the same
// (path, carrier) pair twice yields the same decision.
type Gate struct {
	now func() time.Time
}

// NewGate constructs a Gate using wall-clock time.
func NewGate() Gate { return Gate{now: time.Now} }

// NewGateAt constructs a Gate with a fixed clock, for tests.
func NewGateAt(now func() time.Time) Gate { return Gate{now: now} }

// Decide evaluates the gate for one request. Precedence:
//
//  1. Student-protected path without a student session redirects to the
//     student login.
//  2. Admin-protected path without an admin session redirects to the admin
//     login; with a session but a role outside the restricted set it
//     redirects to the admin landing page.
//  3. An authenticated student on the login/register pages is bounced to
//     the dashboard; an authenticated admin on the admin login page is
//     bounced to the admin landing page.
//  4. Everything else is allowed.
//
// Absence of a token is a normal branch, never an error; the gate cannot fail.
func (g Gate) Decide(path string, c Carrier) Decision {
	cls := Classify(path)
	student := g.live(c.Student)
	admin := g.live(c.Admin)

	switch cls.Category {
	case StudentProtected:
		if student == nil {
			return redirectStudentLogin
		}
		return allow

	case AdminProtected:
		if admin == nil {
			return redirectAdminLogin
		}
		if len(cls.RequiredRoles) > 0 && !roleAllowed(c.AdminRole, cls.RequiredRoles) {
			return redirectUnauthorized
		}
		return allow

	case StudentAuthPage:
		if student != nil {
			return redirectDashboard
		}
		return allow

	case AdminAuthPage:
		if admin != nil {
			return redirectAdminHome
		}
		return allow

	default:
		return allow
	}
}

// live filters out sessions whose claim has lapsed. Verification happens
// upstream; this is the gate's own expiry check so a stale-but-parsable
// claim never passes.
func (g Gate) live(s *domainauth.Session) *domainauth.Session {
	if s == nil || s.Expired(g.now()) {
		return nil
	}
	return s
}
