package httpx

// Session cookie names. Students and admins carry separate cookies so an
// admin browsing the student site keeps both identities.
const (
	StudentSessionCookie = "student_session"
	AdminSessionCookie   = "admin_session"
	// AdminRoleCookie caches the admin's role next to the session token.
	// It is set and cleared together with AdminSessionCookie.
	AdminRoleCookie = "admin_role"
)

const (
	// adminSessionMaxAge bounds the admin cookie lifetime in the browser.
	adminSessionMaxAge = 24 * 60 * 60

	// defaultListLimit and maxListLimit bound list endpoints.
	defaultListLimit = 50
	maxListLimit     = 500
)
