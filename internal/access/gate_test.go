package access

import (
	"testing"
	"time"

	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func testGate() Gate { return NewGateAt(func() time.Time { return testNow }) }

func studentSession() *domainauth.Session {
	return &domainauth.Session{
		ID:        "s-1",
		Subject:   "IT2026001",
		Kind:      domainauth.KindStudent,
		IssuedAt:  testNow.Add(-time.Hour),
		ExpiresAt: testNow.Add(time.Hour),
	}
}

func adminSession(role domainauth.Role) *domainauth.Session {
	return &domainauth.Session{
		ID:        "a-1",
		Subject:   "kasun",
		Kind:      domainauth.KindAdmin,
		Role:      role,
		IssuedAt:  testNow.Add(-time.Hour),
		ExpiresAt: testNow.Add(23 * time.Hour),
	}
}

func adminCarrier(role domainauth.Role) Carrier {
	return Carrier{Admin: adminSession(role), AdminRole: role}
}

func TestGate_StudentProtected(t *testing.T) {
	g := testGate()

	for _, path := range []string{"/dashboard", "/dashboard/profile", "/dashboard/papers/3"} {
		d := g.Decide(path, Carrier{})
		assert.Equal(t, Decision{Location: "/login"}, d, "anonymous on %s", path)

		d = g.Decide(path, Carrier{Student: studentSession()})
		assert.True(t, d.Allow, "student on %s", path)
	}
}

func TestGate_AdminProtected_NoSession(t *testing.T) {
	g := testGate()
	for _, path := range []string{"/admin", "/admin/students", "/admin/papers/1/edit", "/admin/messages"} {
		d := g.Decide(path, Carrier{})
		assert.Equal(t, Decision{Location: "/admin/login"}, d, "path %s", path)
	}
}

func TestGate_AdminProtected_RoleMatrix(t *testing.T) {
	superOnly := []string{
		"/admin/students", "/admin/admins", "/admin/sales",
		"/admin/lessons", "/admin/notifications",
	}
	paperPaths := []string{"/admin/papers", "/admin/paper-marks"}
	messagePaths := []string{"/admin/messages"}
	roles := []domainauth.Role{
		domainauth.RoleSuperAdmin,
		domainauth.RolePaperAdmin,
		domainauth.RoleMessageAdmin,
	}
	allowed := func(path string, role domainauth.Role) bool {
		switch {
		case role == domainauth.RoleSuperAdmin:
			return true
		case role == domainauth.RolePaperAdmin:
			for _, p := range paperPaths {
				if p == path {
					return true
				}
			}
			return false
		case role == domainauth.RoleMessageAdmin:
			for _, p := range messagePaths {
				if p == path {
					return true
				}
			}
			return false
		}
		return false
	}

	g := testGate()
	var paths []string
	paths = append(paths, superOnly...)
	paths = append(paths, paperPaths...)
	paths = append(paths, messagePaths...)

	for _, path := range paths {
		for _, role := range roles {
			d := g.Decide(path, adminCarrier(role))
			if allowed(path, role) {
				assert.True(t, d.Allow, "role %s on %s", role, path)
			} else {
				assert.Equal(t, Decision{Location: "/admin"}, d, "role %s on %s", role, path)
			}
		}
	}
}

func TestGate_AdminProtected_UnrestrictedPrefix(t *testing.T) {
	g := testGate()
	// Landing page and unmatched prefixes admit any authenticated admin.
	for _, role := range []domainauth.Role{
		domainauth.RoleSuperAdmin, domainauth.RolePaperAdmin, domainauth.RoleMessageAdmin,
	} {
		assert.True(t, g.Decide("/admin", adminCarrier(role)).Allow)
		assert.True(t, g.Decide("/admin/settings", adminCarrier(role)).Allow)
	}
}

// A valid admin session with a missing or mangled role token denies every
// role-restricted prefix rather than erroring.
func TestGate_MissingRoleTokenFailsClosed(t *testing.T) {
	g := testGate()
	c := Carrier{Admin: adminSession(domainauth.RoleSuperAdmin)} // AdminRole left empty

	assert.Equal(t, Decision{Location: "/admin"}, g.Decide("/admin/students", c))
	assert.Equal(t, Decision{Location: "/admin"}, g.Decide("/admin/messages", c))
	// Unrestricted admin pages still work.
	assert.True(t, g.Decide("/admin", c).Allow)

	c.AdminRole = "SUPERADMIN" // not a member of the closed role set
	assert.Equal(t, Decision{Location: "/admin"}, g.Decide("/admin/students", c))
}

func TestGate_InverseGate(t *testing.T) {
	g := testGate()

	// Authenticated student is kept off the login and register forms.
	c := Carrier{Student: studentSession()}
	assert.Equal(t, Decision{Location: "/dashboard"}, g.Decide("/login", c))
	assert.Equal(t, Decision{Location: "/dashboard"}, g.Decide("/register", c))

	// Authenticated admin is kept off the admin login form.
	a := adminCarrier(domainauth.RolePaperAdmin)
	assert.Equal(t, Decision{Location: "/admin"}, g.Decide("/admin/login", a))

	// Anonymous visitors see the forms.
	assert.True(t, g.Decide("/login", Carrier{}).Allow)
	assert.True(t, g.Decide("/register", Carrier{}).Allow)
	assert.True(t, g.Decide("/admin/login", Carrier{}).Allow)
}

func TestGate_PublicPaths(t *testing.T) {
	g := testGate()
	for _, path := range []string{"/", "/about", "/courses", "/contact"} {
		assert.True(t, g.Decide(path, Carrier{}).Allow, "anonymous on %s", path)
		assert.True(t, g.Decide(path, adminCarrier(domainauth.RoleSuperAdmin)).Allow)
		assert.True(t, g.Decide(path, Carrier{Student: studentSession()}).Allow)
	}
}

func TestGate_ExpiredSessionIsAbsent(t *testing.T) {
	g := testGate()

	stale := studentSession()
	stale.ExpiresAt = testNow.Add(-time.Minute)
	d := g.Decide("/dashboard", Carrier{Student: stale})
	assert.Equal(t, Decision{Location: "/login"}, d)

	staleAdmin := adminSession(domainauth.RoleSuperAdmin)
	staleAdmin.ExpiresAt = testNow.Add(-time.Minute)
	d = g.Decide("/admin/students", Carrier{Admin: staleAdmin, AdminRole: domainauth.RoleSuperAdmin})
	assert.Equal(t, Decision{Location: "/admin/login"}, d)

	// An expired session on an auth page does not trigger the inverse gate.
	assert.True(t, g.Decide("/login", Carrier{Student: stale}).Allow)
}

// Evaluating the gate twice on the same inputs yields the same decision:
// the gate holds no hidden state.
func TestGate_Idempotent(t *testing.T) {
	g := testGate()
	carriers := []Carrier{
		{},
		{Student: studentSession()},
		adminCarrier(domainauth.RolePaperAdmin),
		{Admin: adminSession(domainauth.RoleMessageAdmin)},
	}
	paths := []string{"/", "/login", "/dashboard", "/admin", "/admin/papers", "/admin/students"}

	for _, c := range carriers {
		for _, path := range paths {
			first := g.Decide(path, c)
			second := g.Decide(path, c)
			assert.Equal(t, first, second, "path %s", path)
		}
	}
}

// The scenario table from the authorization design review.
func TestGate_Scenarios(t *testing.T) {
	g := testGate()

	assert.True(t, g.Decide("/admin/papers", adminCarrier(domainauth.RolePaperAdmin)).Allow)
	assert.Equal(t, Decision{Location: "/admin"},
		g.Decide("/admin/admins", adminCarrier(domainauth.RolePaperAdmin)))
	assert.Equal(t, Decision{Location: "/login"},
		g.Decide("/dashboard/profile", Carrier{}))
	assert.Equal(t, Decision{Location: "/dashboard"},
		g.Decide("/login", Carrier{Student: studentSession()}))
}
