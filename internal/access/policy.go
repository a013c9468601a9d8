package access

// Package access implements route classification and the pre-request
// authorization gate. Everything here is pure: no I/O, no shared state,
// one decision per call.

import (
	"strings"

	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
)

// Category is the protection category a request path falls into.
type Category int

const (
	// Public paths are reachable without any session.
	Public Category = iota
	// StudentAuthPage is the student login/register surface; authenticated
	// students are bounced away from it.
	StudentAuthPage
	// AdminAuthPage is the admin login surface.
	AdminAuthPage
	// StudentProtected paths require a student session.
	StudentProtected
	// AdminProtected paths require an admin session and, for restricted
	// prefixes, a role from the policy table.
	AdminProtected
)

// Classification is the result of classifying a request path.
// RequiredRoles is non-empty only for role-restricted AdminProtected paths;
// an empty set means any authenticated admin passes.
type Classification struct {
	Category      Category
	RequiredRoles []domainauth.Role
}

// rolePolicy associates an admin path prefix with the roles allowed past it.
type rolePolicy struct {
	prefix string
	roles  []domainauth.Role
}

// rolePolicyTable is checked in order; the first matching prefix wins.
// Matching is case-sensitive leftmost-prefix. Prefixes absent from the
// table require no specific role.
var rolePolicyTable = []rolePolicy{
	{"/admin/students", []domainauth.Role{domainauth.RoleSuperAdmin}},
	{"/admin/lessons", []domainauth.Role{domainauth.RoleSuperAdmin}},
	{"/admin/sales", []domainauth.Role{domainauth.RoleSuperAdmin}},
	{"/admin/notifications", []domainauth.Role{domainauth.RoleSuperAdmin}},
	{"/admin/admins", []domainauth.Role{domainauth.RoleSuperAdmin}},
	{"/admin/papers", []domainauth.Role{domainauth.RoleSuperAdmin, domainauth.RolePaperAdmin}},
	{"/admin/paper-marks", []domainauth.Role{domainauth.RoleSuperAdmin, domainauth.RolePaperAdmin}},
	{"/admin/messages", []domainauth.Role{domainauth.RoleSuperAdmin, domainauth.RoleMessageAdmin}},
}

const (
	studentLoginPath    = "/login"
	studentRegisterPath = "/register"
	studentHomePath     = "/dashboard"
	adminLoginPath      = "/admin/login"
	adminHomePath       = "/admin"
)

// Classify maps a request path to its protection category and, for
// restricted admin prefixes, the set of roles allowed through.
func Classify(path string) Classification {
	switch path {
	case studentLoginPath, studentRegisterPath:
		return Classification{Category: StudentAuthPage}
	case adminLoginPath:
		return Classification{Category: AdminAuthPage}
	}

	if strings.HasPrefix(path, studentHomePath) {
		return Classification{Category: StudentProtected}
	}

	if strings.HasPrefix(path, adminHomePath) {
		return Classification{Category: AdminProtected, RequiredRoles: requiredRoles(path)}
	}

	return Classification{Category: Public}
}

// requiredRoles returns the allowed role set for an admin path, or nil when
// any authenticated admin may pass.
func requiredRoles(path string) []domainauth.Role {
	for _, p := range rolePolicyTable {
		if strings.HasPrefix(path, p.prefix) {
			return p.roles
		}
	}
	return nil
}

// roleAllowed reports membership of role in the required set. An invalid or
// empty role is never a member, so a missing or malformed role token denies
// every restricted prefix.
func roleAllowed(role domainauth.Role, required []domainauth.Role) bool {
	if !role.Valid() {
		return false
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}
