package access

import (
	"testing"

	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Categories(t *testing.T) {
	tests := []struct {
		path string
		want Category
	}{
		{"/", Public},
		{"/about", Public},
		{"/courses/2026", Public},
		{"/login", StudentAuthPage},
		{"/register", StudentAuthPage},
		{"/login/extra", Public}, // auth pages match exactly, not by prefix
		{"/admin/login", AdminAuthPage},
		{"/dashboard", StudentProtected},
		{"/dashboard/profile", StudentProtected},
		{"/dashboard/papers/42", StudentProtected},
		{"/admin", AdminProtected},
		{"/admin/", AdminProtected},
		{"/admin/students", AdminProtected},
		{"/admin/login/", AdminProtected}, // only the exact login path is exempt
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path).Category)
		})
	}
}

func TestClassify_RolePolicy(t *testing.T) {
	super := []domainauth.Role{domainauth.RoleSuperAdmin}
	paper := []domainauth.Role{domainauth.RoleSuperAdmin, domainauth.RolePaperAdmin}
	message := []domainauth.Role{domainauth.RoleSuperAdmin, domainauth.RoleMessageAdmin}

	tests := []struct {
		path string
		want []domainauth.Role
	}{
		{"/admin/students", super},
		{"/admin/students/123/edit", super},
		{"/admin/lessons", super},
		{"/admin/sales", super},
		{"/admin/notifications", super},
		{"/admin/admins", super},
		{"/admin/papers", paper},
		{"/admin/papers/7", paper},
		{"/admin/paper-marks", paper},
		{"/admin/messages", message},
		{"/admin/messages/unread", message},
		{"/admin", nil},          // landing page: any admin
		{"/admin/settings", nil}, // unmatched prefix: any admin
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path).RequiredRoles)
		})
	}
}

// Prefix matching is case-sensitive: an uppercase variant is not a
// protected path and must classify as public rather than partially match.
func TestClassify_CaseSensitive(t *testing.T) {
	assert.Equal(t, Public, Classify("/Dashboard").Category)
	assert.Equal(t, Public, Classify("/ADMIN/students").Category)
}

func TestRoleAllowed_InvalidRoleNeverPasses(t *testing.T) {
	required := []domainauth.Role{domainauth.RoleSuperAdmin}
	assert.False(t, roleAllowed("", required))
	assert.False(t, roleAllowed("garbage", required))
	assert.False(t, roleAllowed(domainauth.RolePaperAdmin, required))
	assert.True(t, roleAllowed(domainauth.RoleSuperAdmin, required))
}
