package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleSuperAdmin, true},
		{RolePaperAdmin, true},
		{RoleMessageAdmin, true},
		{Role(""), false},
		{Role("super_admin"), false},
		{Role("ADMIN"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.Valid(), "role %q", tt.role)
	}
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := Session{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(2*time.Minute)))
}

func TestSession_IsAdmin(t *testing.T) {
	assert.True(t, Session{Kind: KindAdmin}.IsAdmin())
	assert.False(t, Session{Kind: KindStudent}.IsAdmin())
}
