//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"testing"

	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAdminRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreateAdminRequest{
		Username: "kasun.j",
		FullName: "Kasun Jayaweera",
		Role:     domainauth.RolePaperAdmin,
		Password: "long-enough-pass",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CreateAdminRequest)
		errMsg string
	}{
		{
			name:   "empty username",
			mutate: func(r *CreateAdminRequest) { r.Username = "" },
			errMsg: "username is required",
		},
		{
			name:   "username with spaces",
			mutate: func(r *CreateAdminRequest) { r.Username = "bad user" },
			errMsg: "username must be",
		},
		{
			name:   "invalid role",
			mutate: func(r *CreateAdminRequest) { r.Role = "ROOT" },
			errMsg: "role must be SUPER_ADMIN, PAPER_ADMIN, or MESSAGE_ADMIN",
		},
		{
			name:   "lowercase role rejected",
			mutate: func(r *CreateAdminRequest) { r.Role = "super_admin" },
			errMsg: "role must be",
		},
		{
			name:   "short password",
			mutate: func(r *CreateAdminRequest) { r.Password = "pw" },
			errMsg: "password must be at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestUpdateAdminRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, (&UpdateAdminRequest{}).Validate(), "no fields to update")

	role := domainauth.RoleMessageAdmin
	assert.NoError(t, (&UpdateAdminRequest{Role: &role}).Validate())

	bad := domainauth.Role("nope")
	err := (&UpdateAdminRequest{Role: &bad}).Validate()
	require.Error(t, err)
}
