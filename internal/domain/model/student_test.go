//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStudentRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreateStudentRequest{
		IndexNumber: "IT2026001",
		FullName:    "Nimal Perera",
		Email:       "nimal@example.com",
		Password:    "correct-horse",
	}

	tests := []struct {
		name    string
		mutate  func(*CreateStudentRequest)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid request",
			mutate: func(*CreateStudentRequest) {},
		},
		{
			name:   "slash style index number",
			mutate: func(r *CreateStudentRequest) { r.IndexNumber = "2021/CS/042" },
		},
		{
			name:    "empty index number",
			mutate:  func(r *CreateStudentRequest) { r.IndexNumber = "" },
			wantErr: true,
			errMsg:  "index number is required",
		},
		{
			name:    "index number with spaces",
			mutate:  func(r *CreateStudentRequest) { r.IndexNumber = "IT 2026" },
			wantErr: true,
			errMsg:  "index number must be",
		},
		{
			name:    "empty name",
			mutate:  func(r *CreateStudentRequest) { r.FullName = "   " },
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name:    "name too long",
			mutate:  func(r *CreateStudentRequest) { r.FullName = strings.Repeat("a", 256) },
			wantErr: true,
			errMsg:  "name cannot exceed 255 characters",
		},
		{
			name:    "bad email",
			mutate:  func(r *CreateStudentRequest) { r.Email = "not-an-email" },
			wantErr: true,
			errMsg:  "email is not a valid address",
		},
		{
			name:    "short password",
			mutate:  func(r *CreateStudentRequest) { r.Password = "short" },
			wantErr: true,
			errMsg:  "password must be at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUpdateStudentRequest_Validate(t *testing.T) {
	t.Parallel()

	empty := UpdateStudentRequest{}
	assert.EqualError(t, empty.Validate(), "no fields to update")

	name := "Kamal Silva"
	assert.NoError(t, (&UpdateStudentRequest{FullName: &name}).Validate())

	bad := "nope"
	err := (&UpdateStudentRequest{Email: &bad}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}
