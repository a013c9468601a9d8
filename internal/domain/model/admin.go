//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"regexp"
	"strings"
	"time"

	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
	apperrors "github.com/shanuka19697/LMS-sub001/internal/errors"
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]{2,63}$`)

// Admin is a staff account. Every admin carries exactly one role from the
// closed role set; the role decides which admin sections open for them.
type Admin struct {
	ID           string          `json:"id"       db:"id"`
	Username     string          `json:"username" db:"username"`
	FullName     string          `json:"full_name" db:"full_name"`
	Role         domainauth.Role `json:"role"     db:"role"`
	PasswordHash string          `json:"-"        db:"password_hash"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// CreateAdminRequest contains fields to create a new admin account.
type CreateAdminRequest struct {
	Username string          `json:"username"`
	FullName string          `json:"full_name"`
	Role     domainauth.Role `json:"role"`
	Password string          `json:"password"`
}

func (r *CreateAdminRequest) Validate() error {
	if err := validateUsername(r.Username); err != nil {
		return err
	}
	if err := validatePersonName(r.FullName); err != nil {
		return err
	}
	if !r.Role.Valid() {
		return apperrors.Validation("role must be SUPER_ADMIN, PAPER_ADMIN, or MESSAGE_ADMIN")
	}
	return ValidatePassword(r.Password)
}

// UpdateAdminRequest contains optional fields to update; nil means unchanged.
// Username is immutable; create a new account instead.
type UpdateAdminRequest struct {
	FullName *string          `json:"full_name,omitempty"`
	Role     *domainauth.Role `json:"role,omitempty"`
}

func (r *UpdateAdminRequest) Validate() error {
	if r.FullName == nil && r.Role == nil {
		return apperrors.Validation("no fields to update")
	}
	if r.FullName != nil {
		if err := validatePersonName(*r.FullName); err != nil {
			return err
		}
	}
	if r.Role != nil && !r.Role.Valid() {
		return apperrors.Validation("role must be SUPER_ADMIN, PAPER_ADMIN, or MESSAGE_ADMIN")
	}
	return nil
}

func validateUsername(username string) error {
	u := strings.TrimSpace(username)
	if u == "" {
		return apperrors.Validation("username is required and cannot be empty")
	}
	if !usernameRe.MatchString(u) {
		return apperrors.Validation("username must be 3-64 characters of letters, digits, underscores, dots, or hyphens")
	}
	return nil
}
