//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/shanuka19697/LMS-sub001/internal/errors"
)

const (
	maxStudentNameLen = 255
	minPasswordLen    = 8
	maxPasswordLen    = 128
)

var (
	// indexNumberRe matches institute index numbers like "IT2026001" or "2021/CS/042".
	indexNumberRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9/_-]{2,31}$`)
	emailRe       = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Student is a registered learner. Students authenticate with their index
// number and carry no admin role.
type Student struct {
	ID          string `json:"id"           db:"id"`
	IndexNumber string `json:"index_number" db:"index_number"`
	FullName    string `json:"full_name"    db:"full_name"`
	Email       string `json:"email"        db:"email"`
	// PasswordHash is the argon2id PHC string; never serialized.
	PasswordHash string    `json:"-"          db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// CreateStudentRequest contains fields to register a new student.
type CreateStudentRequest struct {
	IndexNumber string `json:"index_number"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

func (r *CreateStudentRequest) Validate() error {
	if err := validateIndexNumber(r.IndexNumber); err != nil {
		return err
	}
	if err := validatePersonName(r.FullName); err != nil {
		return err
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	return ValidatePassword(r.Password)
}

// UpdateStudentRequest contains optional fields to update; nil means unchanged.
type UpdateStudentRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
}

func (r *UpdateStudentRequest) Validate() error {
	if r.FullName == nil && r.Email == nil {
		return apperrors.Validation("no fields to update")
	}
	if r.FullName != nil {
		if err := validatePersonName(*r.FullName); err != nil {
			return err
		}
	}
	if r.Email != nil {
		if err := validateEmail(*r.Email); err != nil {
			return err
		}
	}
	return nil
}

func validateIndexNumber(indexNumber string) error {
	n := strings.TrimSpace(indexNumber)
	if n == "" {
		return apperrors.Validation("index number is required and cannot be empty")
	}
	if !indexNumberRe.MatchString(n) {
		return apperrors.Validation("index number must be 3-32 characters of letters, digits, slashes, underscores, or hyphens")
	}
	return nil
}

func validatePersonName(name string) error {
	n := strings.TrimSpace(name)
	if n == "" {
		return apperrors.Validation("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(n) > maxStudentNameLen {
		return apperrors.Validation("name cannot exceed 255 characters")
	}
	return nil
}

func validateEmail(email string) error {
	e := strings.TrimSpace(email)
	if e == "" {
		return apperrors.Validation("email is required and cannot be empty")
	}
	if !emailRe.MatchString(e) {
		return apperrors.Validation("email is not a valid address")
	}
	return nil
}

// ValidatePassword checks password length bounds. Exported so password
// reset flows outside this package apply the same rule as registration.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLen {
		return apperrors.Validation("password must be at least 8 characters")
	}
	if utf8.RuneCountInString(password) > maxPasswordLen {
		return apperrors.Validation("password cannot exceed 128 characters")
	}
	return nil
}
