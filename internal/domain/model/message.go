//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/shanuka19697/LMS-sub001/internal/errors"
)

const maxMessageBodyLen = 10000

// Message is an announcement posted by message admins for students.
type Message struct {
	ID        string    `json:"id"    db:"id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body"  db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateMessageRequest contains fields to post a new message.
type CreateMessageRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (r *CreateMessageRequest) Validate() error {
	if err := validateLessonTitle(r.Title); err != nil {
		return err
	}
	return validateBody(r.Body)
}

// UpdateMessageRequest contains optional fields to update; nil means unchanged.
type UpdateMessageRequest struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

func (r *UpdateMessageRequest) Validate() error {
	if r.Title == nil && r.Body == nil {
		return apperrors.Validation("no fields to update")
	}
	if r.Title != nil {
		if err := validateLessonTitle(*r.Title); err != nil {
			return err
		}
	}
	if r.Body != nil {
		return validateBody(*r.Body)
	}
	return nil
}

func validateBody(body string) error {
	b := strings.TrimSpace(body)
	if b == "" {
		return apperrors.Validation("body is required and cannot be empty")
	}
	if utf8.RuneCountInString(b) > maxMessageBodyLen {
		return apperrors.Validation("body cannot exceed 10000 characters")
	}
	return nil
}
