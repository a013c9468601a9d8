//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"time"

	apperrors "github.com/shanuka19697/LMS-sub001/internal/errors"
)

// Notification is a site-wide notice managed by super admins. Unlike
// messages, notifications are shown on the student dashboard banner.
type Notification struct {
	ID        string    `json:"id"    db:"id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body"  db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateNotificationRequest contains fields to publish a new notification.
type CreateNotificationRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (r *CreateNotificationRequest) Validate() error {
	if err := validateLessonTitle(r.Title); err != nil {
		return err
	}
	return validateBody(r.Body)
}

// UpdateNotificationRequest contains optional fields to update; nil means unchanged.
type UpdateNotificationRequest struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

func (r *UpdateNotificationRequest) Validate() error {
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
