//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/shanuka19697/LMS-sub001/internal/errors"
)

const maxLessonTitleLen = 255

// Lesson is a scheduled online class students can purchase. The meeting
// link is stored decomposed into meeting ID and password so the student
// page can rebuild a join link regardless of the provider URL shape.
type Lesson struct {
	ID       string `json:"id"      db:"id"`
	Title    string `json:"title"   db:"title"`
	Subject  string `json:"subject" db:"subject"`
	// Date is normalized to UTC midnight; lessons are scheduled per day.
	Date            time.Time `json:"date"             db:"date"`
	MeetingID       string    `json:"meeting_id"       db:"meeting_id"`
	MeetingPassword string    `json:"meeting_password" db:"meeting_password"`
	// PriceCents avoids floating point in money arithmetic.
	PriceCents int64     `json:"price_cents" db:"price_cents"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"  db:"updated_at"`
}

// CreateLessonRequest contains fields to schedule a new lesson. MeetingURL
// is the raw provider link; it is decomposed before storage.
type CreateLessonRequest struct {
	Title      string    `json:"title"`
	Subject    string    `json:"subject"`
	Date       time.Time `json:"date"`
	MeetingURL string    `json:"meeting_url"`
	PriceCents int64     `json:"price_cents"`
}

func (r *CreateLessonRequest) Validate() error {
	if err := validateLessonTitle(r.Title); err != nil {
		return err
	}
	if strings.TrimSpace(r.Subject) == "" {
		return apperrors.Validation("subject is required and cannot be empty")
	}
	if r.Date.IsZero() {
		return apperrors.Validation("date is required")
	}
	if r.PriceCents < 0 {
		return apperrors.Validation("price cannot be negative")
	}
	if _, _, err := ParseMeetingURL(r.MeetingURL); err != nil {
		return err
	}
	return nil
}

// UpdateLessonRequest contains optional fields to update; nil means unchanged.
type UpdateLessonRequest struct {
	Title      *string    `json:"title,omitempty"`
	Subject    *string    `json:"subject,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	MeetingURL *string    `json:"meeting_url,omitempty"`
	PriceCents *int64     `json:"price_cents,omitempty"`
}

func (r *UpdateLessonRequest) Validate() error {
	if r.Title == nil && r.Subject == nil && r.Date == nil && r.MeetingURL == nil && r.PriceCents == nil {
		return apperrors.Validation("no fields to update")
	}
	if r.Title != nil {
		if err := validateLessonTitle(*r.Title); err != nil {
			return err
		}
	}
	if r.Subject != nil && strings.TrimSpace(*r.Subject) == "" {
		return apperrors.Validation("subject cannot be empty")
	}
	if r.Date != nil && r.Date.IsZero() {
		return apperrors.Validation("date cannot be empty")
	}
	if r.PriceCents != nil && *r.PriceCents < 0 {
		return apperrors.Validation("price cannot be negative")
	}
	if r.MeetingURL != nil {
		if _, _, err := ParseMeetingURL(*r.MeetingURL); err != nil {
			return err
		}
	}
	return nil
}

func validateLessonTitle(title string) error {
	tt := strings.TrimSpace(title)
	if tt == "" {
		return apperrors.Validation("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(tt) > maxLessonTitleLen {
		return apperrors.Validation("title cannot exceed 255 characters")
	}
	return nil
}

// ParseMeetingURL extracts the meeting ID and password from a provider
// join link. The ID is the last non-empty path segment (Zoom-style
// ".../j/<id>"); the password comes from the pwd or passcode query
// parameter and may be empty.
func ParseMeetingURL(raw string) (meetingID, password string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", apperrors.Validation("meeting URL is required and cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", "", apperrors.Validation("meeting URL must be a valid absolute URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", "", apperrors.Validation("meeting URL must use http or https")
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	meetingID = segments[len(segments)-1]
	if meetingID == "" {
		return "", "", apperrors.Validation("meeting URL does not contain a meeting ID")
	}

	password = u.Query().Get("pwd")
	if password == "" {
		password = u.Query().Get("passcode")
	}
	return meetingID, password, nil
}
