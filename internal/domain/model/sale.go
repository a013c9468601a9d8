//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"time"

	apperrors "github.com/shanuka19697/LMS-sub001/internal/errors"
)

// Sale records a student's purchase of a lesson. The student↔lesson pair
// is unique; buying the same lesson twice is a conflict.
type Sale struct {
	ID         string    `json:"id"          db:"id"`
	StudentID  string    `json:"student_id"  db:"student_id"`
	LessonID   string    `json:"lesson_id"   db:"lesson_id"`
	PriceCents int64     `json:"price_cents" db:"price_cents"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
}

// CreateSaleRequest contains fields to record a lesson purchase. The price
// is captured from the lesson at purchase time, not taken from the client.
type CreateSaleRequest struct {
	StudentID string `json:"student_id"`
	LessonID  string `json:"lesson_id"`
}

func (r *CreateSaleRequest) Validate() error {
	if r.StudentID == "" {
		return apperrors.Validation("student_id is required")
	}
	if r.LessonID == "" {
		return apperrors.Validation("lesson_id is required")
	}
	return nil
}
