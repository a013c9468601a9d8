//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"time"

	apperrors "github.com/shanuka19697/LMS-sub001/internal/errors"
)

// PaperType distinguishes how a paper is scored.
type PaperType string

const (
	// PaperTypeMCQ papers carry only a multiple-choice score.
	PaperTypeMCQ PaperType = "mcq"
	// PaperTypeStructured papers combine an MCQ part and a structured part.
	PaperTypeStructured PaperType = "structured"
)

// Valid reports whether the paper type is supported.
func (t PaperType) Valid() bool {
	switch t {
	case PaperTypeMCQ, PaperTypeStructured:
		return true
	default:
		return false
	}
}

// Paper is an exam paper marks are recorded against.
type Paper struct {
	ID        string    `json:"id"    db:"id"`
	Title     string    `json:"title" db:"title"`
	Type      PaperType `json:"type"  db:"type"`
	Year      int       `json:"year"  db:"year"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreatePaperRequest contains fields to create a new paper.
type CreatePaperRequest struct {
	Title string    `json:"title"`
	Type  PaperType `json:"type"`
	Year  int       `json:"year"`
}

func (r *CreatePaperRequest) Validate() error {
	if err := validateLessonTitle(r.Title); err != nil {
		return err
	}
	if !r.Type.Valid() {
		return apperrors.Validation("type must be mcq or structured")
	}
	if r.Year < 2000 || r.Year > 2100 {
		return apperrors.Validation("year is out of range")
	}
	return nil
}

// UpdatePaperRequest contains optional fields to update; nil means unchanged.
// Type is immutable after marks exist, enforced at the service layer.
type UpdatePaperRequest struct {
	Title *string `json:"title,omitempty"`
	Year  *int    `json:"year,omitempty"`
}

func (r *UpdatePaperRequest) Validate() error {
	if r.Title == nil && r.Year == nil {
		return apperrors.Validation("no fields to update")
	}
	if r.Title != nil {
		if err := validateLessonTitle(*r.Title); err != nil {
			return err
		}
	}
	if r.Year != nil && (*r.Year < 2000 || *r.Year > 2100) {
		return apperrors.Validation("year is out of range")
	}
	return nil
}
