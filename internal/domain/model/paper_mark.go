//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"time"

	apperrors "github.com/shanuka19697/LMS-sub001/internal/errors"
)

const maxSubScore = 100

// PaperMark records one student's result for one paper. The pair is unique;
// recording a second mark for the same paper and student is a conflict.
type PaperMark struct {
	ID        string `json:"id"         db:"id"`
	PaperID   string `json:"paper_id"   db:"paper_id"`
	StudentID string `json:"student_id" db:"student_id"`
	// MCQMark and StructuredMark are the two sub-scores; structured papers
	// use both, MCQ papers only the first.
	MCQMark        int       `json:"mcq_mark"        db:"mcq_mark"`
	StructuredMark int       `json:"structured_mark" db:"structured_mark"`
	CreatedAt      time.Time `json:"created_at"      db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"      db:"updated_at"`
}

// TotalMark derives the final mark from the sub-scores. MCQ papers count
// the MCQ score alone; structured papers sum both parts.
func (m PaperMark) TotalMark(paperType PaperType) int {
	if paperType == PaperTypeStructured {
		return m.MCQMark + m.StructuredMark
	}
	return m.MCQMark
}

// CreatePaperMarkRequest contains fields to record a student's mark.
type CreatePaperMarkRequest struct {
	PaperID        string `json:"paper_id"`
	StudentID      string `json:"student_id"`
	MCQMark        int    `json:"mcq_mark"`
	StructuredMark int    `json:"structured_mark"`
}

func (r *CreatePaperMarkRequest) Validate() error {
	if r.PaperID == "" {
		return apperrors.Validation("paper_id is required")
	}
	if r.StudentID == "" {
		return apperrors.Validation("student_id is required")
	}
	return validateSubScores(r.MCQMark, r.StructuredMark)
}

// UpdatePaperMarkRequest contains optional fields to update; nil means unchanged.
type UpdatePaperMarkRequest struct {
	MCQMark        *int `json:"mcq_mark,omitempty"`
	StructuredMark *int `json:"structured_mark,omitempty"`
}

func (r *UpdatePaperMarkRequest) Validate() error {
	if r.MCQMark == nil && r.StructuredMark == nil {
		return apperrors.Validation("no fields to update")
	}
	mcq, structured := 0, 0
	if r.MCQMark != nil {
		mcq = *r.MCQMark
	}
	if r.StructuredMark != nil {
		structured = *r.StructuredMark
	}
	return validateSubScores(mcq, structured)
}

func validateSubScores(mcq, structured int) error {
	if mcq < 0 || mcq > maxSubScore {
		return apperrors.Validation("mcq_mark must be between 0 and 100")
	}
	if structured < 0 || structured > maxSubScore {
		return apperrors.Validation("structured_mark must be between 0 and 100")
	}
	return nil
}
