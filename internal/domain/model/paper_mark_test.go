//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaperMark_TotalMark(t *testing.T) {
	t.Parallel()

	mark := PaperMark{MCQMark: 40, StructuredMark: 35}

	// MCQ papers count the MCQ score alone, even when a structured
	// sub-score was recorded by mistake.
	assert.Equal(t, 40, mark.TotalMark(PaperTypeMCQ))

	// Structured papers sum both parts.
	assert.Equal(t, 75, mark.TotalMark(PaperTypeStructured))

	zero := PaperMark{}
	assert.Equal(t, 0, zero.TotalMark(PaperTypeMCQ))
	assert.Equal(t, 0, zero.TotalMark(PaperTypeStructured))
}

func TestCreatePaperMarkRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreatePaperMarkRequest{
		PaperID:        "p-1",
		StudentID:      "s-1",
		MCQMark:        55,
		StructuredMark: 30,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CreatePaperMarkRequest)
		errMsg string
	}{
		{"missing paper", func(r *CreatePaperMarkRequest) { r.PaperID = "" }, "paper_id is required"},
		{"missing student", func(r *CreatePaperMarkRequest) { r.StudentID = "" }, "student_id is required"},
		{"negative mcq", func(r *CreatePaperMarkRequest) { r.MCQMark = -1 }, "mcq_mark must be between 0 and 100"},
		{"mcq over 100", func(r *CreatePaperMarkRequest) { r.MCQMark = 101 }, "mcq_mark must be between 0 and 100"},
		{"structured over 100", func(r *CreatePaperMarkRequest) { r.StructuredMark = 150 }, "structured_mark must be between 0 and 100"},
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

func TestCreatePaperRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreatePaperRequest{Title: "2026 Mock Exam", Type: PaperTypeMCQ, Year: 2026}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Type = "essay"
	require.Error(t, bad.Validate())

	bad = valid
	bad.Year = 1990
	require.Error(t, bad.Validate())
}

func TestPaperType_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, PaperTypeMCQ.Valid())
	assert.True(t, PaperTypeStructured.Valid())
	assert.False(t, PaperType("MCQ").Valid())
	assert.False(t, PaperType("").Valid())
}
