//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMeetingURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        string
		wantID     string
		wantPwd    string
		wantErrMsg string
	}{
		{
			name:    "zoom join link with pwd",
			raw:     "https://zoom.us/j/93412345678?pwd=a1B2c3D4",
			wantID:  "93412345678",
			wantPwd: "a1B2c3D4",
		},
		{
			name:    "passcode parameter",
			raw:     "https://meet.example.com/room/abc-def?passcode=s3cret",
			wantID:  "abc-def",
			wantPwd: "s3cret",
		},
		{
			name:    "no password",
			raw:     "https://zoom.us/j/93412345678",
			wantID:  "93412345678",
			wantPwd: "",
		},
		{
			name:    "trailing slash",
			raw:     "https://zoom.us/j/93412345678/",
			wantID:  "93412345678",
			wantPwd: "",
		},
		{
			name:       "empty",
			raw:        "",
			wantErrMsg: "meeting URL is required",
		},
		{
			name:       "relative url",
			raw:        "/j/93412345678",
			wantErrMsg: "valid absolute URL",
		},
		{
			name:       "wrong scheme",
			raw:        "ftp://zoom.us/j/123",
			wantErrMsg: "http or https",
		},
		{
			name:       "no path",
			raw:        "https://zoom.us",
			wantErrMsg: "does not contain a meeting ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			id, pwd, err := ParseMeetingURL(tt.raw)
			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantPwd, pwd)
		})
	}
}

func TestCreateLessonRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreateLessonRequest{
		Title:      "Combined Maths - Unit 5",
		Subject:    "Mathematics",
		Date:       time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		MeetingURL: "https://zoom.us/j/93412345678?pwd=a1B2c3D4",
		PriceCents: 150000,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CreateLessonRequest)
		errMsg string
	}{
		{"empty title", func(r *CreateLessonRequest) { r.Title = "" }, "title is required"},
		{"empty subject", func(r *CreateLessonRequest) { r.Subject = " " }, "subject is required"},
		{"zero date", func(r *CreateLessonRequest) { r.Date = time.Time{} }, "date is required"},
		{"negative price", func(r *CreateLessonRequest) { r.PriceCents = -1 }, "price cannot be negative"},
		{"bad meeting url", func(r *CreateLessonRequest) { r.MeetingURL = "nonsense" }, "valid absolute URL"},
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

func TestUpdateLessonRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, (&UpdateLessonRequest{}).Validate(), "no fields to update")

	title := "Revision"
	assert.NoError(t, (&UpdateLessonRequest{Title: &title}).Validate())

	bad := "::::"
	require.Error(t, (&UpdateLessonRequest{MeetingURL: &bad}).Validate())
}
