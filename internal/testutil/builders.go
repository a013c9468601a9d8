// Package testutil provides testing utilities and helpers shared across packages.
package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
)

var builderSeq atomic.Int64

// nextSeq returns a monotonically increasing value so builders produce unique identifiers by default.
func nextSeq() int64 {
	return builderSeq.Add(1)
}

// StudentRequestBuilder provides a fluent interface for building CreateStudentRequest objects for testing.
type StudentRequestBuilder struct {
	req *model.CreateStudentRequest
}

// NewStudentRequest creates a new StudentRequestBuilder with sensible defaults.
func NewStudentRequest() *StudentRequestBuilder {
	n := nextSeq()
	return &StudentRequestBuilder{
		req: &model.CreateStudentRequest{
			IndexNumber: fmt.Sprintf("2024/IT/%04d", n),
			FullName:    fmt.Sprintf("Test Student %d", n),
			Email:       fmt.Sprintf("student%d@example.com", n),
			Password:    "correct-horse-battery",
		},
	}
}

// WithIndexNumber sets the index number.
func (b *StudentRequestBuilder) WithIndexNumber(indexNumber string) *StudentRequestBuilder {
	b.req.IndexNumber = indexNumber
	return b
}

// WithFullName sets the full name.
func (b *StudentRequestBuilder) WithFullName(fullName string) *StudentRequestBuilder {
	b.req.FullName = fullName
	return b
}

// WithEmail sets the email address.
func (b *StudentRequestBuilder) WithEmail(email string) *StudentRequestBuilder {
	b.req.Email = email
	return b
}

// WithPassword sets the plaintext password.
func (b *StudentRequestBuilder) WithPassword(password string) *StudentRequestBuilder {
	b.req.Password = password
	return b
}

// Build returns the built CreateStudentRequest.
func (b *StudentRequestBuilder) Build() *model.CreateStudentRequest {
	return b.req
}

// AdminRequestBuilder provides a fluent interface for building CreateAdminRequest objects for testing.
type AdminRequestBuilder struct {
	req *model.CreateAdminRequest
}

// NewAdminRequest creates a new AdminRequestBuilder with sensible defaults.
func NewAdminRequest() *AdminRequestBuilder {
	n := nextSeq()
	return &AdminRequestBuilder{
		req: &model.CreateAdminRequest{
			Username: fmt.Sprintf("admin_%d", n),
			FullName: fmt.Sprintf("Test Admin %d", n),
			Role:     domainauth.RoleSuperAdmin,
			Password: "correct-horse-battery",
		},
	}
}

// WithUsername sets the username.
func (b *AdminRequestBuilder) WithUsername(username string) *AdminRequestBuilder {
	b.req.Username = username
	return b
}

// WithFullName sets the full name.
func (b *AdminRequestBuilder) WithFullName(fullName string) *AdminRequestBuilder {
	b.req.FullName = fullName
	return b
}

// WithRole sets the admin role.
func (b *AdminRequestBuilder) WithRole(role domainauth.Role) *AdminRequestBuilder {
	b.req.Role = role
	return b
}

// WithPassword sets the plaintext password.
func (b *AdminRequestBuilder) WithPassword(password string) *AdminRequestBuilder {
	b.req.Password = password
	return b
}

// Build returns the built CreateAdminRequest.
func (b *AdminRequestBuilder) Build() *model.CreateAdminRequest {
	return b.req
}

// LessonRequestBuilder provides a fluent interface for building CreateLessonRequest objects for testing.
type LessonRequestBuilder struct {
	req *model.CreateLessonRequest
}

// NewLessonRequest creates a new LessonRequestBuilder with sensible defaults.
func NewLessonRequest() *LessonRequestBuilder {
	n := nextSeq()
	return &LessonRequestBuilder{
		req: &model.CreateLessonRequest{
			Title:      fmt.Sprintf("Lesson %d", n),
			Subject:    "Combined Mathematics",
			Date:       time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
			MeetingURL: fmt.Sprintf("https://zoom.us/j/%d?pwd=abc123", 90000000000+n),
			PriceCents: 150000,
		},
	}
}

// WithTitle sets the lesson title.
func (b *LessonRequestBuilder) WithTitle(title string) *LessonRequestBuilder {
	b.req.Title = title
	return b
}

// WithSubject sets the subject.
func (b *LessonRequestBuilder) WithSubject(subject string) *LessonRequestBuilder {
	b.req.Subject = subject
	return b
}

// WithDate sets the lesson date.
func (b *LessonRequestBuilder) WithDate(date time.Time) *LessonRequestBuilder {
	b.req.Date = date
	return b
}

// WithMeetingURL sets the meeting URL.
func (b *LessonRequestBuilder) WithMeetingURL(meetingURL string) *LessonRequestBuilder {
	b.req.MeetingURL = meetingURL
	return b
}

// WithPriceCents sets the price in cents.
func (b *LessonRequestBuilder) WithPriceCents(priceCents int64) *LessonRequestBuilder {
	b.req.PriceCents = priceCents
	return b
}

// Build returns the built CreateLessonRequest.
func (b *LessonRequestBuilder) Build() *model.CreateLessonRequest {
	return b.req
}

// PaperRequestBuilder provides a fluent interface for building CreatePaperRequest objects for testing.
type PaperRequestBuilder struct {
	req *model.CreatePaperRequest
}

// NewPaperRequest creates a new PaperRequestBuilder with sensible defaults.
func NewPaperRequest() *PaperRequestBuilder {
	n := nextSeq()
	return &PaperRequestBuilder{
		req: &model.CreatePaperRequest{
			Title: fmt.Sprintf("Model Paper %d", n),
			Type:  model.PaperTypeMCQ,
			Year:  2026,
		},
	}
}

// WithTitle sets the paper title.
func (b *PaperRequestBuilder) WithTitle(title string) *PaperRequestBuilder {
	b.req.Title = title
	return b
}

// WithType sets the paper type.
func (b *PaperRequestBuilder) WithType(paperType model.PaperType) *PaperRequestBuilder {
	b.req.Type = paperType
	return b
}

// WithYear sets the paper year.
func (b *PaperRequestBuilder) WithYear(year int) *PaperRequestBuilder {
	b.req.Year = year
	return b
}

// Build returns the built CreatePaperRequest.
func (b *PaperRequestBuilder) Build() *model.CreatePaperRequest {
	return b.req
}
