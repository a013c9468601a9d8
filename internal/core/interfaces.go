package core

import (
	"context"

	domainauth "github.com/shanuka19697/LMS-sub001/internal/domain/auth"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// StudentRepository defines the interface for student account data operations.
type StudentRepository interface {
	Create(ctx context.Context, req *model.CreateStudentRequest, passwordHash string) (*model.Student, error)
	GetByID(ctx context.Context, id string) (*model.Student, error)
	GetByIndexNumber(ctx context.Context, indexNumber string) (*model.Student, error)
	List(ctx context.Context, limit, offset int) ([]*model.Student, error)
	Update(ctx context.Context, id string, req model.UpdateStudentRequest) (*model.Student, error)
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) (bool, error)
}

// AdminRepository defines the interface for admin account data operations.
type AdminRepository interface {
	Create(ctx context.Context, req *model.CreateAdminRequest, passwordHash string) (*model.Admin, error)
	GetByID(ctx context.Context, id string) (*model.Admin, error)
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
	ResolveRole(ctx context.Context, username string) (domainauth.Role, error)
	List(ctx context.Context, limit, offset int) ([]*model.Admin, error)
	Update(ctx context.Context, id string, req model.UpdateAdminRequest) (*model.Admin, error)
	UpdatePasswordHash(ctx context.Context, username, passwordHash string) error
	Delete(ctx context.Context, id string) (bool, error)
}

// LessonRepository defines the interface for lesson data operations.
type LessonRepository interface {
	Create(ctx context.Context, req *model.CreateLessonRequest) (*model.Lesson, error)
	GetByID(ctx context.Context, id string) (*model.Lesson, error)
	List(ctx context.Context, limit, offset int) ([]*model.Lesson, error)
	Update(ctx context.Context, id string, req model.UpdateLessonRequest) (*model.Lesson, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PaperRepository defines the interface for past paper data operations.
type PaperRepository interface {
	Create(ctx context.Context, req *model.CreatePaperRequest) (*model.Paper, error)
	GetByID(ctx context.Context, id string) (*model.Paper, error)
	List(ctx context.Context, limit, offset int) ([]*model.Paper, error)
	Update(ctx context.Context, id string, req model.UpdatePaperRequest) (*model.Paper, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PaperMarkRepository defines the interface for paper mark data operations.
type PaperMarkRepository interface {
	Create(ctx context.Context, req *model.CreatePaperMarkRequest) (*model.PaperMark, error)
	GetByID(ctx context.Context, id string) (*model.PaperMark, error)
	ListByPaper(ctx context.Context, paperID string, limit, offset int) ([]*model.PaperMark, error)
	ListByStudent(ctx context.Context, studentID string, limit, offset int) ([]*model.PaperMark, error)
	Update(ctx context.Context, id string, req model.UpdatePaperMarkRequest) (*model.PaperMark, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// MessageRepository defines the interface for broadcast message data operations.
type MessageRepository interface {
	Create(ctx context.Context, req *model.CreateMessageRequest) (*model.Message, error)
	GetByID(ctx context.Context, id string) (*model.Message, error)
	List(ctx context.Context, limit, offset int) ([]*model.Message, error)
	Update(ctx context.Context, id string, req model.UpdateMessageRequest) (*model.Message, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// NotificationRepository defines the interface for notification data operations.
type NotificationRepository interface {
	Create(ctx context.Context, req *model.CreateNotificationRequest) (*model.Notification, error)
	GetByID(ctx context.Context, id string) (*model.Notification, error)
	List(ctx context.Context, limit, offset int) ([]*model.Notification, error)
	Update(ctx context.Context, id string, req model.UpdateNotificationRequest) (*model.Notification, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// SaleRepository defines the interface for lesson purchase records.
type SaleRepository interface {
	Create(ctx context.Context, req *model.CreateSaleRequest) (*model.Sale, error)
	GetByID(ctx context.Context, id string) (*model.Sale, error)
	List(ctx context.Context, limit, offset int) ([]*model.Sale, error)
	ListByStudent(ctx context.Context, studentID string, limit, offset int) ([]*model.Sale, error)
	HasPurchase(ctx context.Context, studentID, lessonID string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PageCache defines the interface for the rendered page cache.
type PageCache interface {
	SetPage(ctx context.Context, path string, body []byte) error
	GetPage(ctx context.Context, path string) ([]byte, error)
	InvalidatePage(ctx context.Context, path string) (bool, error)
	InvalidatePages(ctx context.Context, paths ...string) error
	Health(ctx context.Context) error
}
