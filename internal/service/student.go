package service

import (
	"context"
	"fmt"

	"github.com/shanuka19697/LMS-sub001/internal/core"
	"github.com/shanuka19697/LMS-sub001/internal/crypto"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
)

// StudentServiceOptions groups dependencies for StudentService.
type StudentServiceOptions struct {
	Repo   core.StudentRepository
	Cache  core.PageCache // optional
	Logger DebugLogger    // optional
}

// StudentService provides admin-side management of student accounts.
// Self-service registration goes through AuthService instead.
type StudentService struct {
	repo  core.StudentRepository
	cache core.PageCache
	log   DebugLogger
	hash  crypto.Argon2Params
}

// NewStudentService constructs a new StudentService.
func NewStudentService(opts StudentServiceOptions) (*StudentService, error) {
	if opts.Repo == nil {
		return nil, fmt.Errorf("StudentRepository is required")
	}
	return &StudentService{
		repo:  opts.Repo,
		cache: opts.Cache,
		log:   opts.Logger,
		hash:  crypto.DefaultParams(),
	}, nil
}

// MustNewStudentService constructs a new StudentService and panics on invalid options.
func MustNewStudentService(opts StudentServiceOptions) *StudentService {
	svc, err := NewStudentService(opts)
	if err != nil {
		panic(err)
	}
	return svc
}

// Create registers a student account on an admin's behalf.
func (s *StudentService) Create(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	passwordHash, err := crypto.HashPassword(req.Password, s.hash)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	student, err := s.repo.Create(ctx, req, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	invalidatePages(ctx, s.cache, s.log, studentPages)
	return student, nil
}

// GetByID returns a student by id.
func (s *StudentService) GetByID(ctx context.Context, id string) (*model.Student, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByIndexNumber returns a student by index number.
func (s *StudentService) GetByIndexNumber(ctx context.Context, indexNumber string) (*model.Student, error) {
	return s.repo.GetByIndexNumber(ctx, indexNumber)
}

// List returns students with pagination.
func (s *StudentService) List(ctx context.Context, limit, offset int) ([]*model.Student, error) {
	return s.repo.List(ctx, limit, offset)
}

// Update updates a student's profile fields.
func (s *StudentService) Update(ctx context.Context, id string, req model.UpdateStudentRequest) (*model.Student, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	student, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}
	invalidatePages(ctx, s.cache, s.log, studentPages)
	return student, nil
}

// ResetPassword replaces a student's password hash.
func (s *StudentService) ResetPassword(ctx context.Context, id, newPassword string) error {
	if err := model.ValidatePassword(newPassword); err != nil {
		return err
	}
	passwordHash, err := crypto.HashPassword(newPassword, s.hash)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.UpdatePasswordHash(ctx, id, passwordHash); err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	return nil
}

// Delete deletes a student account by id.
func (s *StudentService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete student: %w", err)
	}
	if deleted {
		invalidatePages(ctx, s.cache, s.log, studentPages)
	}
	return deleted, nil
}
