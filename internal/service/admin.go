package service

import (
	"context"
	"fmt"

	"github.com/shanuka19697/LMS-sub001/internal/core"
	"github.com/shanuka19697/LMS-sub001/internal/crypto"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
)

// AdminServiceOptions groups dependencies for AdminService.
type AdminServiceOptions struct {
	Repo   core.AdminRepository
	Cache  core.PageCache // optional
	Logger DebugLogger    // optional
}

// AdminService manages staff accounts. Only super admins reach its
// HTTP surface; the service itself does not re-check the caller's role.
type AdminService struct {
	repo  core.AdminRepository
	cache core.PageCache
	log   DebugLogger
	hash  crypto.Argon2Params
}

// NewAdminService constructs a new AdminService.
func NewAdminService(opts AdminServiceOptions) (*AdminService, error) {
	if opts.Repo == nil {
		return nil, fmt.Errorf("AdminRepository is required")
	}
	return &AdminService{
		repo:  opts.Repo,
		cache: opts.Cache,
		log:   opts.Logger,
		hash:  crypto.DefaultParams(),
	}, nil
}

// MustNewAdminService constructs a new AdminService and panics on invalid options.
func MustNewAdminService(opts AdminServiceOptions) *AdminService {
	svc, err := NewAdminService(opts)
	if err != nil {
		panic(err)
	}
	return svc
}

// Create creates a new admin account.
func (s *AdminService) Create(ctx context.Context, req *model.CreateAdminRequest) (*model.Admin, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	passwordHash, err := crypto.HashPassword(req.Password, s.hash)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	admin, err := s.repo.Create(ctx, req, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	invalidatePages(ctx, s.cache, s.log, adminPages)
	return admin, nil
}

// GetByID returns an admin by id.
func (s *AdminService) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByUsername returns an admin by username.
func (s *AdminService) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	return s.repo.GetByUsername(ctx, username)
}

// List returns admins with pagination.
func (s *AdminService) List(ctx context.Context, limit, offset int) ([]*model.Admin, error) {
	return s.repo.List(ctx, limit, offset)
}

// Update updates an admin's full name or role. Username is immutable.
func (s *AdminService) Update(ctx context.Context, id string, req model.UpdateAdminRequest) (*model.Admin, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	admin, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update admin: %w", err)
	}
	invalidatePages(ctx, s.cache, s.log, adminPages)
	return admin, nil
}

// ResetPassword replaces an admin's password hash.
func (s *AdminService) ResetPassword(ctx context.Context, username, newPassword string) error {
	if err := model.ValidatePassword(newPassword); err != nil {
		return err
	}
	passwordHash, err := crypto.HashPassword(newPassword, s.hash)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.UpdatePasswordHash(ctx, username, passwordHash); err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	return nil
}

// Delete deletes an admin account by id.
func (s *AdminService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete admin: %w", err)
	}
	if deleted {
		invalidatePages(ctx, s.cache, s.log, adminPages)
	}
	return deleted, nil
}
