package service

import (
	"context"
	"fmt"

	"github.com/shanuka19697/LMS-sub001/internal/core"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
)

// PaperServiceOptions groups dependencies for PaperService.
type PaperServiceOptions struct {
	Repo   core.PaperRepository
	Cache  core.PageCache // optional
	Logger DebugLogger    // optional
}

// PaperService manages past papers.
type PaperService struct {
	repo  core.PaperRepository
	cache core.PageCache
	log   DebugLogger
}

// NewPaperService constructs a new PaperService.
func NewPaperService(opts PaperServiceOptions) (*PaperService, error) {
	if opts.Repo == nil {
		return nil, fmt.Errorf("PaperRepository is required")
	}
	return &PaperService{
		repo:  opts.Repo,
		cache: opts.Cache,
		log:   opts.Logger,
	}, nil
}

// MustNewPaperService constructs a new PaperService and panics on invalid options.
func MustNewPaperService(opts PaperServiceOptions) *PaperService {
	svc, err := NewPaperService(opts)
	if err != nil {
		panic(err)
	}
	return svc
}

// Create creates a paper.
func (s *PaperService) Create(ctx context.Context, req *model.CreatePaperRequest) (*model.Paper, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	paper, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create paper: %w", err)
	}
	invalidatePages(ctx, s.cache, s.log, paperPages)
	return paper, nil
}

// GetByID returns a paper by id.
func (s *PaperService) GetByID(ctx context.Context, id string) (*model.Paper, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns papers with pagination.
func (s *PaperService) List(ctx context.Context, limit, offset int) ([]*model.Paper, error) {
	return s.repo.List(ctx, limit, offset)
}

// Update updates a paper. The paper type is immutable because recorded
// marks are scored against it.
func (s *PaperService) Update(ctx context.Context, id string, req model.UpdatePaperRequest) (*model.Paper, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	paper, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update paper: %w", err)
	}
	invalidatePages(ctx, s.cache, s.log, paperPages)
	return paper, nil
}

// Delete deletes a paper by id. Papers with recorded marks are refused
// by the database and surface as a foreign key conflict.
func (s *PaperService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete paper: %w", err)
	}
	if deleted {
		invalidatePages(ctx, s.cache, s.log, paperPages)
	}
	return deleted, nil
}
