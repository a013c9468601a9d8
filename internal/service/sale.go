package service

import (
	"context"
	"fmt"

	"github.com/shanuka19697/LMS-sub001/internal/core"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
)

// SaleServiceOptions groups dependencies for SaleService.
type SaleServiceOptions struct {
	Repo   core.SaleRepository
	Cache  core.PageCache // optional
	Logger DebugLogger    // optional
}

// SaleService records lesson purchases. The price is captured from the
// lesson at purchase time, so later lesson edits never rewrite history.
type SaleService struct {
	repo  core.SaleRepository
	cache core.PageCache
	log   DebugLogger
}

// NewSaleService constructs a new SaleService.
func NewSaleService(opts SaleServiceOptions) (*SaleService, error) {
	if opts.Repo == nil {
		return nil, fmt.Errorf("SaleRepository is required")
	}
	return &SaleService{
		repo:  opts.Repo,
		cache: opts.Cache,
		log:   opts.Logger,
	}, nil
}

// MustNewSaleService constructs a new SaleService and panics on invalid options.
func MustNewSaleService(opts SaleServiceOptions) *SaleService {
	svc, err := NewSaleService(opts)
	if err != nil {
		panic(err)
	}
	return svc
}

// Purchase records that a student bought a lesson. A repeat purchase of
// the same lesson surfaces as a conflict.
func (s *SaleService) Purchase(ctx context.Context, req *model.CreateSaleRequest) (*model.Sale, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	sale, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("record sale: %w", err)
	}
	invalidatePages(ctx, s.cache, s.log, salePages)
	return sale, nil
}

// GetByID returns a sale by id.
func (s *SaleService) GetByID(ctx context.Context, id string) (*model.Sale, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns sales with pagination.
func (s *SaleService) List(ctx context.Context, limit, offset int) ([]*model.Sale, error) {
	return s.repo.List(ctx, limit, offset)
}

// ListByStudent returns a student's purchases.
func (s *SaleService) ListByStudent(ctx context.Context, studentID string, limit, offset int) ([]*model.Sale, error) {
	return s.repo.ListByStudent(ctx, studentID, limit, offset)
}

// HasPurchase reports whether a student owns a lesson.
func (s *SaleService) HasPurchase(ctx context.Context, studentID, lessonID string) (bool, error) {
	return s.repo.HasPurchase(ctx, studentID, lessonID)
}

// Delete voids a sale record by id.
func (s *SaleService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete sale: %w", err)
	}
	if deleted {
		invalidatePages(ctx, s.cache, s.log, salePages)
	}
	return deleted, nil
}
