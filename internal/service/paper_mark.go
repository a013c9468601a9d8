package service

import (
	"context"
	"fmt"

	"github.com/shanuka19697/LMS-sub001/internal/core"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
)

// PaperMarkServiceOptions groups dependencies for PaperMarkService.
type PaperMarkServiceOptions struct {
	Marks  core.PaperMarkRepository
	Papers core.PaperRepository
	Cache  core.PageCache // optional
	Logger DebugLogger    // optional
}

// PaperMarkService records and reports paper marks. Totals depend on the
// paper's type, so reporting joins marks with their papers.
type PaperMarkService struct {
	marks  core.PaperMarkRepository
	papers core.PaperRepository
	cache  core.PageCache
	log    DebugLogger
}

// NewPaperMarkService constructs a new PaperMarkService.
func NewPaperMarkService(opts PaperMarkServiceOptions) (*PaperMarkService, error) {
	if opts.Marks == nil {
		return nil, fmt.Errorf("PaperMarkRepository is required")
	}
	if opts.Papers == nil {
		return nil, fmt.Errorf("PaperRepository is required")
	}
	return &PaperMarkService{
		marks:  opts.Marks,
		papers: opts.Papers,
		cache:  opts.Cache,
		log:    opts.Logger,
	}, nil
}

// MustNewPaperMarkService constructs a new PaperMarkService and panics on invalid options.
func MustNewPaperMarkService(opts PaperMarkServiceOptions) *PaperMarkService {
	svc, err := NewPaperMarkService(opts)
	if err != nil {
		panic(err)
	}
	return svc
}

// Create records a mark for a student on a paper. One mark per
// (paper, student) pair; a second submission surfaces as a conflict.
func (s *PaperMarkService) Create(ctx context.Context, req *model.CreatePaperMarkRequest) (*model.PaperMark, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	mark, err := s.marks.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create paper mark: %w", err)
	}
	invalidatePages(ctx, s.cache, s.log, paperMarkPages)
	return mark, nil
}

// GetByID returns a mark by id.
func (s *PaperMarkService) GetByID(ctx context.Context, id string) (*model.PaperMark, error) {
	return s.marks.GetByID(ctx, id)
}

// ListByPaper returns marks recorded for a paper.
func (s *PaperMarkService) ListByPaper(ctx context.Context, paperID string, limit, offset int) ([]*model.PaperMark, error) {
	return s.marks.ListByPaper(ctx, paperID, limit, offset)
}

// PaperResult pairs a recorded mark with its paper and the computed total.
type PaperResult struct {
	Mark  *model.PaperMark `json:"mark"`
	Paper *model.Paper     `json:"paper"`
	Total int              `json:"total"`
}

// ResultsForStudent returns a student's marks joined with their papers,
// with the paper-type-aware total computed per result.
func (s *PaperMarkService) ResultsForStudent(ctx context.Context, studentID string, limit, offset int) ([]*PaperResult, error) {
	marks, err := s.marks.ListByStudent(ctx, studentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list marks by student: %w", err)
	}
	results := make([]*PaperResult, 0, len(marks))
	for _, mark := range marks {
		paper, err := s.papers.GetByID(ctx, mark.PaperID)
		if err != nil {
			return nil, fmt.Errorf("get paper %s: %w", mark.PaperID, err)
		}
		results = append(results, &PaperResult{
			Mark:  mark,
			Paper: paper,
			Total: mark.TotalMark(paper.Type),
		})
	}
	return results, nil
}

// Update corrects a recorded mark.
func (s *PaperMarkService) Update(ctx context.Context, id string, req model.UpdatePaperMarkRequest) (*model.PaperMark, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	mark, err := s.marks.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update paper mark: %w", err)
	}
	invalidatePages(ctx, s.cache, s.log, paperMarkPages)
	return mark, nil
}

// Delete removes a recorded mark by id.
func (s *PaperMarkService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.marks.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete paper mark: %w", err)
	}
	if deleted {
		invalidatePages(ctx, s.cache, s.log, paperMarkPages)
	}
	return deleted, nil
}
