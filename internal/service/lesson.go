package service

import (
	"context"
	"fmt"

	"github.com/shanuka19697/LMS-sub001/internal/core"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
)

// LessonServiceOptions groups dependencies for LessonService.
type LessonServiceOptions struct {
	Repo   core.LessonRepository
	Sales  core.SaleRepository // optional, enables access checks
	Cache  core.PageCache      // optional
	Logger DebugLogger         // optional
}

// LessonService manages the lesson catalogue. Meeting credentials are
// stored decomposed (id and password), never as the raw URL.
type LessonService struct {
	repo  core.LessonRepository
	sales core.SaleRepository
	cache core.PageCache
	log   DebugLogger
}

// NewLessonService constructs a new LessonService.
func NewLessonService(opts LessonServiceOptions) (*LessonService, error) {
	if opts.Repo == nil {
		return nil, fmt.Errorf("LessonRepository is required")
	}
	return &LessonService{
		repo:  opts.Repo,
		sales: opts.Sales,
		cache: opts.Cache,
		log:   opts.Logger,
	}, nil
}

// MustNewLessonService constructs a new LessonService and panics on invalid options.
func MustNewLessonService(opts LessonServiceOptions) *LessonService {
	svc, err := NewLessonService(opts)
	if err != nil {
		panic(err)
	}
	return svc
}

// Create creates a lesson.
func (s *LessonService) Create(ctx context.Context, req *model.CreateLessonRequest) (*model.Lesson, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	lesson, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create lesson: %w", err)
	}
	invalidatePages(ctx, s.cache, s.log, lessonPages)
	return lesson, nil
}

// GetByID returns a lesson by id.
func (s *LessonService) GetByID(ctx context.Context, id string) (*model.Lesson, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns lessons ordered by date, newest first.
func (s *LessonService) List(ctx context.Context, limit, offset int) ([]*model.Lesson, error) {
	return s.repo.List(ctx, limit, offset)
}

// GetForStudent returns a lesson with meeting credentials blanked unless
// the student has purchased it.
func (s *LessonService) GetForStudent(ctx context.Context, lessonID, studentID string) (*model.Lesson, error) {
	lesson, err := s.repo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	purchased := false
	if s.sales != nil {
		purchased, err = s.sales.HasPurchase(ctx, studentID, lessonID)
		if err != nil {
			return nil, fmt.Errorf("check purchase: %w", err)
		}
	}
	if !purchased {
		redacted := *lesson
		redacted.MeetingID = ""
		redacted.MeetingPassword = ""
		return &redacted, nil
	}
	return lesson, nil
}

// purchaseLookupLimit caps the purchase-set query backing ListForStudent.
// A student's purchase count is bounded by the lesson catalogue size.
const purchaseLookupLimit = 1000

// ListForStudent returns lessons with meeting credentials blanked on
// every lesson the student has not purchased.
func (s *LessonService) ListForStudent(ctx context.Context, studentID string, limit, offset int) ([]*model.Lesson, error) {
	lessons, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	purchased := map[string]bool{}
	if s.sales != nil {
		sales, err := s.sales.ListByStudent(ctx, studentID, purchaseLookupLimit, 0)
		if err != nil {
			return nil, fmt.Errorf("list purchases: %w", err)
		}
		for _, sale := range sales {
			purchased[sale.LessonID] = true
		}
	}

	out := make([]*model.Lesson, 0, len(lessons))
	for _, lesson := range lessons {
		if purchased[lesson.ID] {
			out = append(out, lesson)
			continue
		}
		redacted := *lesson
		redacted.MeetingID = ""
		redacted.MeetingPassword = ""
		out = append(out, &redacted)
	}
	return out, nil
}

// Update updates a lesson.
func (s *LessonService) Update(ctx context.Context, id string, req model.UpdateLessonRequest) (*model.Lesson, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	lesson, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update lesson: %w", err)
	}
	invalidatePages(ctx, s.cache, s.log, lessonPages)
	return lesson, nil
}

// Delete deletes a lesson by id.
func (s *LessonService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete lesson: %w", err)
	}
	if deleted {
		invalidatePages(ctx, s.cache, s.log, lessonPages)
	}
	return deleted, nil
}
