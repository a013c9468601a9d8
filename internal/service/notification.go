package service

import (
	"context"
	"fmt"

	"github.com/shanuka19697/LMS-sub001/internal/core"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
)

// NotificationServiceOptions groups dependencies for NotificationService.
type NotificationServiceOptions struct {
	Repo   core.NotificationRepository
	Cache  core.PageCache // optional
	Logger DebugLogger    // optional
}

// NotificationService manages dashboard notifications.
type NotificationService struct {
	repo  core.NotificationRepository
	cache core.PageCache
	log   DebugLogger
}

// NewNotificationService constructs a new NotificationService.
func NewNotificationService(opts NotificationServiceOptions) (*NotificationService, error) {
	if opts.Repo == nil {
		return nil, fmt.Errorf("NotificationRepository is required")
	}
	return &NotificationService{
		repo:  opts.Repo,
		cache: opts.Cache,
		log:   opts.Logger,
	}, nil
}

// MustNewNotificationService constructs a new NotificationService and panics on invalid options.
func MustNewNotificationService(opts NotificationServiceOptions) *NotificationService {
	svc, err := NewNotificationService(opts)
	if err != nil {
		panic(err)
	}
	return svc
}

// Create creates a notification.
func (s *NotificationService) Create(ctx context.Context, req *model.CreateNotificationRequest) (*model.Notification, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	n, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	invalidatePages(ctx, s.cache, s.log, notificationPages)
	return n, nil
}

// GetByID returns a notification by id.
func (s *NotificationService) GetByID(ctx context.Context, id string) (*model.Notification, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns notifications with pagination.
func (s *NotificationService) List(ctx context.Context, limit, offset int) ([]*model.Notification, error) {
	return s.repo.List(ctx, limit, offset)
}

// Update updates a notification.
func (s *NotificationService) Update(ctx context.Context, id string, req model.UpdateNotificationRequest) (*model.Notification, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	n, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update notification: %w", err)
	}
	invalidatePages(ctx, s.cache, s.log, notificationPages)
	return n, nil
}

// Delete deletes a notification by id.
func (s *NotificationService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete notification: %w", err)
	}
	if deleted {
		invalidatePages(ctx, s.cache, s.log, notificationPages)
	}
	return deleted, nil
}
