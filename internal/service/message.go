package service

import (
	"context"
	"fmt"

	"github.com/shanuka19697/LMS-sub001/internal/core"
	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
)

// MessageServiceOptions groups dependencies for MessageService.
type MessageServiceOptions struct {
	Repo   core.MessageRepository
	Cache  core.PageCache // optional
	Logger DebugLogger    // optional
}

// MessageService manages broadcast messages shown to students.
type MessageService struct {
	repo  core.MessageRepository
	cache core.PageCache
	log   DebugLogger
}

// NewMessageService constructs a new MessageService.
func NewMessageService(opts MessageServiceOptions) (*MessageService, error) {
	if opts.Repo == nil {
		return nil, fmt.Errorf("MessageRepository is required")
	}
	return &MessageService{
		repo:  opts.Repo,
		cache: opts.Cache,
		log:   opts.Logger,
	}, nil
}

// MustNewMessageService constructs a new MessageService and panics on invalid options.
func MustNewMessageService(opts MessageServiceOptions) *MessageService {
	svc, err := NewMessageService(opts)
	if err != nil {
		panic(err)
	}
	return svc
}

// Create creates a message.
func (s *MessageService) Create(ctx context.Context, req *model.CreateMessageRequest) (*model.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	msg, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	invalidatePages(ctx, s.cache, s.log, messagePages)
	return msg, nil
}

// GetByID returns a message by id.
func (s *MessageService) GetByID(ctx context.Context, id string) (*model.Message, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns messages with pagination.
func (s *MessageService) List(ctx context.Context, limit, offset int) ([]*model.Message, error) {
	return s.repo.List(ctx, limit, offset)
}

// Update updates a message.
func (s *MessageService) Update(ctx context.Context, id string, req model.UpdateMessageRequest) (*model.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	msg, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update message: %w", err)
	}
	invalidatePages(ctx, s.cache, s.log, messagePages)
	return msg, nil
}

// Delete deletes a message by id.
func (s *MessageService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete message: %w", err)
	}
	if deleted {
		invalidatePages(ctx, s.cache, s.log, messagePages)
	}
	return deleted, nil
}
