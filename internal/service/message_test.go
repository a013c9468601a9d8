package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	"github.com/shanuka19697/LMS-sub001/internal/mocks"
	"github.com/shanuka19697/LMS-sub001/internal/testutil"
)

func TestMessageService_CreateUpdateDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMessageRepository(ctrl)
	cache := mocks.NewMockPageCache(ctrl)
	svc := MustNewMessageService(MessageServiceOptions{Repo: repo, Cache: cache})
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		req := &model.CreateMessageRequest{Title: "Class moved", Body: "Saturday class starts at 9am."}
		repo.EXPECT().Create(ctx, req).Return(&model.Message{ID: "m-1", Title: req.Title}, nil)
		cache.EXPECT().InvalidatePages(ctx, "/dashboard/messages", "/admin/messages").Return(nil)

		msg, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "m-1", msg.ID)
	})

	t.Run("create rejects empty title", func(t *testing.T) {
		msg, err := svc.Create(ctx, &model.CreateMessageRequest{Body: "no title"})
		assert.Nil(t, msg)
		assert.Error(t, err)
	})

	t.Run("update", func(t *testing.T) {
		req := model.UpdateMessageRequest{Body: testutil.StringPtr("Rescheduled to 10am.")}
		repo.EXPECT().Update(ctx, "m-1", req).Return(&model.Message{ID: "m-1"}, nil)
		cache.EXPECT().InvalidatePages(ctx, gomock.Any()).Return(nil)

		_, err := svc.Update(ctx, "m-1", req)
		require.NoError(t, err)
	})

	t.Run("delete missing skips invalidation", func(t *testing.T) {
		repo.EXPECT().Delete(ctx, "m-404").Return(false, nil)

		deleted, err := svc.Delete(ctx, "m-404")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestNotificationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockNotificationRepository(ctrl)
	cache := mocks.NewMockPageCache(ctrl)
	svc := MustNewNotificationService(NotificationServiceOptions{Repo: repo, Cache: cache})
	ctx := context.Background()

	req := &model.CreateNotificationRequest{Title: "Results out", Body: "2026 MCQ paper results are published."}
	repo.EXPECT().Create(ctx, req).Return(&model.Notification{ID: "n-1"}, nil)
	cache.EXPECT().
		InvalidatePages(ctx, "/dashboard", "/dashboard/notifications", "/admin/notifications").
		Return(nil)

	n, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "n-1", n.ID)
}
