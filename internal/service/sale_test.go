package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	"github.com/shanuka19697/LMS-sub001/internal/mocks"
)

func TestSaleService_Purchase_InvalidatesPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSaleRepository(ctrl)
	cache := mocks.NewMockPageCache(ctrl)
	svc := MustNewSaleService(SaleServiceOptions{Repo: repo, Cache: cache})

	ctx := context.Background()
	req := &model.CreateSaleRequest{StudentID: "s-1", LessonID: "l-1"}

	repo.EXPECT().
		Create(ctx, req).
		Return(&model.Sale{ID: "sale-1", StudentID: "s-1", LessonID: "l-1", PriceCents: 150000}, nil)
	cache.EXPECT().
		InvalidatePages(ctx, "/dashboard/lessons", "/admin/sales").
		Return(nil)

	sale, err := svc.Purchase(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(150000), sale.PriceCents)
}

func TestSaleService_Purchase_InvalidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSaleRepository(ctrl)
	svc := MustNewSaleService(SaleServiceOptions{Repo: repo})

	sale, err := svc.Purchase(context.Background(), &model.CreateSaleRequest{StudentID: "s-1"})
	assert.Nil(t, sale)
	assert.Error(t, err)
}

func TestSaleService_Purchase_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSaleRepository(ctrl)
	svc := MustNewSaleService(SaleServiceOptions{Repo: repo})

	ctx := context.Background()
	req := &model.CreateSaleRequest{StudentID: "s-1", LessonID: "l-1"}
	repo.EXPECT().Create(ctx, req).Return(nil, assert.AnError)

	sale, err := svc.Purchase(ctx, req)
	assert.Nil(t, sale)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSaleService_HasPurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSaleRepository(ctrl)
	svc := MustNewSaleService(SaleServiceOptions{Repo: repo})

	ctx := context.Background()
	repo.EXPECT().HasPurchase(ctx, "s-1", "l-1").Return(true, nil)

	ok, err := svc.HasPurchase(ctx, "s-1", "l-1")
	require.NoError(t, err)
	assert.True(t, ok)
}
