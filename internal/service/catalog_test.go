package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neuroplan/rewards-engine/internal/domain"
	domainmocks "github.com/neuroplan/rewards-engine/internal/domain/mocks"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCatalogService_ListAvailableRewards(t *testing.T) {
	ctx := context.Background()

	t.Run("CanRedeem computed per reward", func(t *testing.T) {
		mockCatalogRepo := domainmocks.NewCatalogRepositoryMock(t)
		mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewCatalogService(mockCatalogRepo, mockLedgerRepo)

		rewards := []*domain.Reward{
			{ID: 1, Name: "Sticker pack", PointsCost: 100, IsActive: true},
			{ID: 2, Name: "Premium theme", PointsCost: 300, IsActive: true},
			{ID: 3, Name: "Premium only", PointsCost: 50, IsPremiumOnly: true, IsActive: true},
			{ID: 4, Name: "Sold out", PointsCost: 50, Stock: int64Ptr(0), IsActive: true},
		}

		mockLedgerRepo.EXPECT().GetBalance(mock.Anything, int64(7)).Return(&domain.Balance{Balance: 200}, nil).Once()
		mockCatalogRepo.EXPECT().ListActiveRewards(mock.Anything).Return(rewards, nil).Once()

		result, err := svc.ListAvailableRewards(ctx, 7, false)
		require.NoError(t, err)
		require.Len(t, result, 4)

		assert.True(t, result[0].CanRedeem)  // хватает баллов
		assert.False(t, result[1].CanRedeem) // не хватает баллов
		assert.False(t, result[2].CanRedeem) // нужен премиум
		assert.False(t, result[3].CanRedeem) // нет запаса
	})

	t.Run("Premium user sees premium rewards", func(t *testing.T) {
		mockCatalogRepo := domainmocks.NewCatalogRepositoryMock(t)
		mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewCatalogService(mockCatalogRepo, mockLedgerRepo)

		rewards := []*domain.Reward{
			{ID: 3, Name: "Premium only", PointsCost: 50, IsPremiumOnly: true, IsActive: true},
		}

		mockLedgerRepo.EXPECT().GetBalance(mock.Anything, int64(7)).Return(&domain.Balance{Balance: 200}, nil).Once()
		mockCatalogRepo.EXPECT().ListActiveRewards(mock.Anything).Return(rewards, nil).Once()

		result, err := svc.ListAvailableRewards(ctx, 7, true)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.True(t, result[0].CanRedeem)
	})

	t.Run("Unlimited stock is redeemable", func(t *testing.T) {
		mockCatalogRepo := domainmocks.NewCatalogRepositoryMock(t)
		mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewCatalogService(mockCatalogRepo, mockLedgerRepo)

		rewards := []*domain.Reward{
			{ID: 5, Name: "Badge", PointsCost: 10, Stock: nil, IsActive: true},
		}

		mockLedgerRepo.EXPECT().GetBalance(mock.Anything, int64(7)).Return(&domain.Balance{Balance: 10}, nil).Once()
		mockCatalogRepo.EXPECT().ListActiveRewards(mock.Anything).Return(rewards, nil).Once()

		result, err := svc.ListAvailableRewards(ctx, 7, false)
		require.NoError(t, err)
		assert.True(t, result[0].CanRedeem)
	})

	t.Run("Balance error", func(t *testing.T) {
		mockCatalogRepo := domainmocks.NewCatalogRepositoryMock(t)
		mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewCatalogService(mockCatalogRepo, mockLedgerRepo)

		mockLedgerRepo.EXPECT().GetBalance(mock.Anything, int64(7)).Return(nil, errors.New("db error")).Once()

		_, err := svc.ListAvailableRewards(ctx, 7, false)
		assert.Error(t, err)
	})
}

func TestCatalogService_GetReward(t *testing.T) {
	mockCatalogRepo := domainmocks.NewCatalogRepositoryMock(t)
	mockLedgerRepo := domainmocks.NewLedgerRepositoryMock(t)
	svc := NewCatalogService(mockCatalogRepo, mockLedgerRepo)
	ctx := context.Background()

	t.Run("Not found", func(t *testing.T) {
		mockCatalogRepo.EXPECT().GetReward(mock.Anything, int64(99)).Return(nil, domain.ErrRewardNotFound).Once()

		_, err := svc.GetReward(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrRewardNotFound)
	})
}
