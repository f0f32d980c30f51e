package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroplan/rewards-engine/internal/domain"
)

func rewardRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "name", "description", "type", "points_cost", "stock", "is_premium_only",
		"restockable", "discount_type", "discount_value", "is_active", "created_at",
	})
}

func TestCatalogRepository_GetReward(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCatalogRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		pct := domain.DiscountTypePercentage
		discount := int64(15)
		mock.ExpectQuery(`SELECT(.|\n)*FROM rewards WHERE id = \$1`).
			WithArgs(int64(2)).
			WillReturnRows(rewardRows().AddRow(
				int64(2), "Premium discount", "15% off premium", domain.RewardTypeDiscount, int64(200),
				stockPtr(5), false, true, &pct, &discount, true, time.Now(),
			))

		reward, err := repo.GetReward(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(200), reward.PointsCost)
		require.NotNil(t, reward.Stock)
		assert.Equal(t, int64(5), *reward.Stock)
		assert.Equal(t, domain.DiscountTypePercentage, *reward.DiscountType)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT(.|\n)*FROM rewards WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(rewardRows())

		_, err := repo.GetReward(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrRewardNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT(.|\n)*FROM rewards WHERE id = \$1`).
			WithArgs(int64(2)).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.GetReward(ctx, 2)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogRepository_ListActiveRewards(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCatalogRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT(.|\n)*FROM rewards WHERE is_active = TRUE ORDER BY points_cost`).
			WillReturnRows(rewardRows().
				AddRow(int64(1), "Feature week", "", domain.RewardTypeFeature, int64(100),
					(*int64)(nil), false, false, (*domain.DiscountType)(nil), (*int64)(nil), true, time.Now()).
				AddRow(int64(3), "Fidget cube", "", domain.RewardTypeProduct, int64(500),
					stockPtr(10), false, true, (*domain.DiscountType)(nil), (*int64)(nil), true, time.Now()))

		rewards, err := repo.ListActiveRewards(ctx)
		require.NoError(t, err)
		require.Len(t, rewards, 2)
		assert.Nil(t, rewards[0].Stock)
		assert.Equal(t, domain.RewardTypeProduct, rewards[1].Type)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty catalog", func(t *testing.T) {
		mock.ExpectQuery(`SELECT(.|\n)*FROM rewards WHERE is_active = TRUE`).
			WillReturnRows(rewardRows())

		rewards, err := repo.ListActiveRewards(ctx)
		require.NoError(t, err)
		assert.Empty(t, rewards)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogRepository_DecrementStock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCatalogRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE rewards(.|\n)*SET stock = stock - 1`).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.DecrementStock(ctx, 3)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Out of stock", func(t *testing.T) {
		mock.ExpectExec(`UPDATE rewards(.|\n)*SET stock = stock - 1`).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.DecrementStock(ctx, 3)
		assert.ErrorIs(t, err, domain.ErrOutOfStock)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogRepository_IncrementStock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCatalogRepository(mock)
	ctx := context.Background()

	t.Run("Unlimited stock is a no-op", func(t *testing.T) {
		mock.ExpectExec(`UPDATE rewards SET stock = stock \+ 1 WHERE id = \$1 AND stock IS NOT NULL`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.IncrementStock(ctx, 1)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
