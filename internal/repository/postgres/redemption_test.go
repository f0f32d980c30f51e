package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroplan/rewards-engine/internal/domain"
)

func stockPtr(v int64) *int64 { return &v }

func TestRedemptionRepository_RedeemTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRedemptionRepository(mock)
	ctx := context.Background()

	t.Run("Success - limited stock reward", func(t *testing.T) {
		reward := &domain.Reward{ID: 2, Type: domain.RewardTypeDiscount, PointsCost: 200, Stock: stockPtr(5)}
		code := "NP-ABC23456"

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`UPDATE rewards SET stock = stock - 1`).
			WithArgs(int64(2)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM transactions`).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(500)))
		mock.ExpectQuery(`INSERT INTO redemptions`).
			WithArgs(int64(7), int64(2), int64(200), domain.RedemptionStatusCompleted, &code, (*string)(nil),
				(*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "redeemed_at"}).AddRow(int64(10), time.Now()))
		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(int64(7), int64(-200), domain.TransactionTypeSpent, "redemption:2", int64(10), int64(300)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		red, order, err := repo.RedeemTx(ctx, domain.RedeemParams{
			UserID:     7,
			Reward:     reward,
			CouponCode: &code,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(10), red.ID)
		assert.Equal(t, int64(200), red.PointsSpent)
		assert.Equal(t, domain.RedemptionStatusCompleted, red.Status)
		assert.Nil(t, order)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Product reward creates order", func(t *testing.T) {
		reward := &domain.Reward{ID: 3, Type: domain.RewardTypeProduct, PointsCost: 500}
		number := "NP20260901-ABC234"
		shipping := &domain.ShippingInfo{Name: "Ana", Address: "Rua A 1", City: "SP", State: "SP", Zip: "01000", Country: "BR"}

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM transactions`).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(800)))
		mock.ExpectQuery(`INSERT INTO redemptions`).
			WithArgs(int64(7), int64(3), int64(500), domain.RedemptionStatusPending, (*string)(nil), (*string)(nil),
				&shipping.Name, &shipping.Address, &shipping.City, &shipping.State, &shipping.Zip, &shipping.Country).
			WillReturnRows(pgxmock.NewRows([]string{"id", "redeemed_at"}).AddRow(int64(11), time.Now()))
		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(int64(7), int64(-500), domain.TransactionTypeSpent, "redemption:3", int64(11), int64(300)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery(`INSERT INTO store_orders`).
			WithArgs(int64(11), int64(7), number, domain.OrderStatusPending, int64(500),
				"Ana", "Rua A 1", "SP", "SP", "01000", "BR").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), time.Now(), time.Now()))
		mock.ExpectCommit()

		red, order, err := repo.RedeemTx(ctx, domain.RedeemParams{
			UserID:      7,
			Reward:      reward,
			Shipping:    shipping,
			OrderNumber: &number,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RedemptionStatusPending, red.Status)
		require.NotNil(t, order)
		assert.Equal(t, number, order.OrderNumber)
		assert.Equal(t, domain.OrderStatusPending, order.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Out of stock rolls back everything", func(t *testing.T) {
		reward := &domain.Reward{ID: 2, Type: domain.RewardTypeDiscount, PointsCost: 200, Stock: stockPtr(0)}

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`UPDATE rewards SET stock = stock - 1`).
			WithArgs(int64(2)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		_, _, err := repo.RedeemTx(ctx, domain.RedeemParams{UserID: 7, Reward: reward})
		assert.ErrorIs(t, err, domain.ErrOutOfStock)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insufficient balance rolls back stock decrement", func(t *testing.T) {
		reward := &domain.Reward{ID: 2, Type: domain.RewardTypeDiscount, PointsCost: 200, Stock: stockPtr(5)}

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectExec(`UPDATE rewards SET stock = stock - 1`).
			WithArgs(int64(2)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM transactions`).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(100)))
		mock.ExpectRollback()

		_, _, err := repo.RedeemTx(ctx, domain.RedeemParams{UserID: 7, Reward: reward})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate idempotency key", func(t *testing.T) {
		reward := &domain.Reward{ID: 2, Type: domain.RewardTypeDiscount, PointsCost: 200}
		key := "client-key-1"

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM transactions`).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(500)))
		mock.ExpectQuery(`INSERT INTO redemptions`).
			WithArgs(int64(7), int64(2), int64(200), domain.RedemptionStatusCompleted, (*string)(nil), &key,
				(*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "redemptions_idempotency_key_key"})
		mock.ExpectRollback()

		_, _, err := repo.RedeemTx(ctx, domain.RedeemParams{UserID: 7, Reward: reward, IdempotencyKey: &key})
		assert.ErrorIs(t, err, domain.ErrIdempotencyConflict)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedemptionRepository_MarkCouponUsed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRedemptionRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE redemptions`).
			WithArgs(int64(7), "NP-ABC23456").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.MarkCouponUsed(ctx, 7, "NP-ABC23456")
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already used", func(t *testing.T) {
		mock.ExpectExec(`UPDATE redemptions`).
			WithArgs(int64(7), "NP-ABC23456").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.MarkCouponUsed(ctx, 7, "NP-ABC23456")
		assert.ErrorIs(t, err, domain.ErrCouponAlreadyUsed)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedemptionRepository_MarkIssued(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRedemptionRepository(mock)
	ctx := context.Background()

	t.Run("First marker wins", func(t *testing.T) {
		mock.ExpectExec(`UPDATE redemptions SET issued_at = now\(\)`).
			WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		marked, err := repo.MarkIssued(ctx, 5)
		require.NoError(t, err)
		assert.True(t, marked)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Second marker loses", func(t *testing.T) {
		mock.ExpectExec(`UPDATE redemptions SET issued_at = now\(\)`).
			WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		marked, err := repo.MarkIssued(ctx, 5)
		require.NoError(t, err)
		assert.False(t, marked)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedemptionRepository_GetByIdempotencyKey(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRedemptionRepository(mock)
	ctx := context.Background()

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT(.|\n)*FROM redemptions WHERE idempotency_key`).
			WithArgs("missing-key").
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "user_id", "reward_id", "points_spent", "status", "coupon_code",
				"coupon_used", "coupon_used_at", "idempotency_key",
				"shipping_name", "shipping_address", "shipping_city", "shipping_state", "shipping_zip", "shipping_country",
				"issued_at", "redeemed_at",
			}))

		_, err := repo.GetByIdempotencyKey(ctx, "missing-key")
		assert.ErrorIs(t, err, domain.ErrRedemptionNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
