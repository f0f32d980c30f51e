package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroplan/rewards-engine/internal/domain"
)

func orderRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "redemption_id", "user_id", "order_number", "status", "points_used", "total_in_cents",
		"shipping_name", "shipping_address", "shipping_city", "shipping_state", "shipping_zip", "shipping_country",
		"tracking_code", "internal_notes", "shipped_at", "delivered_at", "created_at", "updated_at",
	})
}

func addOrderRow(rows *pgxmock.Rows, id int64, number string, status domain.OrderStatus) *pgxmock.Rows {
	return rows.AddRow(
		id, int64(11), int64(7), number, status, int64(500), int64(0),
		"Ana", "Rua A 1", "SP", "SP", "01000", "BR",
		(*string)(nil), (*string)(nil), (*time.Time)(nil), (*time.Time)(nil), time.Now(), time.Now(),
	)
}

func TestOrderRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT(.|\n)*FROM store_orders WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(addOrderRow(orderRows(), 1, "NP20260901-ABC234", domain.OrderStatusPending))

		order, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "NP20260901-ABC234", order.OrderNumber)
		assert.Equal(t, "Ana", order.Shipping.Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT(.|\n)*FROM store_orders WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(orderRows())

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Filter by status with search", func(t *testing.T) {
		status := domain.OrderStatusShipped
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM store_orders`).
			WithArgs(status, "%NP2026%").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
		mock.ExpectQuery(`SELECT(.|\n)*FROM store_orders(.|\n)*ORDER BY created_at DESC LIMIT \$3 OFFSET \$4`).
			WithArgs(status, "%NP2026%", 20, 0).
			WillReturnRows(addOrderRow(orderRows(), 1, "NP20260901-ABC234", status))

		page, err := repo.List(ctx, domain.OrderFilter{Status: &status, Search: "NP2026"}, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
		assert.Equal(t, 1, page.TotalPages)
		require.Len(t, page.Items, 1)
		assert.Equal(t, status, page.Items[0].Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Normalizes page and limit", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM store_orders`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(45)))
		mock.ExpectQuery(`SELECT(.|\n)*FROM store_orders(.|\n)*LIMIT \$1 OFFSET \$2`).
			WithArgs(20, 0).
			WillReturnRows(orderRows())

		page, err := repo.List(ctx, domain.OrderFilter{}, 0, -1)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 20, page.Limit)
		assert.Equal(t, 3, page.TotalPages)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_UpdateStatusGuarded(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		tracking := "BR123456789"
		mock.ExpectQuery(`UPDATE store_orders(.|\n)*WHERE id = \$1 AND status = \$2(.|\n)*RETURNING`).
			WithArgs(int64(1), domain.OrderStatusProcessing, domain.OrderStatusShipped, &tracking, (*string)(nil)).
			WillReturnRows(addOrderRow(orderRows(), 1, "NP20260901-ABC234", domain.OrderStatusShipped))

		order, err := repo.UpdateStatusGuarded(ctx, 1, domain.OrderStatusProcessing, domain.OrderStatusShipped, &tracking, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusShipped, order.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Concurrent change detected", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE store_orders(.|\n)*WHERE id = \$1 AND status = \$2`).
			WithArgs(int64(1), domain.OrderStatusProcessing, domain.OrderStatusShipped, (*string)(nil), (*string)(nil)).
			WillReturnRows(orderRows())
		mock.ExpectQuery(`SELECT(.|\n)*FROM store_orders WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(addOrderRow(orderRows(), 1, "NP20260901-ABC234", domain.OrderStatusCanceled))

		_, err := repo.UpdateStatusGuarded(ctx, 1, domain.OrderStatusProcessing, domain.OrderStatusShipped, nil, nil)
		assert.ErrorIs(t, err, domain.ErrOrderConflict)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Order not found", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE store_orders(.|\n)*WHERE id = \$1 AND status = \$2`).
			WithArgs(int64(99), domain.OrderStatusPaid, domain.OrderStatusProcessing, (*string)(nil), (*string)(nil)).
			WillReturnRows(orderRows())
		mock.ExpectQuery(`SELECT(.|\n)*FROM store_orders WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(orderRows())

		_, err := repo.UpdateStatusGuarded(ctx, 99, domain.OrderStatusPaid, domain.OrderStatusProcessing, nil, nil)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
