package postgres

import (
	"context"
	"fmt"

	"github.com/neuroplan/rewards-engine/internal/domain"
)

// ReportingRepository реализует domain.ReportingRepository.
// Только агрегирующие чтения; небольшое отставание от
// транзакционных таблиц допустимо.
type ReportingRepository struct {
	db DBTX
}

// NewReportingRepository создает новый ReportingRepository
func NewReportingRepository(db DBTX) *ReportingRepository {
	return &ReportingRepository{db: db}
}

// GetStoreMetrics собирает агрегаты для админ-дашборда
func (r *ReportingRepository) GetStoreMetrics(ctx context.Context) (*domain.StoreMetrics, error) {
	metrics := &domain.StoreMetrics{
		OrdersByStatus: make(map[domain.OrderStatus]int64),
	}

	err := r.db.QueryRow(ctx,
		`SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_active),
			COUNT(*) FILTER (WHERE is_active AND stock <= low_stock_threshold)
		 FROM store_products`,
	).Scan(&metrics.Products.Total, &metrics.Products.Active, &metrics.Products.LowStock)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get product metrics: %w", err)
	}
	metrics.Products.Inactive = metrics.Products.Total - metrics.Products.Active

	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*) FROM store_orders GROUP BY status`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get order metrics: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status domain.OrderStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("repository: failed to scan order metrics: %w", err)
		}
		metrics.OrdersByStatus[status] = count
		metrics.TotalOrders += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating order metrics: %w", err)
	}

	// Выручка и потраченные баллы без отмененных и возвращенных заказов
	err = r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_in_cents), 0), COALESCE(SUM(points_used), 0)
		 FROM store_orders
		 WHERE status NOT IN ($1, $2)`,
		domain.OrderStatusCanceled, domain.OrderStatusRefunded,
	).Scan(&metrics.RevenueInCents, &metrics.PointsUsed)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get revenue metrics: %w", err)
	}

	return metrics, nil
}
