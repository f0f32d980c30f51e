package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/neuroplan/rewards-engine/internal/domain"
)

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, redemption_id, user_id, order_number, status, points_used, total_in_cents,
	shipping_name, shipping_address, shipping_city, shipping_state, shipping_zip, shipping_country,
	tracking_code, internal_notes, shipped_at, delivered_at, created_at, updated_at`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	o := &domain.Order{}
	err := row.Scan(
		&o.ID, &o.RedemptionID, &o.UserID, &o.OrderNumber, &o.Status, &o.PointsUsed, &o.TotalInCents,
		&o.Shipping.Name, &o.Shipping.Address, &o.Shipping.City, &o.Shipping.State, &o.Shipping.Zip, &o.Shipping.Country,
		&o.TrackingCode, &o.InternalNotes, &o.ShippedAt, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// GetByID получает заказ по идентификатору
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM store_orders WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %d: %w", id, err)
	}
	return order, nil
}

// GetByUserID получает заказы пользователя
func (r *OrderRepository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM store_orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get orders for user %d: %w", userID, err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]*domain.Order, error) {
	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}
	return orders, nil
}

// List возвращает страницу заказов по фильтру админки
func (r *OrderRepository) List(ctx context.Context, filter domain.OrderFilter, page, limit int) (*domain.OrderPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	where := []string{"TRUE"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		where = append(where,
			"(order_number ILIKE $"+n+" OR shipping_name ILIKE $"+n+" OR tracking_code ILIKE $"+n+")")
	}

	cond := strings.Join(where, " AND ")

	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM store_orders WHERE `+cond, args...,
	).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to count orders: %w", err)
	}

	args = append(args, limit, (page-1)*limit)
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM store_orders WHERE `+cond+
			` ORDER BY created_at DESC LIMIT $`+strconv.Itoa(len(args)-1)+` OFFSET $`+strconv.Itoa(len(args)),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list orders: %w", err)
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &domain.OrderPage{
		Items:      orders,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatusGuarded переводит заказ из from в to, проверяя текущий
// статус в самом UPDATE (оптимистическая блокировка). Ноль строк
// означает, что заказ изменился под другим администратором.
func (r *OrderRepository) UpdateStatusGuarded(ctx context.Context, orderID int64, from, to domain.OrderStatus, trackingCode, notes *string) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx,
		`UPDATE store_orders
		 SET status = $3,
		     tracking_code = COALESCE($4, tracking_code),
		     internal_notes = COALESCE($5, internal_notes),
		     shipped_at = CASE WHEN $3 = 'SHIPPED' THEN now() ELSE shipped_at END,
		     delivered_at = CASE WHEN $3 = 'DELIVERED' THEN now() ELSE delivered_at END,
		     updated_at = now()
		 WHERE id = $1 AND status = $2
		 RETURNING `+orderColumns,
		orderID, from, to, trackingCode, notes,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Заказ либо не существует, либо его статус уже не from
			if _, getErr := r.GetByID(ctx, orderID); getErr != nil {
				return nil, getErr
			}
			return nil, domain.ErrOrderConflict
		}
		return nil, fmt.Errorf("repository: failed to update order %d status: %w", orderID, err)
	}
	return order, nil
}
