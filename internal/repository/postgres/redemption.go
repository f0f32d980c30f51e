package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/neuroplan/rewards-engine/internal/domain"
)

// RedemptionRepository реализует domain.RedemptionRepository
type RedemptionRepository struct {
	db DBTX
}

// NewRedemptionRepository создает новый RedemptionRepository
func NewRedemptionRepository(db DBTX) *RedemptionRepository {
	return &RedemptionRepository{db: db}
}

const redemptionColumns = `id, user_id, reward_id, points_spent, status, coupon_code,
	coupon_used, coupon_used_at, idempotency_key,
	shipping_name, shipping_address, shipping_city, shipping_state, shipping_zip, shipping_country,
	issued_at, redeemed_at`

func scanRedemption(row pgx.Row) (*domain.Redemption, error) {
	red := &domain.Redemption{}
	var name, address, city, state, zip, country *string
	err := row.Scan(
		&red.ID, &red.UserID, &red.RewardID, &red.PointsSpent, &red.Status, &red.CouponCode,
		&red.CouponUsed, &red.CouponUsedAt, &red.IdempotencyKey,
		&name, &address, &city, &state, &zip, &country,
		&red.IssuedAt, &red.RedeemedAt,
	)
	if err != nil {
		return nil, err
	}
	if name != nil {
		red.Shipping = &domain.ShippingInfo{
			Name: *name, Address: deref(address), City: deref(city),
			State: deref(state), Zip: deref(zip), Country: deref(country),
		}
	}
	return red, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// RedeemTx выполняет единую транзакционную единицу обмена:
// блокировка счета, декремент запаса, проверка и списание баланса,
// создание записи обмена и (для PRODUCT) заказа. Любая ошибка
// откатывает все записи; частичное состояние снаружи не наблюдаемо.
func (r *RedemptionRepository) RedeemTx(ctx context.Context, p domain.RedeemParams) (*domain.Redemption, *domain.Order, error) {
	var red *domain.Redemption
	var order *domain.Order

	err := withRetry(ctx, func() error {
		var err error
		red, order, err = r.redeemOnce(ctx, p)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return red, order, nil
}

func (r *RedemptionRepository) redeemOnce(ctx context.Context, p domain.RedeemParams) (*domain.Redemption, *domain.Order, error) {
	reward := p.Reward

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("repository: failed to begin redeem transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	// Блокировка счета: параллельные списания одного пользователя
	// сериализуются здесь
	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, p.UserID); err != nil {
		return nil, nil, fmt.Errorf("repository: failed to acquire lock for user %d: %w", p.UserID, err)
	}

	// Шаг 1: compare-and-decrement запаса. Для конечного запаса ровно
	// один из конкурентов получит строку, остальные — ErrOutOfStock.
	if reward.Stock != nil {
		tag, err := tx.Exec(ctx,
			`UPDATE rewards SET stock = stock - 1 WHERE id = $1 AND stock > 0`,
			reward.ID,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("repository: failed to decrement stock for reward %d: %w", reward.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return nil, nil, domain.ErrOutOfStock
		}
	}

	// Шаг 2: проверка баланса и списание
	var balance int64
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1`,
		p.UserID,
	).Scan(&balance)
	if err != nil {
		return nil, nil, fmt.Errorf("repository: failed to get balance for user %d: %w", p.UserID, err)
	}

	if balance < reward.PointsCost {
		return nil, nil, domain.ErrInsufficientBalance
	}

	// Шаг 3: запись обмена с зафиксированной ценой
	status := domain.RedemptionStatusCompleted
	if reward.Type == domain.RewardTypeProduct {
		status = domain.RedemptionStatusPending
	}

	red := &domain.Redemption{
		UserID:         p.UserID,
		RewardID:       reward.ID,
		PointsSpent:    reward.PointsCost,
		Status:         status,
		CouponCode:     p.CouponCode,
		IdempotencyKey: p.IdempotencyKey,
		Shipping:       p.Shipping,
	}

	var sn, sa, sc, ss, sz, sco *string
	if p.Shipping != nil {
		sn, sa, sc = &p.Shipping.Name, &p.Shipping.Address, &p.Shipping.City
		ss, sz, sco = &p.Shipping.State, &p.Shipping.Zip, &p.Shipping.Country
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO redemptions (user_id, reward_id, points_spent, status, coupon_code, idempotency_key,
			shipping_name, shipping_address, shipping_city, shipping_state, shipping_zip, shipping_country)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, redeemed_at`,
		p.UserID, reward.ID, reward.PointsCost, status, p.CouponCode, p.IdempotencyKey,
		sn, sa, sc, ss, sz, sco,
	).Scan(&red.ID, &red.RedeemedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "idempotency") {
			// Повтор с тем же ключом: сервис вернет исходный обмен
			return nil, nil, domain.ErrIdempotencyConflict
		}
		return nil, nil, fmt.Errorf("repository: failed to insert redemption: %w", err)
	}

	// Шаг 4: запись в леджер, привязанная к обмену
	_, err = tx.Exec(ctx,
		`INSERT INTO transactions (user_id, amount, type, reason, redemption_id, balance_after)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.UserID, -reward.PointsCost, domain.TransactionTypeSpent,
		fmt.Sprintf("redemption:%d", reward.ID), red.ID, balance-reward.PointsCost,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("repository: failed to insert debit for redemption %d: %w", red.ID, err)
	}

	// Шаг 5: заказ на доставку для PRODUCT наград
	var order *domain.Order
	if p.OrderNumber != nil {
		order = &domain.Order{
			RedemptionID: red.ID,
			UserID:       p.UserID,
			OrderNumber:  *p.OrderNumber,
			Status:       domain.OrderStatusPending,
			PointsUsed:   reward.PointsCost,
		}
		if p.Shipping != nil {
			order.Shipping = *p.Shipping
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO store_orders (redemption_id, user_id, order_number, status, points_used,
				shipping_name, shipping_address, shipping_city, shipping_state, shipping_zip, shipping_country)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			 RETURNING id, created_at, updated_at`,
			red.ID, p.UserID, *p.OrderNumber, domain.OrderStatusPending, reward.PointsCost,
			order.Shipping.Name, order.Shipping.Address, order.Shipping.City,
			order.Shipping.State, order.Shipping.Zip, order.Shipping.Country,
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return nil, nil, fmt.Errorf("repository: failed to insert order for redemption %d: %w", red.ID, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("repository: failed to commit redemption: %w", err)
	}

	return red, order, nil
}

// GetByID получает обмен по идентификатору
func (r *RedemptionRepository) GetByID(ctx context.Context, id int64) (*domain.Redemption, error) {
	red, err := scanRedemption(r.db.QueryRow(ctx,
		`SELECT `+redemptionColumns+` FROM redemptions WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRedemptionNotFound
		}
		return nil, fmt.Errorf("repository: failed to get redemption %d: %w", id, err)
	}
	return red, nil
}

// GetByIdempotencyKey получает обмен по ключу идемпотентности
func (r *RedemptionRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Redemption, error) {
	red, err := scanRedemption(r.db.QueryRow(ctx,
		`SELECT `+redemptionColumns+` FROM redemptions WHERE idempotency_key = $1`, key,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRedemptionNotFound
		}
		return nil, fmt.Errorf("repository: failed to get redemption by idempotency key: %w", err)
	}
	return red, nil
}

// GetByUserID получает историю обменов пользователя
func (r *RedemptionRepository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Redemption, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+redemptionColumns+` FROM redemptions WHERE user_id = $1 ORDER BY redeemed_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get redemptions for user %d: %w", userID, err)
	}
	defer rows.Close()

	var redemptions []*domain.Redemption
	for rows.Next() {
		red, err := scanRedemption(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan redemption: %w", err)
		}
		redemptions = append(redemptions, red)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating redemptions: %w", err)
	}

	return redemptions, nil
}

// GetByCouponCode получает обмен пользователя по коду купона
func (r *RedemptionRepository) GetByCouponCode(ctx context.Context, userID int64, code string) (*domain.Redemption, error) {
	red, err := scanRedemption(r.db.QueryRow(ctx,
		`SELECT `+redemptionColumns+` FROM redemptions WHERE user_id = $1 AND coupon_code = $2`,
		userID, code,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, fmt.Errorf("repository: failed to get redemption by coupon: %w", err)
	}
	return red, nil
}

// MarkCouponUsed помечает купон использованным.
// Guarded update: уже использованный купон дает ноль строк.
func (r *RedemptionRepository) MarkCouponUsed(ctx context.Context, userID int64, code string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE redemptions
		 SET coupon_used = TRUE, coupon_used_at = now()
		 WHERE user_id = $1 AND coupon_code = $2 AND coupon_used = FALSE`,
		userID, code,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to mark coupon used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCouponAlreadyUsed
	}
	return nil
}

// UpdateStatus меняет статус обмена (используется только машиной
// состояний заказа при отмене/возврате)
func (r *RedemptionRepository) UpdateStatus(ctx context.Context, id int64, status domain.RedemptionStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE redemptions SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update redemption %d status: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRedemptionNotFound
	}
	return nil
}

// ListUnissued возвращает обмены без отправленного события выдачи
func (r *RedemptionRepository) ListUnissued(ctx context.Context, limit int) ([]*domain.Redemption, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+redemptionColumns+` FROM redemptions
		 WHERE issued_at IS NULL AND status <> $1
		 ORDER BY redeemed_at
		 LIMIT $2`,
		domain.RedemptionStatusCanceled, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list unissued redemptions: %w", err)
	}
	defer rows.Close()

	var redemptions []*domain.Redemption
	for rows.Next() {
		red, err := scanRedemption(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan redemption: %w", err)
		}
		redemptions = append(redemptions, red)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating unissued redemptions: %w", err)
	}

	return redemptions, nil
}

// MarkIssued помечает событие выдачи отправленным. Guarded update:
// при гонке двух воркеров только один получит true.
func (r *RedemptionRepository) MarkIssued(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE redemptions SET issued_at = now() WHERE id = $1 AND issued_at IS NULL`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to mark redemption %d issued: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
