package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/neuroplan/rewards-engine/internal/domain"
)

// CatalogRepository реализует domain.CatalogRepository
type CatalogRepository struct {
	db DBTX
}

// NewCatalogRepository создает новый CatalogRepository
func NewCatalogRepository(db DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const rewardColumns = `id, name, description, type, points_cost, stock, is_premium_only,
	restockable, discount_type, discount_value, is_active, created_at`

func scanReward(row pgx.Row) (*domain.Reward, error) {
	reward := &domain.Reward{}
	err := row.Scan(
		&reward.ID, &reward.Name, &reward.Description, &reward.Type, &reward.PointsCost,
		&reward.Stock, &reward.IsPremiumOnly, &reward.Restockable,
		&reward.DiscountType, &reward.DiscountValue, &reward.IsActive, &reward.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reward, nil
}

// GetReward получает награду по идентификатору
func (r *CatalogRepository) GetReward(ctx context.Context, id int64) (*domain.Reward, error) {
	reward, err := scanReward(r.db.QueryRow(ctx,
		`SELECT `+rewardColumns+` FROM rewards WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRewardNotFound
		}
		return nil, fmt.Errorf("repository: failed to get reward %d: %w", id, err)
	}
	return reward, nil
}

// ListActiveRewards получает все активные награды по возрастанию стоимости
func (r *CatalogRepository) ListActiveRewards(ctx context.Context) ([]*domain.Reward, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+rewardColumns+` FROM rewards WHERE is_active = TRUE ORDER BY points_cost`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list rewards: %w", err)
	}
	defer rows.Close()

	var rewards []*domain.Reward
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan reward: %w", err)
		}
		rewards = append(rewards, reward)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rewards: %w", err)
	}

	return rewards, nil
}

// DecrementStock атомарно уменьшает запас на единицу.
// Compare-and-decrement: при конечном запасе ноль строк означает,
// что награда закончилась.
func (r *CatalogRepository) DecrementStock(ctx context.Context, rewardID int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE rewards
		 SET stock = stock - 1
		 WHERE id = $1 AND stock IS NOT NULL AND stock > 0`,
		rewardID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to decrement stock for reward %d: %w", rewardID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOutOfStock
	}
	return nil
}

// IncrementStock возвращает единицу запаса (рестокинг при отмене)
func (r *CatalogRepository) IncrementStock(ctx context.Context, rewardID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE rewards SET stock = stock + 1 WHERE id = $1 AND stock IS NOT NULL`,
		rewardID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to increment stock for reward %d: %w", rewardID, err)
	}
	return nil
}
