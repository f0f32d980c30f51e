package service

import (
	"context"
	"fmt"

	"github.com/neuroplan/rewards-engine/internal/domain"
)

// CatalogService предоставляет чтение каталога наград.
// Флаг CanRedeem считается здесь и только здесь — это чистая функция
// от (баланс, запас, премиум-флаг).
type CatalogService struct {
	catalogRepo domain.CatalogRepository
	ledgerRepo  domain.LedgerRepository
}

// NewCatalogService создает новый CatalogService
func NewCatalogService(catalogRepo domain.CatalogRepository, ledgerRepo domain.LedgerRepository) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// GetReward получает награду по идентификатору
func (s *CatalogService) GetReward(ctx context.Context, id int64) (*domain.Reward, error) {
	reward, err := s.catalogRepo.GetReward(ctx, id)
	if err != nil {
		return nil, err
	}
	return reward, nil
}

// ListAvailableRewards получает активные награды с вычисленной
// доступностью для конкретного пользователя
func (s *CatalogService) ListAvailableRewards(ctx context.Context, userID int64, isPremium bool) ([]*domain.AvailableReward, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to get balance for user %d: %w", userID, err)
	}

	rewards, err := s.catalogRepo.ListActiveRewards(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to list rewards: %w", err)
	}

	available := make([]*domain.AvailableReward, 0, len(rewards))
	for _, reward := range rewards {
		available = append(available, &domain.AvailableReward{
			Reward:    *reward,
			CanRedeem: canRedeem(reward, balance.Balance, isPremium),
		})
	}

	return available, nil
}

// canRedeem — единственное место, где решается доступность награды
func canRedeem(reward *domain.Reward, balance int64, isPremium bool) bool {
	if balance < reward.PointsCost {
		return false
	}
	if reward.IsPremiumOnly && !isPremium {
		return false
	}
	if reward.Stock != nil && *reward.Stock <= 0 {
		return false
	}
	return true
}
