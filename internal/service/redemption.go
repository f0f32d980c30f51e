package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neuroplan/rewards-engine/internal/domain"
	"github.com/neuroplan/rewards-engine/internal/utils/codes"
)

// RedemptionService оркестрирует обмен баллов на награду.
// Шаги с побочными эффектами (запас, списание, записи) выполняются
// одной транзакцией в репозитории; здесь — валидация, идемпотентность
// и генерация кодов.
type RedemptionService struct {
	catalogRepo    domain.CatalogRepository
	redemptionRepo domain.RedemptionRepository
	now            func() time.Time
}

// NewRedemptionService создает новый RedemptionService
func NewRedemptionService(catalogRepo domain.CatalogRepository, redemptionRepo domain.RedemptionRepository) *RedemptionService {
	return &RedemptionService{
		catalogRepo:    catalogRepo,
		redemptionRepo: redemptionRepo,
		now:            time.Now,
	}
}

// Redeem выполняет обмен баллов на награду.
// Повторный вызов с тем же ключом идемпотентности возвращает исходный
// обмен и не списывает баллы второй раз.
func (s *RedemptionService) Redeem(ctx context.Context, req domain.RedeemRequest) (*domain.Redemption, error) {
	// Быстрый путь повтора: ключ уже известен
	if req.IdempotencyKey != nil {
		existing, err := s.redemptionRepo.GetByIdempotencyKey(ctx, *req.IdempotencyKey)
		if err == nil {
			return s.replay(existing, req)
		}
		if !errors.Is(err, domain.ErrRedemptionNotFound) {
			return nil, fmt.Errorf("redemption service: idempotency lookup failed: %w", err)
		}
	}

	reward, err := s.catalogRepo.GetReward(ctx, req.RewardID)
	if err != nil {
		return nil, err
	}

	if !reward.IsActive {
		return nil, domain.ErrRewardInactive
	}
	if reward.IsPremiumOnly && !req.IsPremium {
		return nil, domain.ErrNotEligible
	}
	if reward.Type == domain.RewardTypeProduct && req.Shipping == nil {
		return nil, domain.ErrShippingRequired
	}

	params := domain.RedeemParams{
		UserID:         req.UserID,
		Reward:         reward,
		IdempotencyKey: req.IdempotencyKey,
		Shipping:       req.Shipping,
	}

	switch reward.Type {
	case domain.RewardTypeDiscount:
		code := codes.CouponCode()
		params.CouponCode = &code
	case domain.RewardTypeProduct:
		number := codes.OrderNumber(s.now())
		params.OrderNumber = &number
	}

	red, _, err := s.redemptionRepo.RedeemTx(ctx, params)
	if err != nil {
		// Гонка двух запросов с одним ключом: проигравший читает
		// результат победителя
		if errors.Is(err, domain.ErrIdempotencyConflict) && req.IdempotencyKey != nil {
			existing, getErr := s.redemptionRepo.GetByIdempotencyKey(ctx, *req.IdempotencyKey)
			if getErr != nil {
				return nil, fmt.Errorf("redemption service: failed to load redemption after key conflict: %w", getErr)
			}
			return s.replay(existing, req)
		}
		return nil, err
	}

	return red, nil
}

// replay проверяет, что повтор по ключу относится к тому же запросу
func (s *RedemptionService) replay(existing *domain.Redemption, req domain.RedeemRequest) (*domain.Redemption, error) {
	if existing.UserID != req.UserID || existing.RewardID != req.RewardID {
		return nil, domain.ErrIdempotencyConflict
	}
	return existing, nil
}

// GetRedemptions получает историю обменов пользователя
func (s *RedemptionService) GetRedemptions(ctx context.Context, userID int64) ([]*domain.Redemption, error) {
	redemptions, err := s.redemptionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("redemption service: failed to get redemptions for user %d: %w", userID, err)
	}
	return redemptions, nil
}

// ApplyCoupon проверяет купон пользователя и возвращает параметры скидки
func (s *RedemptionService) ApplyCoupon(ctx context.Context, userID int64, code string) (*domain.CouponDiscount, error) {
	red, err := s.redemptionRepo.GetByCouponCode(ctx, userID, code)
	if err != nil {
		return nil, err
	}
	if red.CouponUsed {
		return nil, domain.ErrCouponAlreadyUsed
	}
	if red.Status == domain.RedemptionStatusCanceled || red.Status == domain.RedemptionStatusRefunded {
		return nil, domain.ErrCouponNotFound
	}

	reward, err := s.catalogRepo.GetReward(ctx, red.RewardID)
	if err != nil {
		return nil, err
	}
	if reward.Type != domain.RewardTypeDiscount || reward.DiscountType == nil || reward.DiscountValue == nil {
		return nil, domain.ErrCouponNotFound
	}

	return &domain.CouponDiscount{
		Valid:         true,
		DiscountType:  *reward.DiscountType,
		DiscountValue: *reward.DiscountValue,
	}, nil
}

// MarkCouponUsed помечает купон использованным (ровно один раз)
func (s *RedemptionService) MarkCouponUsed(ctx context.Context, userID int64, code string) error {
	return s.redemptionRepo.MarkCouponUsed(ctx, userID, code)
}
