package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/neuroplan/rewards-engine/internal/domain"
	"go.uber.org/zap"
)

// FulfillmentService управляет жизненным циклом заказов на доставку
// и оркестрирует возвраты через леджер
type FulfillmentService struct {
	orderRepo      domain.OrderRepository
	redemptionRepo domain.RedemptionRepository
	catalogRepo    domain.CatalogRepository
	ledgerRepo     domain.LedgerRepository
	logger         *zap.Logger
}

// NewFulfillmentService создает новый FulfillmentService
func NewFulfillmentService(
	orderRepo domain.OrderRepository,
	redemptionRepo domain.RedemptionRepository,
	catalogRepo domain.CatalogRepository,
	ledgerRepo domain.LedgerRepository,
	logger *zap.Logger,
) *FulfillmentService {
	return &FulfillmentService{
		orderRepo:      orderRepo,
		redemptionRepo: redemptionRepo,
		catalogRepo:    catalogRepo,
		ledgerRepo:     ledgerRepo,
		logger:         logger,
	}
}

// UpdateStatus применяет админский переход статуса.
// Недопустимый переход отклоняется без изменения состояния;
// гонка со вторым администратором дает ErrOrderConflict.
func (s *FulfillmentService) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus, trackingCode, notes *string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransition(status) {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.orderRepo.UpdateStatusGuarded(ctx, orderID, order.Status, status, trackingCode, notes)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CancelOrder отменяет заказ и, если запрошено, возвращает баллы.
// Возврат строго равен зафиксированному points_spent обмена.
// Повторная отмена уже отмененного заказа — no-op: 0 баллов, без ошибки.
func (s *FulfillmentService) CancelOrder(ctx context.Context, orderID int64, reason string, refundPoints bool) (int64, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return 0, err
	}

	if order.Status == domain.OrderStatusCanceled {
		return 0, nil
	}
	if order.Status.IsTerminal() {
		return 0, domain.ErrInvalidTransition
	}

	notes := "canceled by admin"
	if reason != "" {
		notes = "canceled: " + reason
	}

	if _, err = s.orderRepo.UpdateStatusGuarded(ctx, orderID, order.Status, domain.OrderStatusCanceled, nil, &notes); err != nil {
		// Параллельная отмена могла успеть раньше — тогда это no-op
		if errors.Is(err, domain.ErrOrderConflict) {
			current, getErr := s.orderRepo.GetByID(ctx, orderID)
			if getErr == nil && current.Status == domain.OrderStatusCanceled {
				return 0, nil
			}
		}
		return 0, err
	}

	if err = s.redemptionRepo.UpdateStatus(ctx, order.RedemptionID, domain.RedemptionStatusCanceled); err != nil {
		return 0, fmt.Errorf("fulfillment service: failed to cancel redemption %d: %w", order.RedemptionID, err)
	}

	var refunded int64
	if refundPoints {
		refunded, err = s.refund(ctx, order)
		if err != nil {
			return 0, err
		}
	}

	s.restock(ctx, order.RedemptionID)

	return refunded, nil
}

// refund возвращает ровно points_spent обмена.
// Частичный уникальный индекс в леджере гарантирует, что второй
// возврат по тому же обмену не запишется.
func (s *FulfillmentService) refund(ctx context.Context, order *domain.Order) (int64, error) {
	red, err := s.redemptionRepo.GetByID(ctx, order.RedemptionID)
	if err != nil {
		return 0, err
	}

	// Использованный купон возврату не подлежит
	if red.CouponUsed {
		s.logger.Warn("refund refused: coupon already used",
			zap.Int64("order_id", order.ID),
			zap.Int64("redemption_id", red.ID),
		)
		return 0, nil
	}

	reason := fmt.Sprintf("refund:order:%s", order.OrderNumber)
	_, err = s.ledgerRepo.CreditWithLock(ctx, order.UserID, red.PointsSpent, domain.TransactionTypeRefund, reason, &red.ID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyRefunded) {
			return 0, nil
		}
		return 0, fmt.Errorf("fulfillment service: failed to refund order %d: %w", order.ID, err)
	}

	return red.PointsSpent, nil
}

// restock возвращает единицу запаса, если награда рестокабельна.
// Ошибка рестока не отменяет уже выполненную отмену заказа.
func (s *FulfillmentService) restock(ctx context.Context, redemptionID int64) {
	red, err := s.redemptionRepo.GetByID(ctx, redemptionID)
	if err != nil {
		s.logger.Error("restock: failed to load redemption", zap.Int64("redemption_id", redemptionID), zap.Error(err))
		return
	}

	reward, err := s.catalogRepo.GetReward(ctx, red.RewardID)
	if err != nil {
		s.logger.Error("restock: failed to load reward", zap.Int64("reward_id", red.RewardID), zap.Error(err))
		return
	}

	if !reward.Restockable || reward.Stock == nil {
		return
	}

	if err := s.catalogRepo.IncrementStock(ctx, reward.ID); err != nil {
		s.logger.Error("restock: failed to increment stock", zap.Int64("reward_id", reward.ID), zap.Error(err))
	}
}

// ListOrders возвращает страницу заказов для админки
func (s *FulfillmentService) ListOrders(ctx context.Context, filter domain.OrderFilter, page, limit int) (*domain.OrderPage, error) {
	orders, err := s.orderRepo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("fulfillment service: failed to list orders: %w", err)
	}
	return orders, nil
}

// GetUserOrders получает заказы пользователя
func (s *FulfillmentService) GetUserOrders(ctx context.Context, userID int64) ([]*domain.Order, error) {
	orders, err := s.orderRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fulfillment service: failed to get orders for user %d: %w", userID, err)
	}
	return orders, nil
}

// GetOrder получает заказ пользователя; чужой заказ неотличим
// от несуществующего
func (s *FulfillmentService) GetOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}
