package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/neuroplan/rewards-engine/internal/domain"
	domainmocks "github.com/neuroplan/rewards-engine/internal/domain/mocks"
)

func testPool(t *testing.T) (*Pool, *domainmocks.RedemptionRepositoryMock, *domainmocks.IssuanceNotifierMock) {
	mockRedemptionRepo := domainmocks.NewRedemptionRepositoryMock(t)
	mockNotifier := domainmocks.NewIssuanceNotifierMock(t)
	logger, _ := zap.NewDevelopment()

	cfg := PoolConfig{Workers: 1, QueueSize: 10, ScanInterval: time.Minute, ScanBatch: 10}
	return NewPool(cfg, mockRedemptionRepo, mockNotifier, logger), mockRedemptionRepo, mockNotifier
}

func TestPool_Deliver_Coupon(t *testing.T) {
	pool, mockRedemptionRepo, mockNotifier := testPool(t)
	ctx := context.Background()

	code := "NP-ABC23456"
	red := &domain.Redemption{ID: 5, UserID: 7, RewardID: 2, CouponCode: &code}

	mockRedemptionRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(red, nil).Once()
	mockNotifier.EXPECT().
		Notify(mock.Anything, domain.IssuanceEvent{
			RedemptionID: 5,
			UserID:       7,
			RewardID:     2,
			Kind:         "coupon_issued",
			CouponCode:   &code,
		}).
		Return(nil).Once()
	mockRedemptionRepo.EXPECT().MarkIssued(mock.Anything, int64(5)).Return(true, nil).Once()

	pool.deliver(ctx, 5)
}

func TestPool_Deliver_Order(t *testing.T) {
	pool, mockRedemptionRepo, mockNotifier := testPool(t)
	ctx := context.Background()

	red := &domain.Redemption{ID: 6, UserID: 7, RewardID: 3}

	mockRedemptionRepo.EXPECT().GetByID(mock.Anything, int64(6)).Return(red, nil).Once()
	mockNotifier.EXPECT().
		Notify(mock.Anything, domain.IssuanceEvent{
			RedemptionID: 6,
			UserID:       7,
			RewardID:     3,
			Kind:         "order_created",
		}).
		Return(nil).Once()
	mockRedemptionRepo.EXPECT().MarkIssued(mock.Anything, int64(6)).Return(true, nil).Once()

	pool.deliver(ctx, 6)
}

func TestPool_Deliver_AlreadyIssued(t *testing.T) {
	pool, mockRedemptionRepo, _ := testPool(t)
	ctx := context.Background()

	issuedAt := time.Now()
	red := &domain.Redemption{ID: 5, UserID: 7, RewardID: 2, IssuedAt: &issuedAt}

	// Уже выдано: ни уведомления, ни отметки
	mockRedemptionRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(red, nil).Once()

	pool.deliver(ctx, 5)
}

func TestPool_Deliver_NotifyFailureKeepsUnissued(t *testing.T) {
	pool, mockRedemptionRepo, mockNotifier := testPool(t)
	ctx := context.Background()

	red := &domain.Redemption{ID: 5, UserID: 7, RewardID: 2}

	// Доставка не удалась: MarkIssued не вызывается, следующий скан повторит
	mockRedemptionRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(red, nil).Once()
	mockNotifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("webhook down")).Once()

	pool.deliver(ctx, 5)
}

func TestPool_Deliver_LostMarkRace(t *testing.T) {
	pool, mockRedemptionRepo, mockNotifier := testPool(t)
	ctx := context.Background()

	red := &domain.Redemption{ID: 5, UserID: 7, RewardID: 2}

	mockRedemptionRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(red, nil).Once()
	mockNotifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()
	// Другой воркер успел пометить первым
	mockRedemptionRepo.EXPECT().MarkIssued(mock.Anything, int64(5)).Return(false, nil).Once()

	pool.deliver(ctx, 5)
}

func TestPool_ScanUnissued(t *testing.T) {
	pool, mockRedemptionRepo, _ := testPool(t)
	ctx := context.Background()

	unissued := []*domain.Redemption{
		{ID: 1, UserID: 7, RewardID: 2},
		{ID: 2, UserID: 8, RewardID: 3},
	}

	mockRedemptionRepo.EXPECT().ListUnissued(mock.Anything, 10).Return(unissued, nil).Once()

	pool.scanUnissued(ctx)

	// Проверяем, что обмены добавлены в очередь
	for i := 0; i < 2; i++ {
		select {
		case id := <-pool.queue:
			if id != 1 && id != 2 {
				t.Errorf("unexpected redemption id in queue: %d", id)
			}
		case <-time.After(100 * time.Millisecond):
			t.Error("expected redemption in queue, got timeout")
		}
	}
}

func TestPool_ScanUnissued_QueueFull(t *testing.T) {
	mockRedemptionRepo := domainmocks.NewRedemptionRepositoryMock(t)
	mockNotifier := domainmocks.NewIssuanceNotifierMock(t)
	logger, _ := zap.NewDevelopment()

	cfg := PoolConfig{Workers: 1, QueueSize: 1, ScanInterval: time.Minute, ScanBatch: 10}
	pool := NewPool(cfg, mockRedemptionRepo, mockNotifier, logger)
	ctx := context.Background()

	unissued := []*domain.Redemption{
		{ID: 1, UserID: 7, RewardID: 2},
		{ID: 2, UserID: 8, RewardID: 3},
	}

	mockRedemptionRepo.EXPECT().ListUnissued(mock.Anything, 10).Return(unissued, nil).Once()

	// Второй обмен не помещается и будет подобран следующим сканом
	pool.scanUnissued(ctx)

	if got := len(pool.queue); got != 1 {
		t.Errorf("expected 1 queued redemption, got %d", got)
	}
}
