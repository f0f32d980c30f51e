package worker

import (
	"context"
	"sync"
	"time"

	"github.com/neuroplan/rewards-engine/internal/domain"
	"go.uber.org/zap"
)

// PoolConfig — конфигурация пула доставки событий выдачи
type PoolConfig struct {
	Workers      int
	QueueSize    int
	ScanInterval time.Duration
	ScanBatch    int
}

// Pool доставляет события выдачи (купон выпущен, заказ создан)
// внешнему коллаборатору после коммита обмена. Сканер периодически
// подбирает обмены без отметки issued_at, воркеры доставляют вебхук
// и помечают обмен guarded-апдейтом, так что при гонке двух воркеров
// отметку получает ровно один.
type Pool struct {
	workers        int
	queue          chan int64
	redemptionRepo domain.RedemptionRepository
	notifier       domain.IssuanceNotifier
	logger         *zap.Logger
	wg             sync.WaitGroup
	scanInterval   time.Duration
	scanBatch      int
}

// NewPool создает новый пул доставки
func NewPool(cfg PoolConfig, redemptionRepo domain.RedemptionRepository, notifier domain.IssuanceNotifier, logger *zap.Logger) *Pool {
	return &Pool{
		workers:        cfg.Workers,
		queue:          make(chan int64, cfg.QueueSize),
		redemptionRepo: redemptionRepo,
		notifier:       notifier,
		logger:         logger,
		scanInterval:   cfg.ScanInterval,
		scanBatch:      cfg.ScanBatch,
	}
}

// QueueDepth возвращает текущую глубину очереди доставки
func (p *Pool) QueueDepth() int {
	return len(p.queue)
}

// Start запускает воркеры и сканер
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает пул
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

// worker доставляет события из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("issuance worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("issuance worker stopping", zap.Int("worker_id", id))
			return
		case redemptionID, ok := <-p.queue:
			if !ok {
				return
			}
			p.deliver(ctx, redemptionID)
		}
	}
}

// scanner периодически подбирает недоставленные события
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("issuance scanner stopping")
			return
		case <-ticker.C:
			p.scanUnissued(ctx)
		}
	}
}

// scanUnissued кладет недоставленные обмены в очередь
func (p *Pool) scanUnissued(ctx context.Context) {
	redemptions, err := p.redemptionRepo.ListUnissued(ctx, p.scanBatch)
	if err != nil {
		p.logger.Error("failed to list unissued redemptions", zap.Error(err))
		return
	}

	for _, red := range redemptions {
		select {
		case p.queue <- red.ID:
		case <-ctx.Done():
			return
		default:
			// Очередь заполнена: обмен подберется на следующем скане
			p.logger.Warn("issuance queue is full, skipping redemption", zap.Int64("redemption_id", red.ID))
		}
	}
}

// deliver доставляет одно событие выдачи
func (p *Pool) deliver(ctx context.Context, redemptionID int64) {
	red, err := p.redemptionRepo.GetByID(ctx, redemptionID)
	if err != nil {
		p.logger.Error("failed to load redemption for issuance",
			zap.Int64("redemption_id", redemptionID),
			zap.Error(err),
		)
		return
	}

	// Другой воркер мог успеть между сканом и доставкой
	if red.IssuedAt != nil {
		return
	}

	event := domain.IssuanceEvent{
		RedemptionID: red.ID,
		UserID:       red.UserID,
		RewardID:     red.RewardID,
		Kind:         "order_created",
		CouponCode:   red.CouponCode,
	}
	if red.CouponCode != nil {
		event.Kind = "coupon_issued"
	}

	if err := p.notifier.Notify(ctx, event); err != nil {
		p.logger.Error("failed to deliver issuance event",
			zap.Int64("redemption_id", red.ID),
			zap.Error(err),
		)
		return
	}

	marked, err := p.redemptionRepo.MarkIssued(ctx, red.ID)
	if err != nil {
		p.logger.Error("failed to mark redemption issued",
			zap.Int64("redemption_id", red.ID),
			zap.Error(err),
		)
		return
	}
	if !marked {
		p.logger.Debug("redemption already marked issued", zap.Int64("redemption_id", red.ID))
		return
	}

	p.logger.Info("issuance event delivered",
		zap.Int64("redemption_id", red.ID),
		zap.String("kind", event.Kind),
	)
}
