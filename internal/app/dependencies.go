package app

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/neuroplan/rewards-engine/internal/config"
	"github.com/neuroplan/rewards-engine/internal/domain"
	"github.com/neuroplan/rewards-engine/internal/handlers"
	"github.com/neuroplan/rewards-engine/internal/repository/postgres"
	"github.com/neuroplan/rewards-engine/internal/service"
	"github.com/neuroplan/rewards-engine/internal/utils/jwt"
	"github.com/neuroplan/rewards-engine/internal/worker"
)

// repositories содержит все репозитории приложения
type repositories struct {
	ledger     domain.LedgerRepository
	catalog    domain.CatalogRepository
	redemption domain.RedemptionRepository
	order      domain.OrderRepository
	product    domain.ProductRepository
	reporting  domain.ReportingRepository
}

// services содержит все сервисы приложения
type services struct {
	ledger      domain.LedgerService
	catalog     domain.CatalogService
	redemption  domain.RedemptionService
	fulfillment domain.FulfillmentService
	product     domain.ProductService
	reporting   domain.ReportingService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	balance       *handlers.BalanceHandler
	rewards       *handlers.RewardsHandler
	orders        *handlers.OrdersHandler
	events        *handlers.EventsHandler
	adminOrders   *handlers.AdminOrdersHandler
	adminProducts *handlers.AdminProductsHandler
	health        *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) *dependencies {
	// Создание репозиториев
	repos := &repositories{
		ledger:     postgres.NewLedgerRepository(dbPool),
		catalog:    postgres.NewCatalogRepository(dbPool),
		redemption: postgres.NewRedemptionRepository(dbPool),
		order:      postgres.NewOrderRepository(dbPool),
		product:    postgres.NewProductRepository(dbPool),
		reporting:  postgres.NewReportingRepository(dbPool),
	}

	// Создание утилит
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Создание сервисов
	svcs := &services{
		ledger:      service.NewLedgerService(repos.ledger),
		catalog:     service.NewCatalogService(repos.catalog, repos.ledger),
		redemption:  service.NewRedemptionService(repos.catalog, repos.redemption),
		fulfillment: service.NewFulfillmentService(repos.order, repos.redemption, repos.catalog, repos.ledger, logger),
		product:     service.NewProductService(repos.product),
		reporting:   service.NewReportingService(repos.reporting),
	}

	// Создание пула доставки событий выдачи
	notifier := service.NewWebhookNotifier(cfg.IssuanceWebhookURL, logger)
	workerPoolConfig := worker.PoolConfig{
		Workers:      cfg.WorkerPoolSize,
		QueueSize:    cfg.WorkerQueueSize,
		ScanInterval: cfg.WorkerScanInterval,
		ScanBatch:    cfg.WorkerScanBatch,
	}
	workerPool := worker.NewPool(workerPoolConfig, repos.redemption, notifier, logger)

	// Создание handlers
	hdlrs := &handlerSet{
		balance:       handlers.NewBalanceHandler(svcs.ledger, logger),
		rewards:       handlers.NewRewardsHandler(svcs.catalog, svcs.redemption, logger),
		orders:        handlers.NewOrdersHandler(svcs.fulfillment, logger),
		events:        handlers.NewEventsHandler(svcs.ledger, logger),
		adminOrders:   handlers.NewAdminOrdersHandler(svcs.fulfillment, svcs.reporting, logger),
		adminProducts: handlers.NewAdminProductsHandler(svcs.product, logger),
		health:        handlers.NewHealthHandler(dbPool, workerPool, logger),
	}

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}
}
