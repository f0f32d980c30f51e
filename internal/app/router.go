package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/neuroplan/rewards-engine/internal/handlers"
	"github.com/neuroplan/rewards-engine/internal/utils/jwt"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps, jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, jwtManager *jwt.Manager) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Эндпоинты пользователя
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))

		r.Get("/api/user/balance", deps.handlers.balance.GetBalance)
		r.Get("/api/user/transactions", deps.handlers.balance.GetTransactions)

		r.Get("/api/rewards", deps.handlers.rewards.ListRewards)
		r.Post("/api/rewards/redeem", deps.handlers.rewards.Redeem)
		r.Get("/api/user/redemptions", deps.handlers.rewards.GetRedemptions)

		r.Post("/api/coupons/apply", deps.handlers.rewards.ApplyCoupon)
		r.Post("/api/coupons/use", deps.handlers.rewards.UseCoupon)

		r.Get("/api/user/orders", deps.handlers.orders.GetOrders)
		r.Get("/api/user/orders/{orderID}", deps.handlers.orders.GetOrder)
	})

	// Эндпоинты для доверенных сервисов (начисление баллов)
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))
		r.Use(handlers.RequireRole(jwt.RoleService, jwt.RoleAdmin))

		r.Post("/api/events/points", deps.handlers.events.CreditPoints)
	})

	// Админские эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))
		r.Use(handlers.RequireRole(jwt.RoleAdmin))

		r.Get("/api/admin/orders", deps.handlers.adminOrders.ListOrders)
		r.Patch("/api/admin/orders/{orderID}/status", deps.handlers.adminOrders.UpdateStatus)
		r.Post("/api/admin/orders/{orderID}/cancel", deps.handlers.adminOrders.CancelOrder)
		r.Get("/api/admin/metrics", deps.handlers.adminOrders.GetMetrics)

		r.Get("/api/admin/products", deps.handlers.adminProducts.List)
		r.Post("/api/admin/products", deps.handlers.adminProducts.Create)
		r.Patch("/api/admin/products/{productID}", deps.handlers.adminProducts.Update)
		r.Delete("/api/admin/products/{productID}", deps.handlers.adminProducts.Delete)
	})
}
