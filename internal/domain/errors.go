package domain

import "errors"

// Ошибки леджера
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrAlreadyRefunded     = errors.New("redemption already refunded")
)

// Ошибки каталога
var (
	ErrRewardNotFound  = errors.New("reward not found")
	ErrRewardInactive  = errors.New("reward is not active")
	ErrOutOfStock      = errors.New("reward out of stock")
	ErrProductNotFound = errors.New("product not found")
)

// Ошибки обменов
var (
	ErrNotEligible         = errors.New("reward requires premium")
	ErrShippingRequired    = errors.New("shipping info required for product reward")
	ErrRedemptionNotFound  = errors.New("redemption not found")
	ErrIdempotencyConflict = errors.New("idempotency key already used for a different request")
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponAlreadyUsed   = errors.New("coupon already used")
)

// Ошибки заказов
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrOrderConflict     = errors.New("order was modified concurrently")
)

// ErrInvalidInput возвращается при некорректных данных запроса
var ErrInvalidInput = errors.New("invalid input")

// ErrUnavailable возвращается после исчерпания повторов
// на транзиентных ошибках хранилища
var ErrUnavailable = errors.New("storage temporarily unavailable")
