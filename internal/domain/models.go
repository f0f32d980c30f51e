package domain

import "time"

// TransactionType представляет тип операции в леджере
type TransactionType string

const (
	TransactionTypeEarned     TransactionType = "EARNED"
	TransactionTypeSpent      TransactionType = "SPENT"
	TransactionTypeBonus      TransactionType = "BONUS"
	TransactionTypeRefund     TransactionType = "REFUND"
	TransactionTypeAdjustment TransactionType = "ADJUSTMENT"
)

// RewardType представляет тип награды в каталоге
type RewardType string

const (
	RewardTypeDiscount RewardType = "DISCOUNT"
	RewardTypeProduct  RewardType = "PRODUCT"
	RewardTypeFeature  RewardType = "FEATURE"
	RewardTypeBadge    RewardType = "BADGE"
)

// DiscountType представляет тип скидки для DISCOUNT наград
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "PERCENTAGE"
	DiscountTypeFixed      DiscountType = "FIXED"
)

// Transaction представляет запись в леджере баллов.
// Записи неизменяемы: баланс пользователя в любой момент равен
// сумме amount всех его транзакций.
type Transaction struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"-"`
	Amount       int64           `json:"amount"` // Положительное = начисление, отрицательное = списание
	Type         TransactionType `json:"type"`
	Reason       string          `json:"reason"`
	RedemptionID *int64          `json:"redemption_id,omitempty"`
	BalanceAfter int64           `json:"balance_after"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Balance представляет производное состояние счета пользователя
type Balance struct {
	UserID             int64 `json:"-"`
	Balance            int64 `json:"balance"`
	TotalEarned        int64 `json:"total_earned"`
	TotalSpent         int64 `json:"total_spent"`
	PendingRedemptions int64 `json:"pending_redemptions"`
}

// Reward представляет награду в каталоге
type Reward struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Type          RewardType    `json:"type"`
	PointsCost    int64         `json:"points_cost"`
	Stock         *int64        `json:"stock"` // nil = неограниченный запас
	IsPremiumOnly bool          `json:"is_premium_only"`
	Restockable   bool          `json:"-"`
	DiscountType  *DiscountType `json:"discount_type,omitempty"`
	DiscountValue *int64        `json:"discount_value,omitempty"`
	IsActive      bool          `json:"-"`
	CreatedAt     time.Time     `json:"-"`
}

// AvailableReward представляет награду с вычисленным флагом доступности.
// CanRedeem считается в одном месте (каталог), а не на клиенте.
type AvailableReward struct {
	Reward
	CanRedeem bool `json:"can_redeem"`
}

// RedemptionStatus представляет статус обмена баллов
type RedemptionStatus string

const (
	RedemptionStatusPending   RedemptionStatus = "PENDING"
	RedemptionStatusCompleted RedemptionStatus = "COMPLETED"
	RedemptionStatusCanceled  RedemptionStatus = "CANCELED"
	RedemptionStatusRefunded  RedemptionStatus = "REFUNDED"
)

// ShippingInfo представляет адрес доставки для PRODUCT наград
type ShippingInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Redemption представляет один обмен баллов на награду.
// PointsSpent фиксируется при создании и используется как есть
// при возврате, независимо от последующих изменений цены награды.
type Redemption struct {
	ID             int64            `json:"id"`
	UserID         int64            `json:"-"`
	RewardID       int64            `json:"reward_id"`
	PointsSpent    int64            `json:"points_spent"`
	Status         RedemptionStatus `json:"status"`
	CouponCode     *string          `json:"coupon_code,omitempty"`
	CouponUsed     bool             `json:"coupon_used"`
	CouponUsedAt   *time.Time       `json:"coupon_used_at,omitempty"`
	IdempotencyKey *string          `json:"-"`
	Shipping       *ShippingInfo    `json:"shipping,omitempty"`
	IssuedAt       *time.Time       `json:"-"`
	RedeemedAt     time.Time        `json:"redeemed_at"`
}

// Order представляет заказ на физическую доставку, привязанный к обмену
type Order struct {
	ID            int64        `json:"id"`
	RedemptionID  int64        `json:"redemption_id"`
	UserID        int64        `json:"user_id"`
	OrderNumber   string       `json:"order_number"`
	Status        OrderStatus  `json:"status"`
	PointsUsed    int64        `json:"points_used"`
	TotalInCents  int64        `json:"total_in_cents"`
	Shipping      ShippingInfo `json:"shipping"`
	TrackingCode  *string      `json:"tracking_code,omitempty"`
	InternalNotes *string      `json:"internal_notes,omitempty"`
	ShippedAt     *time.Time   `json:"shipped_at,omitempty"`
	DeliveredAt   *time.Time   `json:"delivered_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Product представляет товар магазина
type Product struct {
	ID                int64     `json:"id"`
	SKU               string    `json:"sku"`
	Slug              string    `json:"slug"`
	Name              string    `json:"name"`
	Description       *string   `json:"description,omitempty"`
	Category          string    `json:"category"`
	PriceInCents      int64     `json:"price_in_cents"`
	PointsPrice       *int64    `json:"points_price,omitempty"`
	PointsOnly        bool      `json:"points_only"`
	Stock             int64     `json:"stock"`
	LowStockThreshold int64     `json:"low_stock_threshold"`
	IsActive          bool      `json:"is_active"`
	IsFeatured        bool      `json:"is_featured"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CouponDiscount представляет результат проверки купона
type CouponDiscount struct {
	Valid         bool         `json:"valid"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue int64        `json:"discount_value"`
}

// OrderFilter задает фильтрацию списка заказов в админке
type OrderFilter struct {
	Status *OrderStatus
	Search string
}

// OrderPage представляет страницу заказов
type OrderPage struct {
	Items      []*Order `json:"items"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"total_pages"`
}

// ProductCounts агрегирует состояние каталога товаров
type ProductCounts struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	LowStock int64 `json:"low_stock"`
}

// StoreMetrics агрегирует показатели магазина для админ-дашборда.
// Только чтение; допускается небольшое отставание от транзакционных таблиц.
type StoreMetrics struct {
	Products       ProductCounts         `json:"products"`
	OrdersByStatus map[OrderStatus]int64 `json:"orders_by_status"`
	TotalOrders    int64                 `json:"total_orders"`
	RevenueInCents int64                 `json:"revenue_in_cents"`
	PointsUsed     int64                 `json:"points_used"`
}
