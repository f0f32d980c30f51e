package domain

import "context"

// LedgerRepository определяет методы работы с леджером баллов
type LedgerRepository interface {
	// CreditWithLock начисляет баллы под advisory-блокировкой счета.
	// Для возвратов (type=REFUND) повторное начисление по тому же
	// redemptionID возвращает ErrAlreadyRefunded.
	CreditWithLock(ctx context.Context, userID, amount int64, txType TransactionType, reason string, redemptionID *int64) (*Transaction, error)
	// DebitWithLock атомарно проверяет баланс и записывает списание;
	// при нехватке средств возвращает ErrInsufficientBalance без записи.
	DebitWithLock(ctx context.Context, userID, amount int64, reason string, redemptionID *int64) (*Transaction, error)
	GetBalance(ctx context.Context, userID int64) (*Balance, error)
	GetTransactions(ctx context.Context, userID int64, limit, offset int) ([]*Transaction, error)
}

// CatalogRepository определяет методы работы с каталогом наград
type CatalogRepository interface {
	GetReward(ctx context.Context, id int64) (*Reward, error)
	ListActiveRewards(ctx context.Context) ([]*Reward, error)
	// DecrementStock атомарно уменьшает запас; ErrOutOfStock при нуле
	DecrementStock(ctx context.Context, rewardID int64) error
	IncrementStock(ctx context.Context, rewardID int64) error
}

// ProductFilter задает фильтрацию списка товаров
type ProductFilter struct {
	Search   string
	Category *string
	Active   *bool
}

// ProductUpdate описывает частичное обновление товара;
// nil поля не трогаются
type ProductUpdate struct {
	Name              *string
	Description       *string
	Category          *string
	PriceInCents      *int64
	PointsPrice       *int64
	PointsOnly        *bool
	Stock             *int64
	LowStockThreshold *int64
	IsActive          *bool
	IsFeatured        *bool
}

// ProductRepository определяет методы работы с товарами магазина
type ProductRepository interface {
	CreateProduct(ctx context.Context, p *Product) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, upd ProductUpdate) (*Product, error)
	// DeactivateProduct — мягкое удаление (is_active=false)
	DeactivateProduct(ctx context.Context, id int64) error
	GetProduct(ctx context.Context, id int64) (*Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]*Product, error)
}

// RedeemParams — параметры одной транзакционной единицы обмена
type RedeemParams struct {
	UserID         int64
	Reward         *Reward
	IdempotencyKey *string
	Shipping       *ShippingInfo
	CouponCode     *string
	OrderNumber    *string
}

// RedemptionRepository определяет методы работы с обменами
type RedemptionRepository interface {
	// RedeemTx выполняет шаги обмена (декремент запаса, списание,
	// создание записи обмена и заказа) в одной транзакции БД:
	// либо все, либо ничего.
	RedeemTx(ctx context.Context, p RedeemParams) (*Redemption, *Order, error)
	GetByID(ctx context.Context, id int64) (*Redemption, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*Redemption, error)
	GetByUserID(ctx context.Context, userID int64) ([]*Redemption, error)
	GetByCouponCode(ctx context.Context, userID int64, code string) (*Redemption, error)
	MarkCouponUsed(ctx context.Context, userID int64, code string) error
	UpdateStatus(ctx context.Context, id int64, status RedemptionStatus) error
	// ListUnissued возвращает обмены, для которых еще не отправлено
	// событие выдачи (купон/заказ)
	ListUnissued(ctx context.Context, limit int) ([]*Redemption, error)
	// MarkIssued помечает событие отправленным; false, если уже помечено
	MarkIssued(ctx context.Context, id int64) (bool, error)
}

// OrderRepository определяет методы работы с заказами
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*Order, error)
	GetByUserID(ctx context.Context, userID int64) ([]*Order, error)
	List(ctx context.Context, filter OrderFilter, page, limit int) (*OrderPage, error)
	// UpdateStatusGuarded переводит заказ из from в to с проверкой
	// текущего статуса (оптимистическая блокировка);
	// при гонке возвращает ErrOrderConflict.
	UpdateStatusGuarded(ctx context.Context, orderID int64, from, to OrderStatus, trackingCode, notes *string) (*Order, error)
}

// ReportingRepository определяет агрегирующие запросы для админки
type ReportingRepository interface {
	GetStoreMetrics(ctx context.Context) (*StoreMetrics, error)
}

// RedeemRequest — запрос на обмен от имени пользователя
type RedeemRequest struct {
	UserID         int64
	IsPremium      bool
	RewardID       int64
	Shipping       *ShippingInfo
	IdempotencyKey *string
}

// LedgerService определяет операции со счетом баллов
type LedgerService interface {
	Credit(ctx context.Context, userID, amount int64, reason string) (*Transaction, error)
	GetBalance(ctx context.Context, userID int64) (*Balance, error)
	GetTransactions(ctx context.Context, userID int64, limit, offset int) ([]*Transaction, error)
}

// CatalogService определяет операции с каталогом наград
type CatalogService interface {
	GetReward(ctx context.Context, id int64) (*Reward, error)
	ListAvailableRewards(ctx context.Context, userID int64, isPremium bool) ([]*AvailableReward, error)
}

// RedemptionService определяет операции обмена баллов
type RedemptionService interface {
	Redeem(ctx context.Context, req RedeemRequest) (*Redemption, error)
	GetRedemptions(ctx context.Context, userID int64) ([]*Redemption, error)
	ApplyCoupon(ctx context.Context, userID int64, code string) (*CouponDiscount, error)
	MarkCouponUsed(ctx context.Context, userID int64, code string) error
}

// FulfillmentService определяет операции жизненного цикла заказа
type FulfillmentService interface {
	UpdateStatus(ctx context.Context, orderID int64, status OrderStatus, trackingCode, notes *string) (*Order, error)
	// CancelOrder отменяет заказ; возвращает количество возвращенных баллов.
	// Повторная отмена уже отмененного заказа — no-op (0 баллов).
	CancelOrder(ctx context.Context, orderID int64, reason string, refundPoints bool) (int64, error)
	ListOrders(ctx context.Context, filter OrderFilter, page, limit int) (*OrderPage, error)
	GetUserOrders(ctx context.Context, userID int64) ([]*Order, error)
	GetOrder(ctx context.Context, userID, orderID int64) (*Order, error)
}

// ProductService определяет админ-операции с товарами
type ProductService interface {
	CreateProduct(ctx context.Context, p *Product) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, upd ProductUpdate) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, filter ProductFilter) ([]*Product, error)
}

// ReportingService определяет read-only агрегации для дашборда
type ReportingService interface {
	GetStoreMetrics(ctx context.Context) (*StoreMetrics, error)
}

// IssuanceEvent — событие выдачи для внешнего коллаборатора
// (выпуск купона или регистрация заказа на отгрузку)
type IssuanceEvent struct {
	RedemptionID int64   `json:"redemption_id"`
	UserID       int64   `json:"user_id"`
	RewardID     int64   `json:"reward_id"`
	Kind         string  `json:"kind"` // "coupon_issued" | "order_created"
	CouponCode   *string `json:"coupon_code,omitempty"`
}

// IssuanceNotifier доставляет события выдачи внешнему коллаборатору.
// Доставка должна быть идемпотентной на принимающей стороне.
type IssuanceNotifier interface {
	Notify(ctx context.Context, event IssuanceEvent) error
}
