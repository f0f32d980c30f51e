package domain

// OrderStatus представляет статус заказа в жизненном цикле доставки
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusPaid       OrderStatus = "PAID"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCanceled   OrderStatus = "CANCELED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
)

// orderTransitions — явная таблица допустимых переходов.
// CANCELED и REFUNDED достижимы из любого нетерминального статуса
// (аварийный путь администратора), поэтому в таблице только
// прямая цепочка; обходной путь проверяется отдельно.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusPaid},
	OrderStatusPaid:       {OrderStatusProcessing},
	OrderStatusProcessing: {OrderStatusShipped},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// IsValid сообщает, известен ли статус
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCanceled, OrderStatusRefunded:
		return true
	}
	return false
}

// IsTerminal сообщает, является ли статус терминальным
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCanceled, OrderStatusRefunded:
		return true
	}
	return false
}

// CanTransition проверяет допустимость перехода from -> to.
// Из терминального статуса переходов нет; назад по цепочке нельзя.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if s.IsTerminal() || !to.IsValid() {
		return false
	}

	// Аварийный путь: отмена или возврат из любого нетерминального статуса
	if to == OrderStatusCanceled || to == OrderStatusRefunded {
		return true
	}

	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
