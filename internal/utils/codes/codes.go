// Package codes генерирует человекочитаемые коды купонов и номера заказов.
package codes

import (
	"time"

	"github.com/google/uuid"
)

// Без похожих друг на друга символов (0/O, 1/I/L)
const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const (
	couponPrefix = "NP-"
	orderPrefix  = "NP"
	skuPrefix    = "TDAH-"

	couponLength = 8
	orderLength  = 6
	skuLength    = 8
)

// random строит строку длины n из случайных байт uuid
func random(n int) string {
	u := uuid.New()
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[i] = alphabet[int(u[i%len(u)])%len(alphabet)]
	}
	return string(b)
}

// CouponCode генерирует код купона вида NP-XXXXXXXX.
// Уникальность гарантирует ограничение в БД, а не генератор.
func CouponCode() string {
	return couponPrefix + random(couponLength)
}

// OrderNumber генерирует номер заказа вида NP20250901-XXXXXX
func OrderNumber(now time.Time) string {
	return orderPrefix + now.UTC().Format("20060102") + "-" + random(orderLength)
}

// SKU генерирует артикул товара вида TDAH-XXXXXXXX
func SKU() string {
	return skuPrefix + random(skuLength)
}
