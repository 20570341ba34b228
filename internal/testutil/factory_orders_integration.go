//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/storefront_api/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeOrder — генератор валидного заказа для интеграционных тестов.
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	o := domain.Order{
		ID:           "ord-" + UniqSuffix(),
		OwnerID:      "user-" + UniqSuffix(),
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
		OrderTotal:   499,
		Currency:     "RUB",
		Status:       "created",
		ItemsCount:   1,
		ShippingCity: "Metropolis",
		Email:        "john@example.com",
	}

	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithOwner(ownerID string) func(*domain.Order) {
	return func(o *domain.Order) { o.OwnerID = ownerID }
}

func WithID(id string) func(*domain.Order) {
	return func(o *domain.Order) { o.ID = id }
}

func WithTotal(total int64) func(*domain.Order) {
	return func(o *domain.Order) { o.OrderTotal = total }
}

func WithCreatedAt(t time.Time) func(*domain.Order) {
	return func(o *domain.Order) { o.CreatedAt = t }
}
