package ports

import (
	"context"

	"github.com/Gunvolt24/storefront_api/internal/domain"
)

// OrderRepository — доступ к коллекции заказов.
type OrderRepository interface {
	// Save — идемпотентный upsert документа заказа.
	Save(ctx context.Context, order *domain.Order) error

	// GetByID — заказ по идентификатору; (nil, nil), если записи нет.
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListByOwner — все заказы владельца в порядке выдачи запроса.
	// Пустой результат — валидное состояние, не ошибка.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Order, error)
}
