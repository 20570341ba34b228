package ports

import (
	"context"

	"github.com/Gunvolt24/storefront_api/internal/domain"
)

// OrderReadService — чтение заказов от имени аутентифицированного пользователя.
type OrderReadService interface {
	// MyOrders — сводки всех заказов пользователя (может быть пустым).
	MyOrders(ctx context.Context, userID string) ([]domain.OrderSummary, error)

	// MyOrder — полный заказ; apperr.ErrOrderNotFound, если заказа нет
	// или он принадлежит другому пользователю.
	MyOrder(ctx context.Context, userID, orderID string) (*domain.Order, error)
}
