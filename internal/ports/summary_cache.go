package ports

import (
	"context"

	"github.com/Gunvolt24/storefront_api/internal/domain"
)

// SummaryCache — кэш сводок заказов по пользователю.
// Требования к реализации: потокобезопасность; возврат копий данных.
// Кэшируются только сводки — подтверждённые личности не кэшируются никогда.
type SummaryCache interface {
	// Get — сводки пользователя; (list, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, userID string) ([]domain.OrderSummary, bool)

	// Set — сохранить/обновить сводки пользователя.
	Set(ctx context.Context, userID string, summaries []domain.OrderSummary) error

	// Invalidate — сбросить запись пользователя (после ингеста нового заказа).
	Invalidate(ctx context.Context, userID string) error
}
