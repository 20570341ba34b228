package validate

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/Gunvolt24/storefront_api/internal/domain"
	"github.com/Gunvolt24/storefront_api/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу ports.OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

// OrderValidator — валидация документа заказа перед сохранением.
type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — проверяет корректность полей документа.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func (v *OrderValidator) Validate(_ context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidOrder)
	}
	if order.ID == "" {
		return fmt.Errorf("%w: id обязателен", ErrInvalidOrder)
	}
	if order.OwnerID == "" {
		return fmt.Errorf("%w: owner_id обязателен", ErrInvalidOrder)
	}
	if order.CreatedAt.IsZero() || order.CreatedAt.Before(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)) {
		return fmt.Errorf("%w: created_at некорректен", ErrInvalidOrder)
	}
	if order.OrderTotal < 0 {
		return fmt.Errorf("%w: order_total должен быть неотрицательным", ErrInvalidOrder)
	}
	if order.ItemsCount < 0 {
		return fmt.Errorf("%w: items_count должен быть неотрицательным", ErrInvalidOrder)
	}
	if order.Email != "" {
		if _, err := mail.ParseAddress(order.Email); err != nil {
			return fmt.Errorf("%w: email некорректен", ErrInvalidOrder)
		}
	}
	return nil
}
