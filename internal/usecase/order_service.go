package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Gunvolt24/storefront_api/internal/apperr"
	"github.com/Gunvolt24/storefront_api/internal/domain"
	"github.com/Gunvolt24/storefront_api/internal/ports"
	"github.com/Gunvolt24/storefront_api/pkg/validate"
)

// Проверка, что OrderService удовлетворяет интерфейсу ports.OrderReadService.
var _ ports.OrderReadService = (*OrderService)(nil)

// OrderService — прикладная логика работы с заказами (без знаний о транспорте).
// Все операции чтения выполняются от имени уже подтверждённого пользователя:
// верификация сессии — забота транспортного слоя.
type OrderService struct {
	repo      ports.OrderRepository // хранилище заказов
	cache     ports.SummaryCache    // кэш сводок по пользователю
	log       ports.Logger          // логгер
	validator ports.OrderValidator  // валидатор входящих документов
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	repo ports.OrderRepository,
	cache ports.SummaryCache,
	log ports.Logger,
	validator ports.OrderValidator,
) *OrderService {
	return &OrderService{
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
	}
}

// MyOrders — сводки всех заказов пользователя: сначала кэш, при промахе —
// выборка по владельцу с записью в кэш. Пустой список — валидный результат,
// не ошибка; возвращается не-nil срез (сериализуется как []).
func (s *OrderService) MyOrders(ctx context.Context, userID string) ([]domain.OrderSummary, error) {
	if summaries, found := s.cache.Get(ctx, userID); found {
		s.log.Infof(ctx, "summary cache hit user=%s", userID)
		return summaries, nil
	}

	start := time.Now()
	orders, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		s.log.Errorf(ctx, "repo.ListByOwner failed user=%s err=%v", userID, err)
		return nil, fmt.Errorf("list orders: %w", err)
	}

	summaries := domain.Summaries(orders)

	if setErr := s.cache.Set(ctx, userID, summaries); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed user=%s err=%v", userID, setErr)
	}

	s.log.Infof(ctx, "db fetch user=%s orders=%d took=%s", userID, len(summaries), time.Since(start))
	return summaries, nil
}

// MyOrder — полный заказ пользователя. Чужой и несуществующий заказ
// неразличимы: в обоих случаях apperr.ErrOrderNotFound.
func (s *OrderService) MyOrder(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed order=%s err=%v", orderID, err)
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil || order.OwnerID != userID {
		return nil, apperr.ErrOrderNotFound
	}
	return order, nil
}

// SaveFromMessage — сохранить документ заказа, пришедший из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields);
//  2. доменная валидация (вернёт validate.ErrInvalidOrder при проблемах);
//  3. идемпотентный upsert в БД;
//  4. сброс кэша сводок владельца.
func (s *OrderService) SaveFromMessage(ctx context.Context, raw []byte) error {
	var order domain.Order
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	// Ошибки парсинга помечаем validate.ErrInvalidOrder: битый документ
	// не станет валидным от повтора, консьюмер должен закоммитить и пропустить.
	if err := dec.Decode(&order); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", validate.ErrInvalidOrder, err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", validate.ErrInvalidOrder)
	}

	if err := s.validator.Validate(ctx, &order); err != nil {
		s.log.Warnf(ctx, "validation failed order=%s err=%v", order.ID, err)
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.Save(ctx, &order); err != nil {
		s.log.Errorf(ctx, "repo.Save failed order=%s err=%v", order.ID, err)
		return fmt.Errorf("failed to save order: %w", err)
	}

	// Сводки владельца устарели — сбрасываем, а не пересчитываем.
	if invErr := s.cache.Invalidate(ctx, order.OwnerID); invErr != nil {
		s.log.Warnf(ctx, "cache.Invalidate failed user=%s err=%v", order.OwnerID, invErr)
	}

	s.log.Infof(ctx, "order saved id=%s owner=%s", order.ID, order.OwnerID)
	return nil
}
