package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/storefront_api/internal/domain"
	"github.com/Gunvolt24/storefront_api/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу ports.OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — коллекция заказов на Postgres (pgxpool).
// Один документ — одна строка; всё читается и пишется целиком.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository — конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

const orderColumns = `id, owner_id, created_at, order_total, currency, status, items_count, shipping_city, email`

// Save — идемпотентный upsert документа по id.
// Повторная доставка того же документа из Kafka безопасна.
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ID == "" {
		return errors.New("order is empty or id is required")
	}
	if order.OwnerID == "" {
		return errors.New("owner_id is required")
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO orders (
			id, owner_id, created_at, order_total, currency, status, items_count, shipping_city, email
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			owner_id = EXCLUDED.owner_id,
			created_at = EXCLUDED.created_at,
			order_total = EXCLUDED.order_total,
			currency = EXCLUDED.currency,
			status = EXCLUDED.status,
			items_count = EXCLUDED.items_count,
			shipping_city = EXCLUDED.shipping_city,
			email = EXCLUDED.email
	`,
		order.ID, order.OwnerID, order.CreatedAt, order.OrderTotal,
		order.Currency, order.Status, order.ItemsCount, order.ShippingCity, order.Email,
	); err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}
	return nil
}

// GetByID — заказ по id. Если не нашли, возвращает (nil, nil).
func (r *OrderRepository) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order

	err := r.pool.QueryRow(ctx, `
		SELECT `+orderColumns+`
		FROM orders WHERE id = $1
	`, orderID).Scan(
		&order.ID, &order.OwnerID, &order.CreatedAt, &order.OrderTotal,
		&order.Currency, &order.Status, &order.ItemsCount, &order.ShippingCity, &order.Email,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}

	return &order, nil
}

// ListByOwner — все заказы владельца.
// Сортировка внутренняя (created_at DESC, id DESC — стабильный порядок);
// API хронологию не обещает.
func (r *OrderRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select owner orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order := &domain.Order{}
		if err := rows.Scan(
			&order.ID, &order.OwnerID, &order.CreatedAt, &order.OrderTotal,
			&order.Currency, &order.Status, &order.ItemsCount, &order.ShippingCity, &order.Email,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}
	return orders, nil
}
