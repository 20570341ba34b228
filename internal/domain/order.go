package domain

import "time"

// Order — документ заказа, как его публикует checkout-сервис.
// Храним целиком; ядро выдачи читает только ID/OwnerID/CreatedAt/OrderTotal.
type Order struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
	OrderTotal   int64     `json:"order_total"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
	ItemsCount   int       `json:"items_count"`
	ShippingCity string    `json:"shipping_city"`
	Email        string    `json:"email"`
}

// OrderSummary — то, что отдаём клиенту в списке заказов.
// OrderDate — человекочитаемая дата ("5 March 2024").
type OrderSummary struct {
	OrderID    string `json:"orderId"`
	OrderDate  string `json:"orderDate"`
	OrderTotal int64  `json:"orderTotal"`
}

// orderDateLayout — день месяца без нуля, полное имя месяца, год.
const orderDateLayout = "2 January 2006"

// Summary — проекция заказа для списка; сумма и идентификатор без изменений.
func (o *Order) Summary() OrderSummary {
	return OrderSummary{
		OrderID:    o.ID,
		OrderDate:  o.CreatedAt.Format(orderDateLayout),
		OrderTotal: o.OrderTotal,
	}
}

// Summaries — проекция списка; всегда возвращает не-nil срез,
// чтобы пустой список сериализовался как [].
func Summaries(orders []*Order) []OrderSummary {
	res := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		res = append(res, o.Summary())
	}
	return res
}
