package ports

import "context"

// MessageConsumer — фоновый потребитель документов заказов.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
