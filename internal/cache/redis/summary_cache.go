// Пакет redis — кэш сводок заказов на Redis; используется,
// когда инстансов API несколько и локальный LRU им не делится.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/storefront_api/internal/domain"
	"github.com/Gunvolt24/storefront_api/internal/ports"
	"github.com/Gunvolt24/storefront_api/pkg/metrics"
	"github.com/redis/go-redis/v9"
)

// Проверка, что SummaryCache удовлетворяет интерфейсу ports.SummaryCache.
var _ ports.SummaryCache = (*SummaryCache)(nil)

const keyPrefix = "order-summaries:"

// SummaryCache — адаптер кэша сводок на go-redis.
// Значение — JSON списка сводок; TTL задаётся на записи.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
	log    ports.Logger
}

// NewSummaryCache — конструктор.
func NewSummaryCache(client *redis.Client, ttl time.Duration, log ports.Logger) *SummaryCache {
	return &SummaryCache{client: client, ttl: ttl, log: log}
}

func key(userID string) string { return keyPrefix + userID }

// Get — сводки пользователя. Ошибка Redis трактуется как промах:
// кэш не должен ронять чтение заказов.
func (c *SummaryCache) Get(ctx context.Context, userID string) ([]domain.OrderSummary, bool) {
	raw, err := c.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		c.log.Warnf(ctx, "redis get failed user=%s err=%v", userID, err)
		return nil, false
	}

	var summaries []domain.OrderSummary
	if err := json.Unmarshal(raw, &summaries); err != nil {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		c.log.Warnf(ctx, "redis entry corrupted user=%s err=%v", userID, err)
		return nil, false
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return summaries, true
}

// Set — сохранить сводки пользователя с TTL.
func (c *SummaryCache) Set(ctx context.Context, userID string, summaries []domain.OrderSummary) error {
	if userID == "" {
		return nil
	}
	raw, err := json.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("marshal summaries: %w", err)
	}
	if err := c.client.Set(ctx, key(userID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate — сбросить запись пользователя.
func (c *SummaryCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	metrics.CacheOps.WithLabelValues("invalidated").Inc()
	return nil
}
