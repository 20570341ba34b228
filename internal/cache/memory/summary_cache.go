package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront_api/internal/domain"
	"github.com/Gunvolt24/storefront_api/internal/ports"
	"github.com/Gunvolt24/storefront_api/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу ports.SummaryCache.
var _ ports.SummaryCache = (*LRUCacheTTL)(nil)

// entry — запись кэша: сводки одного пользователя + срок жизни.
type entry struct {
	userID    string
	summaries []domain.OrderSummary
	expiresAt time.Time
}

// LRUCacheTTL — кэш сводок заказов по пользователю: LRU-вытеснение + TTL.
// Ключ — userID; значение — полный список сводок этого пользователя.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewLRUCacheTTL — конструктор. capacity <= 0 приводится к 1;
// ttl <= 0 отключает истечение.
func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get — сводки пользователя; (list, true) при попадании, (nil, false) при промахе/истечении.
// Попадание продлевает TTL и двигает запись в голову LRU.
func (c *LRUCacheTTL) Get(_ context.Context, userID string) ([]domain.OrderSummary, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[userID]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneSummaries(ent.summaries), true
}

// Set — сохранить/обновить сводки пользователя.
func (c *LRUCacheTTL) Set(_ context.Context, userID string, summaries []domain.OrderSummary) error {
	if userID == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[userID]; ok {
		ent := elem.Value.(*entry)
		ent.summaries = cloneSummaries(summaries)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		userID:    userID,
		summaries: cloneSummaries(summaries),
		expiresAt: c.expiryFrom(now),
	})
	c.index[userID] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Invalidate — сбросить запись пользователя (вызывается после ингеста заказа).
func (c *LRUCacheTTL) Invalidate(_ context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[userID]; ok {
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues("invalidated").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
	return nil
}
