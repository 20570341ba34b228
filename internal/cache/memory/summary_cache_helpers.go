package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/storefront_api/internal/domain"
	"github.com/Gunvolt24/storefront_api/pkg/metrics"
)

// evictLRU — удаляет наименее используемую запись.
func (c *LRUCacheTTL) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

// removeElement — удаляет запись из списка и индекса.
func (c *LRUCacheTTL) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(c.index, ent.userID)
	}
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL.
func (c *LRUCacheTTL) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — момент истечения, отсчитанный от now.
func (c *LRUCacheTTL) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет записи с истекшим TTL из хвоста до первой актуальной.
func (c *LRUCacheTTL) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent, ok := back.Value.(*entry)
		if !ok {
			c.removeElement(back)
			metrics.CacheSize.Set(float64(len(c.index)))
			continue
		}
		if now.After(ent.expiresAt) {
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues("expired").Inc()
			metrics.CacheSize.Set(float64(len(c.index)))
			continue
		}
		return
	}
}

// cloneSummaries — копия списка, чтобы внешние изменения
// не отражались на данных внутри кэша.
func cloneSummaries(summaries []domain.OrderSummary) []domain.OrderSummary {
	if summaries == nil {
		return nil
	}
	return append([]domain.OrderSummary(nil), summaries...)
}
