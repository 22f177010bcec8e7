// Пакет memory — кэш недавно напечатанных снимков для быстрой перепечати.
package memory

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/ports"
	"github.com/Gunvolt24/pos_printer/pkg/metrics"
)

var _ ports.SnapshotCache = (*LRUCacheTTL)(nil)

// LRUCacheTTL — LRU по id заказа; запись живёт ttl с момента последней печати.
// ttl <= 0 — без истечения. Снимки хранятся и отдаются копиями.
type LRUCacheTTL struct {
	lru *expirable.LRU[string, *domain.OrderSnapshot]
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	onEvict := func(string, *domain.OrderSnapshot) {
		metrics.CacheOps.WithLabelValues("evicted").Inc()
	}
	return &LRUCacheTTL{lru: expirable.NewLRU[string, *domain.OrderSnapshot](capacity, onEvict, ttl)}
}

func (c *LRUCacheTTL) Get(_ context.Context, orderID string) (*domain.OrderSnapshot, bool) {
	snap, ok := c.lru.Get(strings.TrimSpace(orderID))
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return snap.Clone(), true
}

// Set — снимок без ID не кэшируется: по нему нечего перепечатывать.
func (c *LRUCacheTTL) Set(_ context.Context, order *domain.OrderSnapshot) error {
	if order == nil {
		return nil
	}
	id := strings.TrimSpace(order.ID)
	if id == "" {
		return nil
	}
	c.lru.Add(id, order.Clone())
	metrics.CacheSize.Set(float64(c.lru.Len()))
	return nil
}

// WarmUp — orders от новых к старым; кладём с конца, чтобы самый свежий был последним вытесняемым.
func (c *LRUCacheTTL) WarmUp(ctx context.Context, orders []*domain.OrderSnapshot) error {
	for i := len(orders) - 1; i >= 0; i-- {
		if err := c.Set(ctx, orders[i]); err != nil {
			return err
		}
	}
	return nil
}

// Len — число живых записей.
func (c *LRUCacheTTL) Len() int {
	return c.lru.Len()
}
