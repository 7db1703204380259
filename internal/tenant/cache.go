// internal/tenant/cache.go
//
// Lazy tenant cache.
//
// Context
// -------
// Tenants are loaded on first request for their host and kept in a
// sync.Map.  Concurrent first hits are collapsed through singleflight so
// each site row, config map, and DB pool is built exactly once.  A
// background evictor (evictor.go) drops idle tenants and applies LRU
// pressure; Prometheus counters track loads and evictions.
package tenant

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/vitrineweb/vitrine/internal/metrics"
)

// Static defaults.  Override via the New parameters if desired.
const (
	IdleTTL       = 30 * time.Minute
	MaxEntries    = 100
	EvictInterval = 5 * time.Minute
)

// ErrNotFound is returned when a host is not present in the site table.
var ErrNotFound = errors.New("tenant not found")

// Cache lazily loads tenants, stores them in a sync.Map, and evicts them
// on idle TTL or LRU pressure.
type Cache struct {
	globalDB    *sqlx.DB
	log         *zap.SugaredLogger
	sfg         singleflight.Group
	m           sync.Map
	evictTicker *time.Ticker
	done        chan struct{}
	closeOnce   sync.Once
	idleTTL     time.Duration
	maxEntries  int
}

// New constructs a Cache and starts the background evictor.
func New(global *sqlx.DB, idleTTL time.Duration, maxEntries int, log *zap.SugaredLogger) *Cache {
	c := &Cache{
		globalDB:   global,
		log:        log,
		done:       make(chan struct{}),
		idleTTL:    idleTTL,
		maxEntries: maxEntries,
	}
	c.evictTicker = time.NewTicker(EvictInterval)
	go c.evictLoop()
	return c
}

// Close stops the evictor goroutine and closes every cached tenant pool.
// Safe to call more than once.
func (c *Cache) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.evictTicker.Stop()
	})
	c.m.Range(func(key, value any) bool {
		_ = value.(*entry).tenant.Close()
		c.m.Delete(key)
		metrics.ActiveTenants.Dec()
		return true
	})
}

// Get returns the Tenant for host, loading it on demand.
func (c *Cache) Get(host string) (*Tenant, error) {
	if v, ok := c.m.Load(host); ok {
		ent := v.(*entry)
		atomic.StoreInt64(&ent.lastSeen, time.Now().UnixNano())
		return ent.tenant, nil
	}

	v, err, _ := c.sfg.Do(host, func() (interface{}, error) {
		// Double-check after singleflight barrier.
		if v, ok := c.m.Load(host); ok {
			ent := v.(*entry)
			atomic.StoreInt64(&ent.lastSeen, time.Now().UnixNano())
			return ent.tenant, nil
		}
		ten, err := loadSite(context.Background(), c.globalDB, host)
		if err != nil {
			metrics.TenantLoadErrorsTotal.Inc()
			return nil, err
		}
		ent := &entry{
			tenant:   ten,
			lastSeen: time.Now().UnixNano(),
		}
		c.m.Store(host, ent)
		metrics.TenantLoadTotal.Inc()
		metrics.ActiveTenants.Inc()
		c.log.Infow("tenant online", "host", host, "site_id", ten.ID())
		return ten, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Tenant), nil
}
