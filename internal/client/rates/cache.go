package rates

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/adilbek-m/saudalink/internal/client/models"
	"github.com/adilbek-m/saudalink/internal/client/storage"
	"github.com/adilbek-m/saudalink/internal/logging"
)

// DefaultTTL is the freshness window of a snapshot: within it the cached
// table is served without a network call.
const DefaultTTL = 4 * time.Hour

// Snapshot is an immutable, timestamped rate table for one base currency.
// Snapshots are replaced wholesale on refetch, never merged.
type Snapshot struct {
	Base      models.Currency             `json:"base"`
	Rates     map[models.Currency]float64 `json:"rates"`
	FetchedAt time.Time                   `json:"fetched_at"`
}

// Fresh reports whether the snapshot is still usable at the given time.
func (s *Snapshot) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.FetchedAt) < ttl
}

func storageKey(base models.Currency) string {
	return "rates:" + string(base)
}

// Cache serves rate tables per base currency, consulting an in-memory layer,
// then the durable store, then the provider. Expired snapshots are treated
// as absent and evicted on access. Concurrent misses for the same base
// coalesce into a single provider call.
type Cache struct {
	provider Provider
	kv       storage.KV // optional durable layer, may be nil
	ttl      time.Duration
	log      logging.Logger
	now      func() time.Time

	mu  sync.Mutex
	mem map[models.Currency]*Snapshot
	sf  singleflight.Group
}

// NewCache builds a Cache over provider. kv may be nil to run memory-only;
// ttl <= 0 falls back to DefaultTTL.
func NewCache(provider Provider, kv storage.KV, ttl time.Duration, log logging.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Cache{
		provider: provider,
		kv:       kv,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
		mem:      make(map[models.Currency]*Snapshot),
	}
}

// GetRates returns the freshest known rate table for base, fetching one if
// the cache misses. On any provider failure it returns nil, the
// "unavailable" sentinel, so callers can fall back instead of failing.
func (c *Cache) GetRates(ctx context.Context, base models.Currency) map[models.Currency]float64 {
	if snap := c.lookup(ctx, base); snap != nil {
		return snap.Rates
	}

	v, err, _ := c.sf.Do(string(base), func() (any, error) {
		// A concurrent flight may have filled the cache while this
		// caller was queueing.
		if snap := c.lookup(ctx, base); snap != nil {
			return snap, nil
		}
		return c.fetch(ctx, base)
	})
	if err != nil {
		c.log.Warn(ctx, "rate fetch failed", "base", base, "err", err)
		return nil
	}
	return v.(*Snapshot).Rates
}

// lookup consults memory first, then the durable layer, evicting whatever
// has expired.
func (c *Cache) lookup(ctx context.Context, base models.Currency) *Snapshot {
	now := c.now()

	c.mu.Lock()
	if snap, ok := c.mem[base]; ok {
		if snap.Fresh(now, c.ttl) {
			c.mu.Unlock()
			return snap
		}
		delete(c.mem, base)
	}
	c.mu.Unlock()

	if c.kv == nil {
		return nil
	}

	raw, err := c.kv.Get(ctx, storageKey(base))
	if err != nil || raw == nil {
		return nil
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil || !snap.Fresh(now, c.ttl) {
		_ = c.kv.Delete(ctx, storageKey(base))
		return nil
	}

	c.mu.Lock()
	c.mem[base] = &snap
	c.mu.Unlock()
	return &snap
}

func (c *Cache) fetch(ctx context.Context, base models.Currency) (*Snapshot, error) {
	table, err := c.provider.FetchRates(ctx, base)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Base: base, Rates: table, FetchedAt: c.now()}

	c.mu.Lock()
	c.mem[base] = snap
	c.mu.Unlock()

	if c.kv != nil {
		raw, err := json.Marshal(snap)
		if err == nil {
			if err := c.kv.Set(ctx, storageKey(base), raw); err != nil {
				c.log.Warn(ctx, "failed to persist rate snapshot", "base", base, "err", err)
			}
		}
	}

	c.log.Debug(ctx, "rate snapshot refreshed", "base", base, "targets", len(table))
	return snap, nil
}
