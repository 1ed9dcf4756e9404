package cbr

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ErrKeyRateUnavailable is returned before the first successful fetch
var ErrKeyRateUnavailable = errors.New("key rate unavailable")

type keyRateFetcher interface {
	GetKeyRate(ctx context.Context) (KeyRate, error)
}

// CachedKeyRate is a key rate together with the time it was fetched
type CachedKeyRate struct {
	KeyRate
	UpdatedAt time.Time `json:"updated_at"`
}

// KeyRateCache keeps the last fetched key rate and refreshes it on a schedule.
// The rate is informational; lending decisions never read it.
type KeyRateCache struct {
	fetcher keyRateFetcher
	log     *logrus.Logger
	timeout time.Duration

	mu      sync.RWMutex
	current *CachedKeyRate
}

// NewKeyRateCache creates an empty cache. timeout bounds a scheduled refresh.
func NewKeyRateCache(fetcher keyRateFetcher, log *logrus.Logger, timeout time.Duration) *KeyRateCache {
	return &KeyRateCache{fetcher: fetcher, log: log, timeout: timeout}
}

// Refresh fetches the key rate and stores it. On failure the previous value
// is kept.
func (c *KeyRateCache) Refresh(ctx context.Context) error {
	kr, err := c.fetcher.GetKeyRate(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.current = &CachedKeyRate{KeyRate: kr, UpdatedAt: time.Now()}
	c.mu.Unlock()
	return nil
}

// Get returns the cached key rate, fetching it once if the cache is empty
func (c *KeyRateCache) Get(ctx context.Context) (CachedKeyRate, error) {
	c.mu.RLock()
	cur := c.current
	c.mu.RUnlock()
	if cur != nil {
		return *cur, nil
	}

	if err := c.Refresh(ctx); err != nil {
		c.log.WithError(err).Warn("Failed to fetch key rate")
		return CachedKeyRate{}, ErrKeyRateUnavailable
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return *c.current, nil
}

// Schedule registers a periodic refresh using a cron spec such as "@every 6h"
// or "0 9 * * *". The caller starts and stops the returned scheduler.
func (c *KeyRateCache) Schedule(spec string) (*cron.Cron, error) {
	sched := cron.New()
	_, err := sched.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		if err := c.Refresh(ctx); err != nil {
			c.log.WithError(err).Warn("Scheduled key rate refresh failed")
		}
	})
	if err != nil {
		return nil, err
	}
	return sched, nil
}
