package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"

	"github.com/Adityakumarsinghstm/ChatBot/internal/models"
	"github.com/Adityakumarsinghstm/ChatBot/pkg/util"
)

// snapshotTTL is how long a fetched catalog stays servable. Every successful
// refresh resets the deadline to the same constant.
const snapshotTTL = 10 * time.Minute

// snapshot is an immutable view of the catalog. It is replaced wholesale on
// refresh, never mutated in place, so readers holding the slice stay
// consistent.
type snapshot struct {
	products  []models.Product
	fetchedAt time.Time
}

// usable reports whether the snapshot can be served without refetching. An
// empty product list is never usable, whatever its age.
func (s snapshot) usable(now time.Time) bool {
	return len(s.products) > 0 && now.Sub(s.fetchedAt) < snapshotTTL
}

// Cache holds the last fetched product list and refreshes it on expiry or
// miss. A refresh failure surfaces to the caller; the previous snapshot is
// never served in its place.
type Cache interface {
	Get(ctx context.Context) ([]models.Product, error)
	Refresh(ctx context.Context) ([]models.Product, error)
}

type cache struct {
	source  Client
	metrics *prometheus.HistogramVec
	now     func() time.Time

	group singleflight.Group

	mu   sync.RWMutex
	snap snapshot
}

func NewCache(source Client) (Cache, error) {
	metrics, err := util.GetHistogramVec("catalog_fetch_duration_seconds", "status")
	if err != nil {
		return nil, fmt.Errorf("register catalog metrics: %w", err)
	}
	return &cache{
		source:  source,
		metrics: metrics,
		now:     time.Now,
	}, nil
}

// Get returns the current catalog, refreshing it first when the snapshot is
// stale or empty.
func (c *cache) Get(ctx context.Context) ([]models.Product, error) {
	start := c.now()

	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()
	if snap.usable(c.now()) {
		c.observe("hit", start)
		return snap.products, nil
	}

	products, err := c.Refresh(ctx)
	if err != nil {
		c.observe("error", start)
		return nil, err
	}
	c.observe("refresh", start)
	return products, nil
}

// Refresh fetches the catalog unconditionally and replaces the snapshot on
// success. Concurrent refreshes collapse into a single upstream call whose
// outcome, success or failure, is shared by every waiter.
func (c *cache) Refresh(ctx context.Context) ([]models.Product, error) {
	v, err, shared := c.group.Do("catalog", func() (any, error) {
		products, err := c.source.Fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.snap = snapshot{products: products, fetchedAt: c.now()}
		c.mu.Unlock()
		return products, nil
	})
	if err != nil {
		return nil, err
	}

	products := v.([]models.Product)
	log.Debugw(ctx, "catalog refreshed", "products", len(products), "shared", shared)
	return products, nil
}

func (c *cache) observe(status string, start time.Time) {
	c.metrics.WithLabelValues(status).Observe(c.now().Sub(start).Seconds())
}
