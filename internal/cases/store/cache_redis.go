package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"ethub/internal/cases/models"
	"ethub/pkg/platform/circuit"
)

const caseKeyPrefix = "case:"

// RedisCache is a read-through, write-through cache in front of a Store.
// Redis failures fall back to the backing store; they are logged, never returned.
// Repeated failures open a circuit breaker that skips Redis until a probe
// succeeds. A case whose write-through did not reach Redis is marked stale and
// is never read from the cache until its old entry has been deleted.
//
// Fills from the backing store never overwrite an entry: they use SETNX and
// are dropped when a Save or Invalidate for the case ran during the lookup.
type RedisCache struct {
	client  *redis.Client
	backing Store
	ttl     time.Duration
	logger  *slog.Logger
	group   singleflight.Group
	breaker *circuit.Breaker

	mu    sync.Mutex
	stale map[string]struct{}
	gen   map[string]uint64
}

// NewRedisCache wraps backing with a Redis cache holding entries for ttl.
func NewRedisCache(client *redis.Client, backing Store, ttl time.Duration, logger *slog.Logger) *RedisCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisCache{
		client:  client,
		backing: backing,
		ttl:     ttl,
		logger:  logger,
		breaker: circuit.New("case-cache",
			circuit.WithFailureThreshold(3),
			circuit.WithCooldown(15*time.Second),
		),
		stale: make(map[string]struct{}),
		gen:   make(map[string]uint64),
	}
}

func (c *RedisCache) FindByID(ctx context.Context, caseID string) (*models.Case, error) {
	if cached, ok := c.get(ctx, caseID); ok {
		return cached, nil
	}

	// Concurrent misses for the same case share one backing lookup.
	v, err, _ := c.group.Do(caseID, func() (any, error) {
		gen := c.generation(caseID)
		found, err := c.backing.FindByID(ctx, caseID)
		if err != nil {
			return nil, err
		}
		c.fill(ctx, found, gen)
		return found, nil
	})
	if err != nil {
		return nil, err
	}
	// The shared value must not be mutated by more than one caller.
	return cloneCase(v.(*models.Case))
}

func (c *RedisCache) Save(ctx context.Context, cs *models.Case) error {
	if err := c.backing.Save(ctx, cs); err != nil {
		return err
	}
	c.bump(cs.ID)
	c.set(ctx, cs)
	return nil
}

// Invalidate drops the cached copy of a case.
func (c *RedisCache) Invalidate(ctx context.Context, caseID string) error {
	c.bump(caseID)
	err := c.client.Del(ctx, caseKeyPrefix+caseID).Err()
	c.record(ctx, err)
	if err != nil {
		c.setStale(caseID, true)
		return err
	}
	c.setStale(caseID, false)
	return nil
}

func (c *RedisCache) get(ctx context.Context, caseID string) (*models.Case, bool) {
	if !c.breaker.Allow() {
		return nil, false
	}
	if c.isStale(caseID) {
		err := c.client.Del(ctx, caseKeyPrefix+caseID).Err()
		c.record(ctx, err)
		if err == nil {
			c.setStale(caseID, false)
		}
		return nil, false
	}
	raw, err := c.client.Get(ctx, caseKeyPrefix+caseID).Bytes()
	if errors.Is(err, redis.Nil) {
		c.record(ctx, nil)
		return nil, false
	}
	c.record(ctx, err)
	if err != nil {
		c.logger.WarnContext(ctx, "case cache read failed", "case_id", caseID, "error", err)
		return nil, false
	}
	var cs models.Case
	if err := json.Unmarshal(raw, &cs); err != nil {
		c.logger.WarnContext(ctx, "case cache entry corrupt", "case_id", caseID, "error", err)
		return nil, false
	}
	return &cs, true
}

func (c *RedisCache) set(ctx context.Context, cs *models.Case) {
	raw, err := json.Marshal(cs)
	if err != nil {
		c.logger.WarnContext(ctx, "case cache encode failed", "case_id", cs.ID, "error", err)
		return
	}
	if !c.breaker.Allow() {
		c.setStale(cs.ID, true)
		return
	}
	err = c.client.Set(ctx, caseKeyPrefix+cs.ID, raw, c.ttl).Err()
	c.record(ctx, err)
	c.setStale(cs.ID, err != nil)
	if err != nil {
		c.logger.WarnContext(ctx, "case cache write failed", "case_id", cs.ID, "error", err)
	}
}

// fill caches a case read from the backing store at generation gen.
func (c *RedisCache) fill(ctx context.Context, cs *models.Case, gen uint64) {
	if c.generation(cs.ID) != gen || c.isStale(cs.ID) {
		return
	}
	raw, err := json.Marshal(cs)
	if err != nil {
		c.logger.WarnContext(ctx, "case cache encode failed", "case_id", cs.ID, "error", err)
		return
	}
	if !c.breaker.Allow() {
		return
	}
	err = c.client.SetNX(ctx, caseKeyPrefix+cs.ID, raw, c.ttl).Err()
	c.record(ctx, err)
	if err != nil {
		c.logger.WarnContext(ctx, "case cache fill failed", "case_id", cs.ID, "error", err)
	}
}

func (c *RedisCache) generation(caseID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen[caseID]
}

func (c *RedisCache) bump(caseID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen[caseID]++
}

func (c *RedisCache) isStale(caseID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.stale[caseID]
	return ok
}

func (c *RedisCache) setStale(caseID string, stale bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if stale {
		c.stale[caseID] = struct{}{}
		return
	}
	delete(c.stale, caseID)
}

func (c *RedisCache) record(ctx context.Context, err error) {
	if err == nil {
		if _, change := c.breaker.RecordSuccess(); change.Closed {
			c.logger.InfoContext(ctx, "case cache circuit closed")
		}
		return
	}
	if _, change := c.breaker.RecordFailure(); change.Opened {
		c.logger.WarnContext(ctx, "case cache circuit opened, reading through to the case store", "error", err)
	}
}

func cloneCase(cs *models.Case) (*models.Case, error) {
	raw, err := json.Marshal(cs)
	if err != nil {
		return nil, fmt.Errorf("clone case: %w", err)
	}
	var out models.Case
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("clone case: %w", err)
	}
	return &out, nil
}
