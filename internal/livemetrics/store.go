package livemetrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	goredis "github.com/redis/go-redis/v9"

	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/pkg/clients"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/pkg/logging"
)

// Store persists the latest snapshot between ticks.
type Store interface {
	// Load reports false when nothing has been saved yet.
	Load(ctx context.Context) (Snapshot, bool, error)
	Save(ctx context.Context, s Snapshot) error
}

// MemoryStore keeps the snapshot in process.
type MemoryStore struct {
	mu    sync.RWMutex
	snap  Snapshot
	valid bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (Snapshot, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap, m.valid, nil
}

func (m *MemoryStore) Save(_ context.Context, s Snapshot) error {
	m.mu.Lock()
	m.snap = s
	m.valid = true
	m.mu.Unlock()
	return nil
}

// DefaultRedisKey is where replicas share the walk.
const DefaultRedisKey = "neuralnav:live_metrics"

// RedisStore shares the snapshot across replicas.
type RedisStore struct {
	client goredis.UniversalClient
	key    string
}

func NewRedisStore(client goredis.UniversalClient, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) Load(ctx context.Context) (Snapshot, bool, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("get live metrics: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return Snapshot{}, false, fmt.Errorf("decode live metrics: %w", err)
	}
	return s, true, nil
}

func (r *RedisStore) Save(ctx context.Context, s Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal live metrics: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set live metrics: %w", err)
	}
	return nil
}

// Ping lets the health checker probe Redis.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// GuardedStore sends reads and writes to a primary store through a circuit
// breaker and mirrors every snapshot into memory. When the primary fails or
// the breaker is open, the in-memory copy answers instead.
type GuardedStore struct {
	primary  Store
	fallback *MemoryStore
	breaker  *clients.CircuitBreaker
	logger   logging.Logger
}

func NewGuardedStore(primary Store, breaker *clients.CircuitBreaker, logger logging.Logger) *GuardedStore {
	return &GuardedStore{
		primary:  primary,
		fallback: NewMemoryStore(),
		breaker:  breaker,
		logger:   logger,
	}
}

type loadResult struct {
	snap Snapshot
	ok   bool
}

func (g *GuardedStore) Load(ctx context.Context) (Snapshot, bool, error) {
	res, err := clients.Execute(g.breaker, func() (loadResult, error) {
		s, ok, err := g.primary.Load(ctx)
		return loadResult{snap: s, ok: ok}, err
	})
	if err != nil {
		g.logFailure(err, "Live metrics primary load failed, using memory")
		return g.fallback.Load(ctx)
	}
	if res.ok {
		_ = g.fallback.Save(ctx, res.snap)
	}
	return res.snap, res.ok, nil
}

func (g *GuardedStore) Save(ctx context.Context, s Snapshot) error {
	_ = g.fallback.Save(ctx, s)
	if err := g.breaker.Call(func() error { return g.primary.Save(ctx, s) }); err != nil {
		g.logFailure(err, "Live metrics primary save failed, kept in memory")
	}
	return nil
}

// Healthy reports whether the breaker is letting calls through to the
// primary store.
func (g *GuardedStore) Healthy() bool {
	return g.breaker.State() == clients.StateClosed
}

// Rejections from an open breaker log at debug; real primary failures warn.
func (g *GuardedStore) logFailure(err error, msg string) {
	entry := g.logger.WithError(err).WithField("breaker", g.breaker.Name())
	if errors.Is(err, clients.ErrCircuitOpen) {
		entry.Debug(msg)
		return
	}
	entry.Warn(msg)
}
