package livemetrics

import (
	"context"
	"fmt"
	"time"

	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/internal/synth"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/pkg/cache"
)

const snapshotKey = "live"

// DefaultTick matches the landing page's polling interval.
const DefaultTick = 3 * time.Second

// Service hands out the current snapshot, advancing the walk at most once per
// tick no matter how many clients poll.
type Service struct {
	store Store
	rng   synth.Rand
	clock synth.Clock
	cache *cache.Cache[Snapshot]

	onAdvance func(Snapshot)
}

type Options struct {
	Store Store
	Rand  synth.Rand
	Clock synth.Clock
	Tick  time.Duration
	Hooks cache.MetricsHooks
	// OnAdvance sees every snapshot the walk produces, once per tick.
	OnAdvance func(Snapshot)
}

func NewService(opts Options) *Service {
	if opts.Store == nil {
		opts.Store = NewMemoryStore()
	}
	if opts.Rand == nil {
		opts.Rand = synth.SharedRand()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	return &Service{
		store: opts.Store,
		rng:   opts.Rand,
		clock: opts.Clock,
		cache: cache.New[Snapshot](cache.Options{TTL: opts.Tick, MaxEntries: 1, Clock: opts.Clock}, opts.Hooks),

		onAdvance: opts.OnAdvance,
	}
}

// Current returns the snapshot for the ongoing tick.
func (s *Service) Current(ctx context.Context) (Snapshot, error) {
	return s.cache.Get(ctx, snapshotKey, s.advance)
}

func (s *Service) advance(ctx context.Context, _ string) (Snapshot, error) {
	now := s.clock()
	prev, ok, err := s.store.Load(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load live metrics: %w", err)
	}
	if !ok {
		prev = Seed(now)
	}
	next := Step(prev, s.rng, now)
	if err := s.store.Save(ctx, next); err != nil {
		return Snapshot{}, fmt.Errorf("save live metrics: %w", err)
	}
	if s.onAdvance != nil {
		s.onAdvance(next)
	}
	return next, nil
}
