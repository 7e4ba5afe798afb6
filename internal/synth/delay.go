package synth

import (
	"context"
	"time"
)

// Delay describes a simulated pause of Base plus up to Jitter.
type Delay struct {
	Base   time.Duration
	Jitter time.Duration
}

// DelaySimulator emulates network and browser latency so demo responses do
// not come back instantly.
type DelaySimulator struct {
	rng   Rand
	scale float64
	sleep func(ctx context.Context, d time.Duration)
}

// NewDelaySimulator scales every pause by scale; a scale of zero or below
// disables pausing.
func NewDelaySimulator(rng Rand, scale float64) *DelaySimulator {
	return &DelaySimulator{rng: rng, scale: scale, sleep: sleepContext}
}

// Duration draws the pause Wait would take for d.
func (s *DelaySimulator) Duration(d Delay) time.Duration {
	if s == nil || s.scale <= 0 {
		return 0
	}
	pause := float64(d.Base) + s.rng.Float64()*float64(d.Jitter)
	return time.Duration(pause * s.scale)
}

// Wait blocks for a drawn pause. It returns early when ctx is done and never
// reports an error.
func (s *DelaySimulator) Wait(ctx context.Context, d Delay) time.Duration {
	pause := s.Duration(d)
	if pause <= 0 {
		return 0
	}
	s.sleep(ctx, pause)
	return pause
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
