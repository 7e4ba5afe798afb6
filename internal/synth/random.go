package synth

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// Rand is the randomness every generator draws from. *rand.Rand from
// math/rand/v2 satisfies it, but is not safe for concurrent use; prefer
// SharedRand or NewSeededRand.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Clock reports the current instant.
type Clock func() time.Time

type sharedRand struct{}

func (sharedRand) Float64() float64 { return rand.Float64() }
func (sharedRand) IntN(n int) int   { return rand.IntN(n) }

// SharedRand returns the process-wide, goroutine-safe source.
func SharedRand() Rand { return sharedRand{} }

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// NewSeededRand returns a deterministic source that is safe to share.
func NewSeededRand(seed uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// between draws uniformly from [lo, hi).
func between(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// intBetween draws uniformly from [lo, hi).
func intBetween(rng Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
