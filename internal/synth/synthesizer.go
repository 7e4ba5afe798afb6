package synth

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedType is returned for unmatched result types in strict mode.
var ErrUnsupportedType = errors.New("unsupported result type")

// Options configures a Synthesizer. Nil fields fall back to the shared
// random source, time.Now and no simulated delay.
type Options struct {
	Rand  Rand
	Clock Clock
	Delay *DelaySimulator
	// StrictTypes rejects unknown result types instead of answering with an
	// empty result list.
	StrictTypes bool
}

// Synthesizer turns a query and a declared result type into a fabricated
// result envelope. It holds no per-request state and is safe for concurrent
// use when its Rand is.
type Synthesizer struct {
	rng    Rand
	clock  Clock
	delay  *DelaySimulator
	strict bool
}

func New(opts Options) *Synthesizer {
	s := &Synthesizer{
		rng:    opts.Rand,
		clock:  opts.Clock,
		delay:  opts.Delay,
		strict: opts.StrictTypes,
	}
	if s.rng == nil {
		s.rng = SharedRand()
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	return s
}

// Outcome carries the envelope plus bookkeeping callers log or measure.
type Outcome struct {
	Envelope Envelope
	Category Category
	// Branch names the web keyword rule that fired, empty for other
	// categories.
	Branch string
	Paused time.Duration
}

// Search classifies, generates, pauses and wraps. query must already be
// validated as non-empty.
func (s *Synthesizer) Search(ctx context.Context, query, resultType string) (Outcome, error) {
	requestedAt := s.clock()
	if resultType == "" {
		resultType = string(TypeWeb)
	}

	category := Classify(resultType)
	out := Outcome{Category: category}

	var results []Record
	switch category {
	case CategoryWeb:
		results = GenerateWeb(query)
		out.Branch = webRuleName(query)
	case CategoryEcommerce:
		results = GenerateEcommerce(query, s.rng)
	case CategoryNews:
		results = GenerateNews(query, s.rng, requestedAt)
	case CategoryUnmatched:
		if s.strict {
			return out, fmt.Errorf("%w: %q", ErrUnsupportedType, resultType)
		}
		results = []Record{}
	}

	if d, ok := categoryDelays[category]; ok {
		out.Paused = s.delay.Wait(ctx, d)
	}

	out.Envelope = BuildEnvelope(query, resultType, results, s.rng, s.clock())
	return out, nil
}
