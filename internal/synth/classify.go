package synth

import "time"

// Category is the dispatch decision for a requested result type.
type Category int

const (
	// CategoryUnmatched covers any non-empty type we do not know. It is a
	// real arm, not an error: the search succeeds with no results unless the
	// synthesizer runs in strict mode.
	CategoryUnmatched Category = iota
	CategoryWeb
	CategoryEcommerce
	CategoryNews
)

func (c Category) String() string {
	switch c {
	case CategoryWeb:
		return string(TypeWeb)
	case CategoryEcommerce:
		return string(TypeEcommerce)
	case CategoryNews:
		return string(TypeNews)
	default:
		return "unmatched"
	}
}

// Classify maps the declared type to a category. An empty type means the
// caller left it out and defaults to web. Matching is exact and case
// sensitive.
func Classify(resultType string) Category {
	switch ResultType(resultType) {
	case "", TypeWeb:
		return CategoryWeb
	case TypeEcommerce:
		return CategoryEcommerce
	case TypeNews:
		return CategoryNews
	default:
		return CategoryUnmatched
	}
}

// categoryDelays holds the simulated latency per category.
var categoryDelays = map[Category]Delay{
	CategoryWeb:       {Base: 1000 * time.Millisecond, Jitter: 2000 * time.Millisecond},
	CategoryEcommerce: {Base: 800 * time.Millisecond, Jitter: 1500 * time.Millisecond},
	CategoryNews:      {Base: 600 * time.Millisecond, Jitter: 1200 * time.Millisecond},
}
