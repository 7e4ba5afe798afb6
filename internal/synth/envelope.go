package synth

import (
	"fmt"
	"time"
)

// Metadata describes the pretend browser session behind a result set.
type Metadata struct {
	ExecutionTime     string `json:"execution_time"`
	PagesVisited      int    `json:"pages_visited"`
	ElementsExtracted int    `json:"elements_extracted"`
	SuccessRate       string `json:"success_rate"`
	Timestamp         string `json:"timestamp"`
}

// Envelope is the success body of a search.
type Envelope struct {
	Success  bool     `json:"success"`
	Query    string   `json:"query"`
	Type     string   `json:"type"`
	Results  []Record `json:"results"`
	Metadata Metadata `json:"metadata"`
}

// BuildEnvelope wraps results with freshly drawn metadata. Results are never
// serialized as null.
func BuildEnvelope(query, resultType string, results []Record, rng Rand, now time.Time) Envelope {
	if results == nil {
		results = []Record{}
	}
	return Envelope{
		Success: true,
		Query:   query,
		Type:    resultType,
		Results: results,
		Metadata: Metadata{
			ExecutionTime:     fmt.Sprintf("%.1fs", between(rng, 1, 6)),
			PagesVisited:      intBetween(rng, 1, 6),
			ElementsExtracted: len(results),
			SuccessRate:       "100%",
			Timestamp:         now.UTC().Format(isoMillis),
		},
	}
}
