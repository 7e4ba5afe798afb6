package synth

import (
	"fmt"
	"time"
)

type storyTemplate struct {
	titleFormat   string
	source        string
	author        string
	category      string
	summaryFormat string
	// maxAge bounds how long ago the story was published.
	maxAge time.Duration
}

var storyTemplates = []storyTemplate{
	{
		titleFormat:   "Breaking: %s Developments Reshape Industry",
		source:        "TechNews Daily",
		author:        "Sarah Johnson",
		category:      "Technology",
		summaryFormat: "Latest developments in %s are creating significant impacts across multiple sectors...",
		maxAge:        24 * time.Hour,
	},
	{
		titleFormat:   "Analysis: The Future of %s in 2025",
		source:        "Industry Insights",
		author:        "Michael Chen",
		category:      "Analysis",
		summaryFormat: "Expert analysis reveals key trends and predictions for %s in the coming year...",
		maxAge:        48 * time.Hour,
	},
}

// GenerateNews returns two stories published in (now-maxAge, now].
func GenerateNews(query string, rng Rand, now time.Time) []Record {
	out := make([]Record, 0, len(storyTemplates))
	for _, tmpl := range storyTemplates {
		// Stories are at least a millisecond old so the formatted timestamp
		// always precedes the request instant.
		age := time.Duration((1 - rng.Float64()) * float64(tmpl.maxAge))
		if age < time.Millisecond {
			age = time.Millisecond
		}
		out = append(out, NewsResult{
			Title:     fmt.Sprintf(tmpl.titleFormat, query),
			Source:    tmpl.source,
			Published: now.Add(-age).UTC().Format(isoMillis),
			Author:    tmpl.author,
			Category:  tmpl.category,
			Summary:   fmt.Sprintf(tmpl.summaryFormat, query),
		})
	}
	return out
}
