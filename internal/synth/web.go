package synth

import (
	"fmt"
	"regexp"
	"strings"
)

// keywordRule maps a set of trigger substrings to a curated result set.
type keywordRule struct {
	name     string
	keywords []string
	results  []WebResult
}

func (r keywordRule) matches(lowered string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// webRules are evaluated top to bottom; the first match wins. Matching is a
// plain substring check on the lower-cased query, so "ai" also matches
// "email" or "chair".
var webRules = []keywordRule{
	{
		name:     "ai",
		keywords: []string{"ai", "automation"},
		results: []WebResult{
			{
				Title:       "OpenAI's Latest GPT Models - Revolutionary AI Technology",
				URL:         "https://openai.com/gpt-4",
				Description: "Discover the most advanced AI language models with unprecedented capabilities for automation and natural language processing.",
				Rating:      4.9,
				Domain:      "openai.com",
				Snippet:     "GPT-4 represents a significant leap in AI capabilities...",
			},
			{
				Title:       "Microsoft Copilot - AI-Powered Productivity Suite",
				URL:         "https://copilot.microsoft.com",
				Description: "Transform your workflow with AI-powered assistance across all Microsoft applications and services.",
				Rating:      4.7,
				Domain:      "microsoft.com",
				Snippet:     "Copilot integrates seamlessly with your existing tools...",
			},
			{
				Title:       "Google AI Platform - Machine Learning at Scale",
				URL:         "https://cloud.google.com/ai-platform",
				Description: "Build, deploy, and scale machine learning models with Google's comprehensive AI platform.",
				Rating:      4.6,
				Domain:      "cloud.google.com",
				Snippet:     "Leverage Google's AI expertise for your projects...",
			},
		},
	},
	{
		name:     "audio",
		keywords: []string{"headphones", "audio"},
		results: []WebResult{
			{
				Title:       "Sony WH-1000XM5 - Industry Leading Noise Cancellation",
				URL:         "https://sony.com/wh-1000xm5",
				Description: "Experience premium sound quality with advanced noise cancellation technology.",
				Rating:      4.8,
				Domain:      "sony.com",
				Price:       "$399.99",
			},
			{
				Title:       "Apple AirPods Pro (2nd Gen) - Spatial Audio Excellence",
				URL:         "https://apple.com/airpods-pro",
				Description: "Immersive audio experience with adaptive transparency and personalized spatial audio.",
				Rating:      4.7,
				Domain:      "apple.com",
				Price:       "$249.00",
			},
		},
	},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug lower-cases the query and collapses every whitespace run to a hyphen.
func Slug(query string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(query, "-"))
}

// GenerateWeb returns the curated set for the first matching keyword rule, or
// two generic hits templated from the query.
func GenerateWeb(query string) []Record {
	lowered := strings.ToLower(query)
	for _, rule := range webRules {
		if rule.matches(lowered) {
			out := make([]Record, 0, len(rule.results))
			for _, r := range rule.results {
				out = append(out, r)
			}
			return out
		}
	}

	slug := Slug(query)
	return []Record{
		WebResult{
			Title:       fmt.Sprintf("%s - Comprehensive Guide and Resources", query),
			URL:         "https://example.com/" + slug,
			Description: fmt.Sprintf("Everything you need to know about %s with detailed explanations and practical examples.", query),
			Rating:      4.5,
			Domain:      "example.com",
		},
		WebResult{
			Title:       fmt.Sprintf("Best %s Tools and Platforms 2025", query),
			URL:         "https://tools.com/" + slug,
			Description: fmt.Sprintf("Discover the top-rated tools and platforms for %s with expert reviews and comparisons.", query),
			Rating:      4.3,
			Domain:      "tools.com",
		},
	}
}

// webRuleName reports which branch GenerateWeb takes, for logging.
func webRuleName(query string) string {
	lowered := strings.ToLower(query)
	for _, rule := range webRules {
		if rule.matches(lowered) {
			return rule.name
		}
	}
	return "generic"
}
