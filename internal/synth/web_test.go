package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func webResults(t *testing.T, records []Record) []WebResult {
	t.Helper()
	out := make([]WebResult, 0, len(records))
	for _, r := range records {
		w, ok := r.(WebResult)
		require.True(t, ok, "expected WebResult, got %T", r)
		out = append(out, w)
	}
	return out
}

func TestGenerateWebCuratedAI(t *testing.T) {
	for _, query := range []string{
		"AI automation tools",
		"best AI",
		"Home AUTOMATION",
		"email marketing", // substring match, not tokenized
		"AI headphones",   // AI rule wins over audio
	} {
		t.Run(query, func(t *testing.T) {
			results := webResults(t, GenerateWeb(query))
			require.Len(t, results, 3)
			assert.Equal(t, "openai.com", results[0].Domain)
			assert.Equal(t, "microsoft.com", results[1].Domain)
			assert.Equal(t, "cloud.google.com", results[2].Domain)
			assert.Equal(t, "ai", webRuleName(query))
		})
	}
}

func TestGenerateWebCuratedAudio(t *testing.T) {
	for _, query := range []string{"wireless headphones", "Studio AUDIO gear"} {
		t.Run(query, func(t *testing.T) {
			results := webResults(t, GenerateWeb(query))
			require.Len(t, results, 2)
			assert.Equal(t, "sony.com", results[0].Domain)
			assert.Equal(t, "$399.99", results[0].Price)
			assert.Equal(t, "apple.com", results[1].Domain)
			assert.Equal(t, "audio", webRuleName(query))
		})
	}
}

func TestGenerateWebGeneric(t *testing.T) {
	results := webResults(t, GenerateWeb("Rust   Web\tFrameworks"))
	require.Len(t, results, 2)

	assert.Equal(t, "https://example.com/rust-web-frameworks", results[0].URL)
	assert.Equal(t, "https://tools.com/rust-web-frameworks", results[1].URL)
	assert.Equal(t, "Rust   Web\tFrameworks - Comprehensive Guide and Resources", results[0].Title)
	assert.Equal(t, "Best Rust   Web\tFrameworks Tools and Platforms 2025", results[1].Title)
	assert.Equal(t, 4.5, results[0].Rating)
	assert.Equal(t, 4.3, results[1].Rating)
	assert.Equal(t, "generic", webRuleName("Rust"))
}

func TestGenerateWebReturnsFreshSlices(t *testing.T) {
	first := GenerateWeb("ai")
	first[0] = WebResult{Title: "mutated"}

	second := webResults(t, GenerateWeb("ai"))
	assert.Equal(t, "openai.com", second[0].Domain)
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Hello World":         "hello-world",
		"many   spaces here":  "many-spaces-here",
		"tabs\tand\nnewlines": "tabs-and-newlines",
		"single":              "single",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slug(in), in)
	}
}
