package synth

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Step is one stage of the pretend browser session shown in the demo console.
type Step struct {
	ID     int    `json:"id"`
	Action string `json:"action"`
	Status string `json:"status"`
	Time   string `json:"time"`
}

const StepCompleted = "completed"

var browserStages = []string{
	"Opening browser",
	"Navigating to target website",
	"Analyzing page structure",
	"Executing search query",
	"Extracting results",
	"Formatting output",
}

// BrowserPlan returns every stage as completed with a drawn duration label.
func BrowserPlan(rng Rand) []Step {
	steps := make([]Step, 0, len(browserStages))
	for i, action := range browserStages {
		steps = append(steps, Step{
			ID:     i + 1,
			Action: action,
			Status: StepCompleted,
			Time:   fmt.Sprintf("%.1fs", between(rng, 0.3, 2.5)),
		})
	}
	return steps
}

// A single quote only opens a phrase at the start of the command or after
// whitespace or punctuation, and only closes one before the same, so the
// apostrophes in "what's" or "don't" are left alone.
var quotedPhrase = regexp.MustCompile(`(?:^|[\s(\[:,;])'(.+?)'(?:$|[\s)\].,;:!?])|"([^"]+)"`)

// ExtractQuery pulls the search phrase out of a natural-language command:
// the first single- or double-quoted phrase, else the whole trimmed command.
func ExtractQuery(command string) string {
	if m := quotedPhrase.FindStringSubmatch(command); m != nil {
		phrase := m[1]
		if phrase == "" {
			phrase = m[2]
		}
		if phrase = strings.TrimSpace(phrase); phrase != "" {
			return phrase
		}
	}
	return strings.TrimSpace(command)
}

// AutomationResult is what the demo console renders after a run.
type AutomationResult struct {
	Envelope
	Steps []Step `json:"steps"`
}

// Automate runs a command through the search pipeline and attaches the
// browser plan.
func (s *Synthesizer) Automate(ctx context.Context, command, resultType string) (AutomationResult, Outcome, error) {
	outcome, err := s.Search(ctx, ExtractQuery(command), resultType)
	if err != nil {
		return AutomationResult{}, outcome, err
	}
	return AutomationResult{
		Envelope: outcome.Envelope,
		Steps:    BrowserPlan(s.rng),
	}, outcome, nil
}
