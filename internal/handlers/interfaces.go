package handlers

import (
	"context"

	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/internal/livemetrics"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/internal/synth"
)

type Synthesizer interface {
	Search(ctx context.Context, query, resultType string) (synth.Outcome, error)
	Automate(ctx context.Context, command, resultType string) (synth.AutomationResult, synth.Outcome, error)
}

type LiveMetricsSource interface {
	Current(ctx context.Context) (livemetrics.Snapshot, error)
}
