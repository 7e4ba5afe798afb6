package livemetrics

import (
	"math"
	"time"

	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/internal/synth"
)

// Snapshot is the set of landing-page counters.
type Snapshot struct {
	ActiveAutomations int     `json:"active_automations"`
	SuccessRate       float64 `json:"success_rate"`
	AvgResponseTime   float64 `json:"avg_response_time"`
	DataPrivacy       int     `json:"data_privacy"`
	TasksCompleted    int     `json:"tasks_completed"`
	UpdatedAt         string  `json:"updated_at"`
}

const (
	minSuccessRate  = 95.0
	maxSuccessRate  = 100.0
	minResponseTime = 0.8
	maxResponseTime = 2.0
)

// Seed is the state the counters start from.
func Seed(now time.Time) Snapshot {
	return Snapshot{
		ActiveAutomations: 247,
		SuccessRate:       98.7,
		AvgResponseTime:   1.2,
		DataPrivacy:       100,
		TasksCompleted:    15420,
		UpdatedAt:         now.UTC().Format(time.RFC3339),
	}
}

// Step advances the random walk by one tick.
func Step(prev Snapshot, rng synth.Rand, now time.Time) Snapshot {
	next := prev
	next.ActiveAutomations = prev.ActiveAutomations + rng.IntN(3) - 1
	if next.ActiveAutomations < 0 {
		next.ActiveAutomations = 0
	}
	next.SuccessRate = clamp(round2(prev.SuccessRate+(rng.Float64()-0.5)*0.2), minSuccessRate, maxSuccessRate)
	next.AvgResponseTime = clamp(round2(prev.AvgResponseTime+(rng.Float64()-0.5)*0.1), minResponseTime, maxResponseTime)
	next.DataPrivacy = 100
	next.TasksCompleted = prev.TasksCompleted + rng.IntN(5)
	next.UpdatedAt = now.UTC().Format(time.RFC3339)
	return next
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
