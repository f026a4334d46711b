package insight

import "fmt"

// Thresholds for the insight rules. Rules are evaluated in fixed order
// and at most MaxInsights messages are returned; the order is part of
// the user-visible contract, not a ranking by severity.
const (
	MaxInsights = 3

	velocityPraiseThreshold    = 20.0
	burnoutWarningThreshold    = 70.0
	efficiencyPraiseThreshold  = 120.0
	efficiencySuggestThreshold = 80.0
	focusPraiseThresholdMS     = 6 * 60 * 60 * 1000
	focusSuggestThresholdMS    = 2 * 60 * 60 * 1000
	highPriorityLagThreshold   = 60.0
)

// Input holds the already-computed metrics the rules evaluate.
type Input struct {
	VelocityTrend          float64 // percent change week over week
	BurnoutRisk            float64 // 0–100
	EfficiencyScore        float64 // percent
	AvgDailyFocusMS        float64 // trailing 7-day average
	HighPriorityCompletion float64 // percent; 100 when no high-priority tasks exist
}

// Generate maps metric values to human-readable insight strings via
// independent threshold rules, returning at most the first MaxInsights
// triggered messages in rule order.
func Generate(in Input) []string {
	var out []string

	add := func(msg string) {
		if len(out) < MaxInsights {
			out = append(out, msg)
		}
	}

	if in.VelocityTrend > velocityPraiseThreshold {
		add(fmt.Sprintf("Task velocity is up %.0f%% week over week. Keep the momentum going!", in.VelocityTrend))
	}
	if in.BurnoutRisk > burnoutWarningThreshold {
		add("Burnout risk is high. Consider rescheduling deadlines or planning a lighter week.")
	}
	if in.EfficiencyScore > efficiencyPraiseThreshold {
		add("You regularly finish faster than estimated. Great planning!")
	}
	if in.EfficiencyScore < efficiencySuggestThreshold {
		add("Tasks are taking longer than estimated. Try breaking work into smaller pieces.")
	}
	if in.AvgDailyFocusMS > focusPraiseThresholdMS {
		add("Over six hours of daily focus time this week. Impressive deep-work habit!")
	}
	if in.AvgDailyFocusMS < focusSuggestThresholdMS {
		add("Daily focus time is under two hours. Try scheduling a dedicated focus block.")
	}
	if in.HighPriorityCompletion < highPriorityLagThreshold {
		add("High-priority tasks are lagging behind. Tackle the most important items first.")
	}

	return out
}
