package metrics

import (
	"math"

	"integral-analytics/internal/model"
)

// EfficiencyScore is the mean estimated-vs-actual ratio across completed
// tasks, as a percentage. Only completed tasks carrying both a completion
// timestamp and an estimate qualify; with no qualifying tasks the neutral
// default is returned so sparse data doesn't read as a bad score. Tasks
// without tracked time contribute the neutral 100.
func EfficiencyScore(tasks []model.Task) float64 {
	var ratios []float64
	for _, t := range tasks {
		if !t.IsCompleted() || t.CompletedAt == nil || t.EstimatedHours == nil {
			continue
		}
		if t.TimeTakenHours == nil || *t.TimeTakenHours <= 0 {
			ratios = append(ratios, NeutralEfficiencyScore)
			continue
		}
		ratios = append(ratios, math.Min(*t.EstimatedHours / *t.TimeTakenHours*100, efficiencyCapPercent))
	}

	if len(ratios) == 0 {
		return NeutralEfficiencyScore
	}
	return math.Round(mean(ratios))
}
