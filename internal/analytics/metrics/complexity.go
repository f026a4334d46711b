package metrics

import (
	"math"

	"integral-analytics/internal/model"
)

// ComplexityScore is a heuristic difficulty proxy for a single task.
// Three independent signals combine multiplicatively so a strong signal
// (a large estimate, many dependencies) dominates the score:
//
//   - priority: high ×1.5, low ×0.8, medium unchanged
//   - estimate: ×min(estimatedHours/2, 3)
//   - dependencies: ×(1 + 0.2·count)
//
// The result is rounded to one decimal place.
func ComplexityScore(t model.Task) float64 {
	score := complexityBase

	switch t.Priority {
	case model.TaskPriorityHigh:
		score *= highPriorityMultiplier
	case model.TaskPriorityLow:
		score *= lowPriorityMultiplier
	}

	if t.EstimatedHours != nil {
		score *= math.Min(*t.EstimatedHours/estimateHoursDivisor, estimateMultiplierCap)
	}

	if n := len(t.Dependencies); n > 0 {
		score *= 1 + dependencyWeight*float64(n)
	}

	return round1(score)
}

// MeanComplexity returns the average complexity score across tasks,
// rounded to one decimal, or 0 for an empty slice.
func MeanComplexity(tasks []model.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	var sum float64
	for _, t := range tasks {
		sum += ComplexityScore(t)
	}
	return round1(sum / float64(len(tasks)))
}
