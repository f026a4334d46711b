package metrics

// Neutral defaults returned on sparse data. The dashboard renders these
// instead of erroring; new users see optimistic full scores rather than
// zeros.
const (
	NeutralEfficiencyScore  = 100.0
	NeutralConsistencyScore = 100.0
	ZeroBaselineTrend       = 100.0
	FullCompletionRate      = 100.0
)

// Complexity score factors.
const (
	complexityBase         = 1.0
	highPriorityMultiplier = 1.5
	lowPriorityMultiplier  = 0.8
	estimateHoursDivisor   = 2.0
	estimateMultiplierCap  = 3.0
	dependencyWeight       = 0.2
)

// Burnout risk weights. Each signal is capped independently so no single
// factor can saturate the score, and the total is clamped to [0, 100].
const (
	overdueWeightPerTask  = 15.0
	overdueWeightCap      = 40.0
	priorityWeightPerTask = 10.0
	priorityWeightCap     = 30.0
	inconsistencyCap      = 30.0
	burnoutScoreCap       = 100.0
)

// Per-task efficiency is capped at 200% to bound outliers where a task
// finished far faster than estimated.
const efficiencyCapPercent = 200.0

// VelocityWindowDays is the size of each velocity comparison bucket.
const VelocityWindowDays = 7
