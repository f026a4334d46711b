package insight_test

import (
	"strings"
	"testing"

	"integral-analytics/internal/analytics/insight"
)

// healthy returns an input that triggers no rules.
func healthy() insight.Input {
	return insight.Input{
		VelocityTrend:          0,
		BurnoutRisk:            20,
		EfficiencyScore:        100,
		AvgDailyFocusMS:        3 * 60 * 60 * 1000,
		HighPriorityCompletion: 90,
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*insight.Input)
		wantPart string
	}{
		{
			name:     "velocity praise",
			mutate:   func(in *insight.Input) { in.VelocityTrend = 35 },
			wantPart: "velocity is up 35%",
		},
		{
			name:     "burnout warning",
			mutate:   func(in *insight.Input) { in.BurnoutRisk = 85 },
			wantPart: "Burnout risk is high",
		},
		{
			name:     "efficiency praise",
			mutate:   func(in *insight.Input) { in.EfficiencyScore = 150 },
			wantPart: "faster than estimated",
		},
		{
			name:     "efficiency suggestion",
			mutate:   func(in *insight.Input) { in.EfficiencyScore = 60 },
			wantPart: "longer than estimated",
		},
		{
			name:     "focus praise",
			mutate:   func(in *insight.Input) { in.AvgDailyFocusMS = 7 * 60 * 60 * 1000 },
			wantPart: "six hours of daily focus",
		},
		{
			name:     "focus suggestion",
			mutate:   func(in *insight.Input) { in.AvgDailyFocusMS = 30 * 60 * 1000 },
			wantPart: "under two hours",
		},
		{
			name:     "high priority lagging",
			mutate:   func(in *insight.Input) { in.HighPriorityCompletion = 40 },
			wantPart: "High-priority tasks are lagging",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := healthy()
			tt.mutate(&in)

			got := insight.Generate(in)
			if len(got) != 1 {
				t.Fatalf("expected exactly 1 insight, got %d: %v", len(got), got)
			}
			if !strings.Contains(got[0], tt.wantPart) {
				t.Errorf("insight %q does not contain %q", got[0], tt.wantPart)
			}
		})
	}
}

func TestGenerateNoTriggers(t *testing.T) {
	if got := insight.Generate(healthy()); len(got) != 0 {
		t.Errorf("expected no insights, got %v", got)
	}
}

func TestGenerateCapsAtThreeInRuleOrder(t *testing.T) {
	in := insight.Input{
		VelocityTrend:          50,                 // rule 1
		BurnoutRisk:            90,                 // rule 2
		EfficiencyScore:        60,                 // rule 4
		AvgDailyFocusMS:        30 * 60 * 1000,     // rule 6
		HighPriorityCompletion: 10,                 // rule 7
	}

	got := insight.Generate(in)
	if len(got) != 3 {
		t.Fatalf("expected 3 insights, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0], "velocity") {
		t.Errorf("first insight should be the velocity rule, got %q", got[0])
	}
	if !strings.Contains(got[1], "Burnout") {
		t.Errorf("second insight should be the burnout rule, got %q", got[1])
	}
	if !strings.Contains(got[2], "longer than estimated") {
		t.Errorf("third insight should be the efficiency rule, got %q", got[2])
	}
}

func TestGenerateIdempotent(t *testing.T) {
	in := healthy()
	in.BurnoutRisk = 95

	first := insight.Generate(in)
	second := insight.Generate(in)
	if len(first) != len(second) || first[0] != second[0] {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
}
