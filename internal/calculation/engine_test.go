package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sipgo/sip-calculator/internal/domain"
)

func TestRunPlanForward(t *testing.T) {
	engine := NewEngine()
	assumptions := domain.Assumptions{
		AnnualRatePercent:        decimal.NewFromInt(12),
		ProjectionIntervalMonths: 12,
	}
	plan := domain.Plan{
		Name:          "wealth builder",
		Type:          domain.PlanForward,
		MonthlyAmount: decimal.NewFromInt(10000),
		Years:         20,
	}

	summary, err := engine.RunPlan(plan, assumptions)
	require.NoError(t, err)

	require.NotNil(t, summary.Forward)
	assert.Nil(t, summary.Reverse)
	assert.Equal(t, "wealth builder", summary.Name)
	assert.Len(t, summary.Projection, 20)
	assert.True(t, summary.RoundTrip.IsAccurate)
	// Last projection row is the full term and matches the headline result.
	last := summary.Projection[len(summary.Projection)-1]
	assert.Equal(t, 240, last.Month)
	assert.True(t, last.FutureValue.Equal(summary.Forward.FutureValue))
}

func TestRunPlanGoal(t *testing.T) {
	engine := NewEngine()
	assumptions := domain.Assumptions{
		AnnualRatePercent:        decimal.NewFromInt(12),
		ProjectionIntervalMonths: 60,
	}
	plan := domain.Plan{
		Name:       "crore goal",
		Type:       domain.PlanGoal,
		GoalAmount: decimal.NewFromInt(10000000),
		Years:      20,
	}

	summary, err := engine.RunPlan(plan, assumptions)
	require.NoError(t, err)

	require.NotNil(t, summary.Reverse)
	assert.Nil(t, summary.Forward)
	assert.Len(t, summary.Projection, 4)
	// The projection runs over the recovered contribution, so its final row
	// should land near the goal.
	last := summary.Projection[len(summary.Projection)-1]
	assert.True(t, last.FutureValue.Sub(plan.GoalAmount).Abs().LessThan(decimal.NewFromInt(1000)),
		"final projected value %s too far from goal", last.FutureValue.String())
}

func TestRunPlanRateOverride(t *testing.T) {
	engine := NewEngine()
	override := decimal.NewFromInt(8)
	assumptions := domain.Assumptions{
		AnnualRatePercent:        decimal.NewFromInt(12),
		ProjectionIntervalMonths: 12,
	}
	plan := domain.Plan{
		Name:              "conservative",
		Type:              domain.PlanForward,
		MonthlyAmount:     decimal.NewFromInt(5000),
		Years:             10,
		AnnualRatePercent: &override,
	}

	summary, err := engine.RunPlan(plan, assumptions)
	require.NoError(t, err)
	assert.True(t, summary.AnnualRatePercent.Equal(override))

	baseline := engine.ComputeForward(plan.MonthlyAmount, plan.Years, override)
	assert.True(t, summary.Forward.FutureValue.Equal(baseline.FutureValue))
}

func TestRunPlanUnknownType(t *testing.T) {
	engine := NewEngine()
	_, err := engine.RunPlan(domain.Plan{Name: "bad", Type: "lumpsum"}, domain.Assumptions{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown plan type")
}

func TestRunPlansIncludeFinalTerm(t *testing.T) {
	engine := NewEngine()
	file := &domain.PlanFile{
		Assumptions: domain.Assumptions{
			AnnualRatePercent:        decimal.NewFromInt(10),
			ProjectionIntervalMonths: 5,
			IncludeFinalTerm:         true,
		},
		Plans: []domain.Plan{
			{Name: "one year", Type: domain.PlanForward, MonthlyAmount: decimal.NewFromInt(1000), Years: 1},
		},
	}

	comparison, err := engine.RunPlans(file)
	require.NoError(t, err)
	require.Len(t, comparison.Plans, 1)

	rows := comparison.Plans[0].Projection
	require.Len(t, rows, 3) // months 5, 10 and the appended full term 12
	assert.Equal(t, 12, rows[2].Month)
}

func TestRunPlansPropagatesError(t *testing.T) {
	engine := NewEngine()
	file := &domain.PlanFile{
		Plans: []domain.Plan{{Name: "broken", Type: "nope"}},
	}
	_, err := engine.RunPlans(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `plan "broken"`)
}

func TestSetLogger(t *testing.T) {
	engine := NewEngine()
	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger)
	// Must not panic with the no-op logger in place.
	engine.ComputeForward(decimal.NewFromInt(100), 1, decimal.NewFromInt(10))
}
