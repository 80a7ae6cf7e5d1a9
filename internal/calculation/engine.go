package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sipgo/sip-calculator/internal/domain"
)

// Engine orchestrates SIP calculations. All operations are pure and
// reentrant; the engine carries no state beyond its logger.
type Engine struct {
	Logger Logger
}

// NewEngine creates a new calculation engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger reinstates the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunPlan evaluates a single plan against the shared assumptions: the forward
// or reverse calculation, a round-trip consistency check, and a growth
// projection over the plan's effective monthly contribution.
func (e *Engine) RunPlan(plan domain.Plan, assumptions domain.Assumptions) (domain.PlanSummary, error) {
	rate := assumptions.AnnualRatePercent
	if plan.AnnualRatePercent != nil {
		rate = *plan.AnnualRatePercent
	}
	interval := assumptions.ProjectionIntervalMonths
	if interval < 1 {
		interval = 12
	}

	summary := domain.PlanSummary{
		Name:              plan.Name,
		Type:              plan.Type,
		Years:             plan.Years,
		AnnualRatePercent: rate,
	}

	var monthly decimal.Decimal
	switch plan.Type {
	case domain.PlanForward:
		forward := e.ComputeForward(plan.MonthlyAmount, plan.Years, rate)
		summary.Forward = &forward
		monthly = plan.MonthlyAmount
	case domain.PlanGoal:
		reverse := e.ComputeReverse(plan.GoalAmount, plan.Years, rate)
		summary.Reverse = &reverse
		monthly = reverse.MonthlySIP
	default:
		return domain.PlanSummary{}, fmt.Errorf("unknown plan type %q", plan.Type)
	}

	summary.RoundTrip = e.VerifyRoundTrip(monthly, plan.Years, rate)
	if assumptions.IncludeFinalTerm {
		summary.Projection = e.GenerateProjectionWithTerm(monthly, plan.Years, rate, interval)
	} else {
		summary.Projection = e.GenerateProjection(monthly, plan.Years, rate, interval)
	}

	return summary, nil
}

// RunPlans evaluates every plan in a plan file and returns the comparison
// consumed by the output formatters.
func (e *Engine) RunPlans(file *domain.PlanFile) (*domain.PlanComparison, error) {
	plans := make([]domain.PlanSummary, len(file.Plans))
	for i, plan := range file.Plans {
		summary, err := e.RunPlan(plan, file.Assumptions)
		if err != nil {
			return nil, fmt.Errorf("plan %q: %w", plan.Name, err)
		}
		if !summary.RoundTrip.IsAccurate {
			e.Logger.Warnf("plan %q: round-trip variance %s exceeds one unit",
				plan.Name, summary.RoundTrip.VarianceAbs.StringFixed(2))
		}
		plans[i] = summary
	}

	return &domain.PlanComparison{
		Assumptions: file.Assumptions,
		Plans:       plans,
	}, nil
}
