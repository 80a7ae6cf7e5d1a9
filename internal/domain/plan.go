package domain

import (
	"github.com/shopspring/decimal"
)

// PlanType selects between a forward (contribution-driven) and a goal
// (target-driven) plan.
type PlanType string

const (
	PlanForward PlanType = "forward"
	PlanGoal    PlanType = "goal"
)

// Assumptions are shared across all plans in a plan file.
type Assumptions struct {
	AnnualRatePercent        decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	ProjectionIntervalMonths int             `yaml:"projection_interval_months" json:"projection_interval_months"`
	// IncludeFinalTerm appends the full-term row when the sampling interval
	// does not evenly divide the term. Off by default: the stepping loop only
	// emits whole multiples of the interval.
	IncludeFinalTerm bool `yaml:"include_final_term" json:"include_final_term"`
}

// Plan is one named calculation in a plan file. Forward plans carry a monthly
// contribution; goal plans carry a target amount. A per-plan rate overrides
// the shared assumption when set.
type Plan struct {
	Name              string           `yaml:"name" json:"name"`
	Type              PlanType         `yaml:"type" json:"type"`
	MonthlyAmount     decimal.Decimal  `yaml:"monthly_amount" json:"monthly_amount"`
	GoalAmount        decimal.Decimal  `yaml:"goal_amount" json:"goal_amount"`
	Years             int              `yaml:"years" json:"years"`
	AnnualRatePercent *decimal.Decimal `yaml:"annual_rate_percent,omitempty" json:"annual_rate_percent,omitempty"`
}

// PlanFile is the parsed form of a YAML plan file.
type PlanFile struct {
	Assumptions Assumptions `yaml:"assumptions" json:"assumptions"`
	Plans       []Plan      `yaml:"plans" json:"plans"`
}

// PlanSummary is the evaluated outcome of a single plan. Forward is set for
// forward plans, Reverse for goal plans; the projection and round-trip check
// are always computed from the plan's effective monthly contribution.
type PlanSummary struct {
	Name              string          `json:"name"`
	Type              PlanType        `json:"type"`
	Years             int             `json:"years"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`

	Forward    *SIPResult        `json:"forward,omitempty"`
	Reverse    *ReverseSIPResult `json:"reverse,omitempty"`
	RoundTrip  RoundTripCheck    `json:"round_trip"`
	Projection []ProjectionRow   `json:"projection"`
}

// PlanComparison aggregates the evaluated plans for the output formatters.
type PlanComparison struct {
	Assumptions Assumptions   `json:"assumptions"`
	Plans       []PlanSummary `json:"plans"`
}
