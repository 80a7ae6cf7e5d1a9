package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SIPInput holds the parameters for a forward SIP calculation.
type SIPInput struct {
	MonthlyAmount     decimal.Decimal `yaml:"monthly_amount" json:"monthly_amount"`
	Years             int             `yaml:"years" json:"years"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
}

// Validate checks the input against the engine's preconditions. The engine
// itself never validates; callers are expected to run this first.
func (in SIPInput) Validate() error {
	if in.MonthlyAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("monthly amount must be positive")
	}
	if in.Years <= 0 {
		return fmt.Errorf("years must be positive")
	}
	if in.Years > 100 {
		return fmt.Errorf("years must be at most 100")
	}
	if in.AnnualRatePercent.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return fmt.Errorf("annual rate must be greater than -100%%")
	}
	return nil
}

// GoalInput holds the parameters for a reverse (goal-seeking) SIP calculation.
type GoalInput struct {
	GoalAmount        decimal.Decimal `yaml:"goal_amount" json:"goal_amount"`
	Years             int             `yaml:"years" json:"years"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
}

// Validate checks the goal input preconditions.
func (in GoalInput) Validate() error {
	if in.GoalAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("goal amount must be positive")
	}
	if in.Years <= 0 {
		return fmt.Errorf("years must be positive")
	}
	if in.Years > 100 {
		return fmt.Errorf("years must be at most 100")
	}
	if in.AnnualRatePercent.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return fmt.Errorf("annual rate must be greater than -100%%")
	}
	return nil
}

// SIPResult is the outcome of a forward SIP calculation. Monetary fields are
// rounded to the whole currency unit at this boundary; GainPercent is rounded
// to one decimal place. Gains is derived from the rounded FutureValue and
// Principal so that FutureValue = Principal + Gains holds exactly.
type SIPResult struct {
	FutureValue decimal.Decimal `json:"future_value"`
	Principal   decimal.Decimal `json:"principal"`
	Gains       decimal.Decimal `json:"gains"`
	GainPercent decimal.Decimal `json:"gain_percent"`
	MonthlyRate decimal.Decimal `json:"monthly_rate"`
	Months      int             `json:"months"`
}

// ReverseSIPResult is the outcome of a reverse SIP calculation: the monthly
// contribution required to reach a goal amount. Structurally dual to SIPResult.
type ReverseSIPResult struct {
	MonthlySIP    decimal.Decimal `json:"monthly_sip"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	TotalGains    decimal.Decimal `json:"total_gains"`
	GainPercent   decimal.Decimal `json:"gain_percent"`
	MonthlyRate   decimal.Decimal `json:"monthly_rate"`
	Months        int             `json:"months"`
}

// ProjectionRow is one sampled interval of a SIP growth projection.
type ProjectionRow struct {
	Month       int             `json:"month"`
	YearLabel   string          `json:"year_label"`
	Principal   decimal.Decimal `json:"principal"`
	Gains       decimal.Decimal `json:"gains"`
	FutureValue decimal.Decimal `json:"future_value"`
}

// RoundTripCheck reports whether reversing a forward calculation recovers the
// original monthly contribution within one currency unit. The tolerance
// absorbs the whole-unit rounding applied to the future value between steps.
type RoundTripCheck struct {
	OriginalMonthly  decimal.Decimal `json:"original_monthly"`
	RecoveredMonthly decimal.Decimal `json:"recovered_monthly"`
	VarianceAbs      decimal.Decimal `json:"variance_abs"`
	IsAccurate       bool            `json:"is_accurate"`
}
