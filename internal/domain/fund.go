package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RiskProfile is the closed set of investor risk profiles.
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskBalanced     RiskProfile = "balanced"
	RiskAggressive   RiskProfile = "aggressive"
)

// ParseRiskProfile resolves a user-supplied profile name.
func ParseRiskProfile(s string) (RiskProfile, error) {
	switch RiskProfile(strings.ToLower(strings.TrimSpace(s))) {
	case RiskConservative:
		return RiskConservative, nil
	case RiskBalanced:
		return RiskBalanced, nil
	case RiskAggressive:
		return RiskAggressive, nil
	default:
		return "", fmt.Errorf("unknown risk profile %q (want conservative, balanced or aggressive)", s)
	}
}

// FundMetrics are the published metrics a fund is scored on.
type FundMetrics struct {
	Name                  string          `yaml:"name" json:"name"`
	ExpenseRatioPercent   decimal.Decimal `yaml:"expense_ratio_percent" json:"expense_ratio_percent"`
	FiveYearReturnPercent decimal.Decimal `yaml:"five_year_return_percent" json:"five_year_return_percent"`
	AUMCrore              decimal.Decimal `yaml:"aum_crore" json:"aum_crore"`
	TrackingErrorPercent  decimal.Decimal `yaml:"tracking_error_percent" json:"tracking_error_percent"`
}

// Validate checks that the metrics are in plausible ranges.
func (m FundMetrics) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("fund name is required")
	}
	if m.ExpenseRatioPercent.IsNegative() {
		return fmt.Errorf("expense ratio cannot be negative")
	}
	if m.AUMCrore.IsNegative() {
		return fmt.Errorf("AUM cannot be negative")
	}
	if m.TrackingErrorPercent.IsNegative() {
		return fmt.Errorf("tracking error cannot be negative")
	}
	return nil
}

// ScoreBreakdown shows how each metric contributed to the total score.
type ScoreBreakdown struct {
	ExpensePoints  int `json:"expense_points"`
	ReturnPoints   int `json:"return_points"`
	SizePoints     int `json:"size_points"`
	TrackingPoints int `json:"tracking_points"`
}

// FundScore is the fixed-threshold score of a fund on a 0-100 scale.
type FundScore struct {
	Name      string         `json:"name"`
	Score     int            `json:"score"`
	Rating    string         `json:"rating"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// Allocation splits a monthly SIP across asset buckets for a risk profile.
// The monthly amounts are whole-unit rounded and always sum to the rounded
// input amount (the equity bucket absorbs the rounding remainder).
type Allocation struct {
	Profile       RiskProfile     `json:"profile"`
	EquityPercent int             `json:"equity_percent"`
	DebtPercent   int             `json:"debt_percent"`
	GoldPercent   int             `json:"gold_percent"`
	EquityMonthly decimal.Decimal `json:"equity_monthly"`
	DebtMonthly   decimal.Decimal `json:"debt_monthly"`
	GoldMonthly   decimal.Decimal `json:"gold_monthly"`
}
