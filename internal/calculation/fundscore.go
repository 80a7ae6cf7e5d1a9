package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/sipgo/sip-calculator/internal/domain"
)

// Fixed scoring thresholds. The metric set is closed and known at design
// time, so each metric maps to a points band rather than a weighted formula.
var (
	expenseBands = []scoreBand{
		{limit: decimal.NewFromFloat(0.2), points: 30},
		{limit: decimal.NewFromFloat(0.5), points: 22},
		{limit: decimal.NewFromFloat(1.0), points: 12},
	}
	trackingBands = []scoreBand{
		{limit: decimal.NewFromFloat(0.5), points: 15},
		{limit: decimal.NewFromFloat(1.0), points: 10},
		{limit: decimal.NewFromFloat(2.0), points: 5},
	}
	returnBands = []scoreBand{
		{limit: decimal.NewFromInt(15), points: 35},
		{limit: decimal.NewFromInt(12), points: 28},
		{limit: decimal.NewFromInt(8), points: 18},
	}
	aumBands = []scoreBand{
		{limit: decimal.NewFromInt(10000), points: 20},
		{limit: decimal.NewFromInt(1000), points: 15},
		{limit: decimal.NewFromInt(100), points: 8},
	}
)

const (
	expenseFloorPoints  = 5
	returnFloorPoints   = 8
	aumFloorPoints      = 3
	trackingFloorPoints = 0
)

type scoreBand struct {
	limit  decimal.Decimal
	points int
}

// Allocation percentages per risk profile (equity/debt/gold). The profile set
// is a fixed enumeration, not user-extensible.
var profileSplits = map[domain.RiskProfile][3]int{
	domain.RiskConservative: {30, 60, 10},
	domain.RiskBalanced:     {60, 30, 10},
	domain.RiskAggressive:   {80, 15, 5},
}

// ScoreFund rates a fund's published metrics against the fixed thresholds,
// producing a 0-100 score with a per-metric breakdown.
func (e *Engine) ScoreFund(metrics domain.FundMetrics) domain.FundScore {
	breakdown := domain.ScoreBreakdown{
		ExpensePoints:  bandedBelow(metrics.ExpenseRatioPercent, expenseBands, expenseFloorPoints),
		ReturnPoints:   bandedAtLeast(metrics.FiveYearReturnPercent, returnBands, returnFloorPoints),
		SizePoints:     bandedAtLeast(metrics.AUMCrore, aumBands, aumFloorPoints),
		TrackingPoints: bandedBelow(metrics.TrackingErrorPercent, trackingBands, trackingFloorPoints),
	}
	score := breakdown.ExpensePoints + breakdown.ReturnPoints + breakdown.SizePoints + breakdown.TrackingPoints

	e.Logger.Debugf("fund %q scored %d", metrics.Name, score)

	return domain.FundScore{
		Name:      metrics.Name,
		Score:     score,
		Rating:    ratingFor(score),
		Breakdown: breakdown,
	}
}

// bandedBelow awards the points of the first band whose limit the value is
// strictly below (lower is better).
func bandedBelow(value decimal.Decimal, bands []scoreBand, floor int) int {
	for _, b := range bands {
		if value.LessThan(b.limit) {
			return b.points
		}
	}
	return floor
}

// bandedAtLeast awards the points of the first band whose limit the value
// meets or exceeds (higher is better).
func bandedAtLeast(value decimal.Decimal, bands []scoreBand, floor int) int {
	for _, b := range bands {
		if value.GreaterThanOrEqual(b.limit) {
			return b.points
		}
	}
	return floor
}

func ratingFor(score int) string {
	switch {
	case score >= 85:
		return "Excellent"
	case score >= 65:
		return "Good"
	case score >= 45:
		return "Average"
	default:
		return "Poor"
	}
}

// SuggestAllocation splits a monthly SIP across equity, debt and gold buckets
// for the given risk profile. Debt and gold are whole-unit rounded and equity
// absorbs the remainder, so the three buckets always sum to the rounded
// monthly amount.
func (e *Engine) SuggestAllocation(profile domain.RiskProfile, monthlyAmount decimal.Decimal) domain.Allocation {
	split, ok := profileSplits[profile]
	if !ok {
		split = profileSplits[domain.RiskBalanced]
		profile = domain.RiskBalanced
	}

	total := monthlyAmount.Round(0)
	debt := total.Mul(decimal.NewFromInt(int64(split[1]))).Div(hundred).Round(0)
	gold := total.Mul(decimal.NewFromInt(int64(split[2]))).Div(hundred).Round(0)
	equity := total.Sub(debt).Sub(gold)

	return domain.Allocation{
		Profile:       profile,
		EquityPercent: split[0],
		DebtPercent:   split[1],
		GoldPercent:   split[2],
		EquityMonthly: equity,
		DebtMonthly:   debt,
		GoldMonthly:   gold,
	}
}
