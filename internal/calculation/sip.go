package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/sipgo/sip-calculator/internal/domain"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// MonthlyRate converts an annual percentage rate to a per-month decimal
// fraction, e.g. 12 -> 0.01.
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(twelve).Div(hundred)
}

// annuityDueFactor is ((1+r)^n - 1)/r * (1+r): the future value of one unit
// contributed at the start of each of n periods. The trailing (1+r) shifts an
// ordinary annuity to beginning-of-period compounding, matching SIP
// contributions made at the start of each month. The r = 0 limit is n.
func annuityDueFactor(r decimal.Decimal, n int) decimal.Decimal {
	if r.IsZero() {
		return decimal.NewFromInt(int64(n))
	}
	onePlusR := one.Add(r)
	growth := onePlusR.Pow(decimal.NewFromInt(int64(n)))
	return growth.Sub(one).Div(r).Mul(onePlusR)
}

// ComputeForward calculates the future value of a monthly SIP contribution
// over the given term. Internal arithmetic runs at full decimal precision;
// monetary aggregates are rounded to the whole currency unit at this boundary
// only, with Gains derived from the rounded values so that
// FutureValue = Principal + Gains holds exactly.
//
// Out-of-contract input (non-positive amount or years) does not error: the
// aggregates come out zero or negative as the formula dictates.
func (e *Engine) ComputeForward(monthlyAmount decimal.Decimal, years int, annualRatePercent decimal.Decimal) domain.SIPResult {
	r := MonthlyRate(annualRatePercent)
	n := years * 12
	if n < 0 {
		n = 0
	}

	futureValue := monthlyAmount.Mul(annuityDueFactor(r, n)).Round(0)
	principal := monthlyAmount.Mul(decimal.NewFromInt(int64(n))).Round(0)
	gains := futureValue.Sub(principal)

	// gains/FV is undefined at FV = 0; reported as 0 rather than erroring.
	gainPercent := decimal.Zero
	if !futureValue.IsZero() {
		gainPercent = gains.Div(futureValue).Mul(hundred).Round(1)
	}

	e.Logger.Debugf("forward: amount=%s years=%d rate=%s%% -> fv=%s",
		monthlyAmount.String(), years, annualRatePercent.String(), futureValue.String())

	return domain.SIPResult{
		FutureValue: futureValue,
		Principal:   principal,
		Gains:       gains,
		GainPercent: gainPercent,
		MonthlyRate: r,
		Months:      n,
	}
}

// ComputeReverse calculates the monthly contribution required to reach a goal
// amount: the exact algebraic inverse of ComputeForward with the future value
// fixed to goalAmount. TotalGains is derived from the rounded aggregates so
// that GoalAmount = TotalInvested + TotalGains holds exactly.
func (e *Engine) ComputeReverse(goalAmount decimal.Decimal, years int, annualRatePercent decimal.Decimal) domain.ReverseSIPResult {
	r := MonthlyRate(annualRatePercent)
	n := years * 12
	if n < 0 {
		n = 0
	}

	// A zero divisor only arises from degenerate input (n = 0 or a -100%
	// rate); report a zero contribution instead of dividing by zero.
	divisor := annuityDueFactor(r, n)
	monthlySIP := decimal.Zero
	if !divisor.IsZero() {
		monthlySIP = goalAmount.Div(divisor)
	}

	totalInvested := monthlySIP.Mul(decimal.NewFromInt(int64(n))).Round(0)
	totalGains := goalAmount.Round(0).Sub(totalInvested)

	gainPercent := decimal.Zero
	if !goalAmount.IsZero() {
		gainPercent = totalGains.Div(goalAmount).Mul(hundred).Round(1)
	}

	e.Logger.Debugf("reverse: goal=%s years=%d rate=%s%% -> monthly=%s",
		goalAmount.String(), years, annualRatePercent.String(), monthlySIP.Round(0).String())

	return domain.ReverseSIPResult{
		MonthlySIP:    monthlySIP.Round(0),
		TotalInvested: totalInvested,
		TotalGains:    totalGains,
		GainPercent:   gainPercent,
		MonthlyRate:   r,
		Months:        n,
	}
}

// VerifyRoundTrip runs a forward calculation, feeds the (boundary-rounded)
// future value back through the reverse calculation, and checks that the
// recovered monthly contribution lands within one currency unit of the
// original. Rounding the future value between the two steps bounds the
// reconstruction error by the rounding granularity.
func (e *Engine) VerifyRoundTrip(monthlyAmount decimal.Decimal, years int, annualRatePercent decimal.Decimal) domain.RoundTripCheck {
	forward := e.ComputeForward(monthlyAmount, years, annualRatePercent)
	reverse := e.ComputeReverse(forward.FutureValue, years, annualRatePercent)

	variance := reverse.MonthlySIP.Sub(monthlyAmount).Abs()
	return domain.RoundTripCheck{
		OriginalMonthly:  monthlyAmount,
		RecoveredMonthly: reverse.MonthlySIP,
		VarianceAbs:      variance,
		IsAccurate:       variance.LessThan(one),
	}
}

// GenerateProjection samples the forward formula at every whole multiple of
// intervalMonths up to and including the largest multiple within the term.
// When the interval does not evenly divide the term, the final partial
// interval is NOT appended; see GenerateProjectionWithTerm for the opt-in
// variant.
func (e *Engine) GenerateProjection(monthlyAmount decimal.Decimal, years int, annualRatePercent decimal.Decimal, intervalMonths int) []domain.ProjectionRow {
	totalMonths := years * 12
	if intervalMonths < 1 || totalMonths < 1 {
		return nil
	}

	r := MonthlyRate(annualRatePercent)
	rows := make([]domain.ProjectionRow, 0, totalMonths/intervalMonths)
	for m := intervalMonths; m <= totalMonths; m += intervalMonths {
		rows = append(rows, projectionRow(monthlyAmount, r, m))
	}
	return rows
}

// GenerateProjectionWithTerm is GenerateProjection plus the full-term row when
// the interval does not evenly divide the term, so the projection always ends
// at years*12.
func (e *Engine) GenerateProjectionWithTerm(monthlyAmount decimal.Decimal, years int, annualRatePercent decimal.Decimal, intervalMonths int) []domain.ProjectionRow {
	rows := e.GenerateProjection(monthlyAmount, years, annualRatePercent, intervalMonths)
	totalMonths := years * 12
	if intervalMonths < 1 || totalMonths < 1 {
		return rows
	}
	if len(rows) == 0 || rows[len(rows)-1].Month != totalMonths {
		rows = append(rows, projectionRow(monthlyAmount, MonthlyRate(annualRatePercent), totalMonths))
	}
	return rows
}

func projectionRow(monthlyAmount, r decimal.Decimal, m int) domain.ProjectionRow {
	futureValue := monthlyAmount.Mul(annuityDueFactor(r, m)).Round(0)
	principal := monthlyAmount.Mul(decimal.NewFromInt(int64(m))).Round(0)
	return domain.ProjectionRow{
		Month:       m,
		YearLabel:   decimal.NewFromInt(int64(m)).Div(twelve).StringFixed(1),
		Principal:   principal,
		Gains:       futureValue.Sub(principal),
		FutureValue: futureValue,
	}
}
