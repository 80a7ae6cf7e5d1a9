package models

// ForwardRequest is the payload for POST /api/v1/sip/forward.
type ForwardRequest struct {
	MonthlyAmount     float64 `json:"monthly_amount" binding:"required,gt=0"`
	Years             int     `json:"years" binding:"required,gt=0,lte=100"`
	AnnualRatePercent float64 `json:"annual_rate_percent" binding:"gt=-100"`
}

// ReverseRequest is the payload for POST /api/v1/sip/reverse.
type ReverseRequest struct {
	GoalAmount        float64 `json:"goal_amount" binding:"required,gt=0"`
	Years             int     `json:"years" binding:"required,gt=0,lte=100"`
	AnnualRatePercent float64 `json:"annual_rate_percent" binding:"gt=-100"`
}

// VerifyRequest is the payload for POST /api/v1/sip/verify.
type VerifyRequest struct {
	MonthlyAmount     float64 `json:"monthly_amount" binding:"required,gt=0"`
	Years             int     `json:"years" binding:"required,gt=0,lte=100"`
	AnnualRatePercent float64 `json:"annual_rate_percent" binding:"gt=-100"`
}

// ProjectionRequest is the payload for POST /api/v1/sip/projection.
type ProjectionRequest struct {
	MonthlyAmount     float64 `json:"monthly_amount" binding:"required,gt=0"`
	Years             int     `json:"years" binding:"required,gt=0,lte=100"`
	AnnualRatePercent float64 `json:"annual_rate_percent" binding:"gt=-100"`
	IntervalMonths    int     `json:"interval_months" binding:"required,gte=1"`
	IncludeFinalTerm  bool    `json:"include_final_term"`
}

// ScoreRequest is the payload for POST /api/v1/funds/score.
type ScoreRequest struct {
	Name                  string  `json:"name" binding:"required"`
	ExpenseRatioPercent   float64 `json:"expense_ratio_percent" binding:"gte=0"`
	FiveYearReturnPercent float64 `json:"five_year_return_percent"`
	AUMCrore              float64 `json:"aum_crore" binding:"gte=0"`
	TrackingErrorPercent  float64 `json:"tracking_error_percent" binding:"gte=0"`
}

// AllocationRequest is the payload for POST /api/v1/funds/allocation.
type AllocationRequest struct {
	Profile       string  `json:"profile" binding:"required"`
	MonthlyAmount float64 `json:"monthly_amount" binding:"required,gt=0"`
}
