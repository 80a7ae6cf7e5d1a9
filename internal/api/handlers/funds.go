package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sipgo/sip-calculator/internal/api/models"
	"github.com/sipgo/sip-calculator/internal/calculation"
	"github.com/sipgo/sip-calculator/internal/domain"
)

// FundHandler handles the fund scoring and allocation endpoints.
type FundHandler struct {
	engine *calculation.Engine
}

// NewFundHandler creates a new fund handler.
func NewFundHandler(engine *calculation.Engine) *FundHandler {
	return &FundHandler{engine: engine}
}

// ScoreFund handles POST /api/v1/funds/score.
func (h *FundHandler) ScoreFund(c *gin.Context) {
	var req models.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	metrics := domain.FundMetrics{
		Name:                  req.Name,
		ExpenseRatioPercent:   decimal.NewFromFloat(req.ExpenseRatioPercent),
		FiveYearReturnPercent: decimal.NewFromFloat(req.FiveYearReturnPercent),
		AUMCrore:              decimal.NewFromFloat(req.AUMCrore),
		TrackingErrorPercent:  decimal.NewFromFloat(req.TrackingErrorPercent),
	}
	if err := metrics.Validate(); err != nil {
		badRequest(c, "INVALID_METRICS", err)
		return
	}

	c.JSON(http.StatusOK, h.engine.ScoreFund(metrics))
}

// SuggestAllocation handles POST /api/v1/funds/allocation.
func (h *FundHandler) SuggestAllocation(c *gin.Context) {
	var req models.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	profile, err := domain.ParseRiskProfile(req.Profile)
	if err != nil {
		badRequest(c, "INVALID_PROFILE", err)
		return
	}

	c.JSON(http.StatusOK, h.engine.SuggestAllocation(profile, decimal.NewFromFloat(req.MonthlyAmount)))
}
