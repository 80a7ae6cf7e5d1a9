package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sipgo/sip-calculator/internal/api/models"
	"github.com/sipgo/sip-calculator/internal/calculation"
	"github.com/sipgo/sip-calculator/internal/domain"
	"github.com/sipgo/sip-calculator/internal/store"
)

// SIPHandler handles the SIP engine endpoints.
type SIPHandler struct {
	engine *calculation.Engine
	cache  store.Cache
}

// NewSIPHandler creates a new SIP handler around the engine and result cache.
func NewSIPHandler(engine *calculation.Engine, cache store.Cache) *SIPHandler {
	return &SIPHandler{engine: engine, cache: cache}
}

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

// ComputeForward handles POST /api/v1/sip/forward.
func (h *SIPHandler) ComputeForward(c *gin.Context) {
	var req models.ForwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	result := h.engine.ComputeForward(
		decimal.NewFromFloat(req.MonthlyAmount), req.Years, decimal.NewFromFloat(req.AnnualRatePercent))
	c.JSON(http.StatusOK, result)
}

// ComputeReverse handles POST /api/v1/sip/reverse.
func (h *SIPHandler) ComputeReverse(c *gin.Context) {
	var req models.ReverseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	result := h.engine.ComputeReverse(
		decimal.NewFromFloat(req.GoalAmount), req.Years, decimal.NewFromFloat(req.AnnualRatePercent))
	c.JSON(http.StatusOK, result)
}

// VerifyRoundTrip handles POST /api/v1/sip/verify.
func (h *SIPHandler) VerifyRoundTrip(c *gin.Context) {
	var req models.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	check := h.engine.VerifyRoundTrip(
		decimal.NewFromFloat(req.MonthlyAmount), req.Years, decimal.NewFromFloat(req.AnnualRatePercent))
	c.JSON(http.StatusOK, check)
}

// GenerateProjection handles POST /api/v1/sip/projection. Projections are the
// only endpoint worth caching: the response grows with the term and the same
// inputs are requested repeatedly by chart front ends.
func (h *SIPHandler) GenerateProjection(c *gin.Context) {
	var req models.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	key := projectionKey(req)
	if raw, ok := h.cache.Get(key); ok {
		var rows []domain.ProjectionRow
		if err := json.Unmarshal([]byte(raw), &rows); err == nil {
			c.JSON(http.StatusOK, models.ProjectionResponse{Rows: rows, Cached: true})
			return
		}
		// Unreadable cache entry: fall through and recompute.
	}

	amount := decimal.NewFromFloat(req.MonthlyAmount)
	rate := decimal.NewFromFloat(req.AnnualRatePercent)
	var rows []domain.ProjectionRow
	if req.IncludeFinalTerm {
		rows = h.engine.GenerateProjectionWithTerm(amount, req.Years, rate, req.IntervalMonths)
	} else {
		rows = h.engine.GenerateProjection(amount, req.Years, rate, req.IntervalMonths)
	}

	if raw, err := json.Marshal(rows); err == nil {
		if err := h.cache.Set(key, string(raw)); err != nil {
			log.Printf("warning: failed to cache projection: %v", err)
		}
	}

	c.JSON(http.StatusOK, models.ProjectionResponse{Rows: rows, Cached: false})
}

func projectionKey(req models.ProjectionRequest) string {
	return fmt.Sprintf("projection:%v:%d:%v:%d:%t",
		req.MonthlyAmount, req.Years, req.AnnualRatePercent, req.IntervalMonths, req.IncludeFinalTerm)
}
