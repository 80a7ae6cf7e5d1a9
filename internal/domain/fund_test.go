package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRiskProfile(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RiskProfile
		wantErr bool
	}{
		{name: "conservative", in: "conservative", want: RiskConservative},
		{name: "balanced", in: "balanced", want: RiskBalanced},
		{name: "aggressive", in: "aggressive", want: RiskAggressive},
		{name: "mixed case", in: "Balanced", want: RiskBalanced},
		{name: "surrounding whitespace", in: "  aggressive ", want: RiskAggressive},
		{name: "unknown", in: "yolo", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRiskProfile(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown risk profile")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFundMetricsValidate(t *testing.T) {
	valid := FundMetrics{
		Name:                  "Nifty 50 Index Fund",
		ExpenseRatioPercent:   decimal.NewFromFloat(0.2),
		FiveYearReturnPercent: decimal.NewFromFloat(13.5),
		AUMCrore:              decimal.NewFromInt(25000),
		TrackingErrorPercent:  decimal.NewFromFloat(0.1),
	}

	t.Run("valid metrics", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		m := valid
		m.Name = ""
		assert.EqualError(t, m.Validate(), "fund name is required")
	})

	t.Run("negative expense ratio", func(t *testing.T) {
		m := valid
		m.ExpenseRatioPercent = decimal.NewFromFloat(-0.1)
		assert.EqualError(t, m.Validate(), "expense ratio cannot be negative")
	})

	t.Run("negative AUM", func(t *testing.T) {
		m := valid
		m.AUMCrore = decimal.NewFromInt(-1)
		assert.EqualError(t, m.Validate(), "AUM cannot be negative")
	})

	t.Run("negative five-year return is allowed", func(t *testing.T) {
		m := valid
		m.FiveYearReturnPercent = decimal.NewFromFloat(-4.2)
		assert.NoError(t, m.Validate())
	})
}
