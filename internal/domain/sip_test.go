package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSIPInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   SIPInput
		wantErr string
	}{
		{
			name: "valid input",
			input: SIPInput{
				MonthlyAmount:     decimal.NewFromInt(10000),
				Years:             20,
				AnnualRatePercent: decimal.NewFromInt(12),
			},
		},
		{
			name: "zero rate is allowed",
			input: SIPInput{
				MonthlyAmount:     decimal.NewFromInt(5000),
				Years:             10,
				AnnualRatePercent: decimal.Zero,
			},
		},
		{
			name: "negative rate above floor is allowed",
			input: SIPInput{
				MonthlyAmount:     decimal.NewFromInt(5000),
				Years:             10,
				AnnualRatePercent: decimal.NewFromInt(-6),
			},
		},
		{
			name: "zero monthly amount",
			input: SIPInput{
				MonthlyAmount:     decimal.Zero,
				Years:             10,
				AnnualRatePercent: decimal.NewFromInt(12),
			},
			wantErr: "monthly amount must be positive",
		},
		{
			name: "negative monthly amount",
			input: SIPInput{
				MonthlyAmount:     decimal.NewFromInt(-100),
				Years:             10,
				AnnualRatePercent: decimal.NewFromInt(12),
			},
			wantErr: "monthly amount must be positive",
		},
		{
			name: "zero years",
			input: SIPInput{
				MonthlyAmount:     decimal.NewFromInt(10000),
				Years:             0,
				AnnualRatePercent: decimal.NewFromInt(12),
			},
			wantErr: "years must be positive",
		},
		{
			name: "years above cap",
			input: SIPInput{
				MonthlyAmount:     decimal.NewFromInt(10000),
				Years:             101,
				AnnualRatePercent: decimal.NewFromInt(12),
			},
			wantErr: "years must be at most 100",
		},
		{
			name: "rate at total-loss floor",
			input: SIPInput{
				MonthlyAmount:     decimal.NewFromInt(10000),
				Years:             10,
				AnnualRatePercent: decimal.NewFromInt(-100),
			},
			wantErr: "annual rate must be greater than -100%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestGoalInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   GoalInput
		wantErr string
	}{
		{
			name: "valid input",
			input: GoalInput{
				GoalAmount:        decimal.NewFromInt(10000000),
				Years:             20,
				AnnualRatePercent: decimal.NewFromInt(12),
			},
		},
		{
			name: "zero goal amount",
			input: GoalInput{
				GoalAmount:        decimal.Zero,
				Years:             20,
				AnnualRatePercent: decimal.NewFromInt(12),
			},
			wantErr: "goal amount must be positive",
		},
		{
			name: "negative years",
			input: GoalInput{
				GoalAmount:        decimal.NewFromInt(10000000),
				Years:             -5,
				AnnualRatePercent: decimal.NewFromInt(12),
			},
			wantErr: "years must be positive",
		},
		{
			name: "rate below total-loss floor",
			input: GoalInput{
				GoalAmount:        decimal.NewFromInt(10000000),
				Years:             20,
				AnnualRatePercent: decimal.NewFromInt(-150),
			},
			wantErr: "annual rate must be greater than -100%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}
