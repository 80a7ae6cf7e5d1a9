package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sipgo/sip-calculator/internal/domain"
)

var (
	projMonthly      float64
	projYears        int
	projRate         float64
	projInterval     int
	projIncludeFinal bool
)

var projectionCmd = &cobra.Command{
	Use:   "projection",
	Short: "Print the month-by-month growth table for a monthly SIP",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := domain.SIPInput{
			MonthlyAmount:     decimal.NewFromFloat(projMonthly),
			Years:             projYears,
			AnnualRatePercent: decimal.NewFromFloat(projRate),
		}
		if err := input.Validate(); err != nil {
			return err
		}

		engine := newEngine()
		summary, err := engine.RunPlan(
			domain.Plan{
				Name:          "Projection",
				Type:          domain.PlanForward,
				MonthlyAmount: input.MonthlyAmount,
				Years:         input.Years,
			},
			domain.Assumptions{
				AnnualRatePercent:        input.AnnualRatePercent,
				ProjectionIntervalMonths: projInterval,
				IncludeFinalTerm:         projIncludeFinal,
			},
		)
		if err != nil {
			return err
		}

		return render(&domain.PlanComparison{
			Assumptions: domain.Assumptions{
				AnnualRatePercent:        input.AnnualRatePercent,
				ProjectionIntervalMonths: projInterval,
				IncludeFinalTerm:         projIncludeFinal,
			},
			Plans: []domain.PlanSummary{summary},
		})
	},
}

func init() {
	projectionCmd.Flags().Float64VarP(&projMonthly, "monthly", "m", 0, "Monthly contribution")
	projectionCmd.Flags().IntVarP(&projYears, "years", "y", 0, "Investment term in years")
	projectionCmd.Flags().Float64VarP(&projRate, "rate", "r", 12, "Expected annual return in percent")
	projectionCmd.Flags().IntVarP(&projInterval, "interval", "i", 1, "Sampling interval in months")
	projectionCmd.Flags().BoolVar(&projIncludeFinal, "include-final", false,
		"Append the full-term row when the interval does not divide the term")
	_ = projectionCmd.MarkFlagRequired("monthly")
	_ = projectionCmd.MarkFlagRequired("years")
}
