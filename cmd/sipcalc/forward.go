package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sipgo/sip-calculator/internal/domain"
)

var (
	forwardMonthly      float64
	forwardYears        int
	forwardRate         float64
	forwardInterval     int
	forwardIncludeFinal bool
)

var forwardCmd = &cobra.Command{
	Use:   "forward",
	Short: "Project the future value of a monthly SIP",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := domain.SIPInput{
			MonthlyAmount:     decimal.NewFromFloat(forwardMonthly),
			Years:             forwardYears,
			AnnualRatePercent: decimal.NewFromFloat(forwardRate),
		}
		if err := input.Validate(); err != nil {
			return err
		}

		engine := newEngine()
		summary, err := engine.RunPlan(
			domain.Plan{
				Name:          "Forward SIP",
				Type:          domain.PlanForward,
				MonthlyAmount: input.MonthlyAmount,
				Years:         input.Years,
			},
			domain.Assumptions{
				AnnualRatePercent:        input.AnnualRatePercent,
				ProjectionIntervalMonths: forwardInterval,
				IncludeFinalTerm:         forwardIncludeFinal,
			},
		)
		if err != nil {
			return err
		}

		return render(&domain.PlanComparison{
			Assumptions: domain.Assumptions{
				AnnualRatePercent:        input.AnnualRatePercent,
				ProjectionIntervalMonths: forwardInterval,
				IncludeFinalTerm:         forwardIncludeFinal,
			},
			Plans: []domain.PlanSummary{summary},
		})
	},
}

func init() {
	forwardCmd.Flags().Float64VarP(&forwardMonthly, "monthly", "m", 0, "Monthly contribution")
	forwardCmd.Flags().IntVarP(&forwardYears, "years", "y", 0, "Investment term in years")
	forwardCmd.Flags().Float64VarP(&forwardRate, "rate", "r", 12, "Expected annual return in percent")
	forwardCmd.Flags().IntVarP(&forwardInterval, "interval", "i", 12, "Projection sampling interval in months")
	forwardCmd.Flags().BoolVar(&forwardIncludeFinal, "include-final", false,
		"Append the full-term row when the interval does not divide the term")
	_ = forwardCmd.MarkFlagRequired("monthly")
	_ = forwardCmd.MarkFlagRequired("years")
}
