package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sipgo/sip-calculator/internal/domain"
)

var (
	reverseGoal         float64
	reverseYears        int
	reverseRate         float64
	reverseInterval     int
	reverseIncludeFinal bool
)

var reverseCmd = &cobra.Command{
	Use:   "reverse",
	Short: "Find the monthly SIP required to reach a goal amount",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := domain.GoalInput{
			GoalAmount:        decimal.NewFromFloat(reverseGoal),
			Years:             reverseYears,
			AnnualRatePercent: decimal.NewFromFloat(reverseRate),
		}
		if err := input.Validate(); err != nil {
			return err
		}

		engine := newEngine()
		assumptions := domain.Assumptions{
			AnnualRatePercent:        input.AnnualRatePercent,
			ProjectionIntervalMonths: reverseInterval,
			IncludeFinalTerm:         reverseIncludeFinal,
		}
		summary, err := engine.RunPlan(
			domain.Plan{
				Name:       "Goal SIP",
				Type:       domain.PlanGoal,
				GoalAmount: input.GoalAmount,
				Years:      input.Years,
			},
			assumptions,
		)
		if err != nil {
			return err
		}

		return render(&domain.PlanComparison{
			Assumptions: assumptions,
			Plans:       []domain.PlanSummary{summary},
		})
	},
}

func init() {
	reverseCmd.Flags().Float64VarP(&reverseGoal, "goal", "g", 0, "Goal amount to reach")
	reverseCmd.Flags().IntVarP(&reverseYears, "years", "y", 0, "Investment term in years")
	reverseCmd.Flags().Float64VarP(&reverseRate, "rate", "r", 12, "Expected annual return in percent")
	reverseCmd.Flags().IntVarP(&reverseInterval, "interval", "i", 12, "Projection sampling interval in months")
	reverseCmd.Flags().BoolVar(&reverseIncludeFinal, "include-final", false,
		"Append the full-term row when the interval does not divide the term")
	_ = reverseCmd.MarkFlagRequired("goal")
	_ = reverseCmd.MarkFlagRequired("years")
}
