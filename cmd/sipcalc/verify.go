package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sipgo/sip-calculator/internal/domain"
	"github.com/sipgo/sip-calculator/pkg/money"
)

var (
	verifyMonthly float64
	verifyYears   int
	verifyRate    float64
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check forward/reverse round-trip consistency for an input",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := domain.SIPInput{
			MonthlyAmount:     decimal.NewFromFloat(verifyMonthly),
			Years:             verifyYears,
			AnnualRatePercent: decimal.NewFromFloat(verifyRate),
		}
		if err := input.Validate(); err != nil {
			return err
		}

		engine := newEngine()
		check := engine.VerifyRoundTrip(input.MonthlyAmount, input.Years, input.AnnualRatePercent)

		fmt.Printf("Original monthly:  %s\n", money.New(check.OriginalMonthly).Format())
		fmt.Printf("Recovered monthly: %s\n", money.New(check.RecoveredMonthly).Format())
		fmt.Printf("Variance:          %s\n", check.VarianceAbs.StringFixed(2))

		if !check.IsAccurate {
			return fmt.Errorf("round-trip variance exceeds one currency unit")
		}
		fmt.Println("Round-trip: ok")
		return nil
	},
}

func init() {
	verifyCmd.Flags().Float64VarP(&verifyMonthly, "monthly", "m", 0, "Monthly contribution")
	verifyCmd.Flags().IntVarP(&verifyYears, "years", "y", 0, "Investment term in years")
	verifyCmd.Flags().Float64VarP(&verifyRate, "rate", "r", 12, "Expected annual return in percent")
	_ = verifyCmd.MarkFlagRequired("monthly")
	_ = verifyCmd.MarkFlagRequired("years")
}
