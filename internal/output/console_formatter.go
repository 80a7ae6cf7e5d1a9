package output

import (
	"fmt"
	"strings"

	"github.com/sipgo/sip-calculator/internal/domain"
)

// ConsoleFormatter renders a plan comparison as plain text tables.
type ConsoleFormatter struct{}

// Name returns the formatter identifier.
func (ConsoleFormatter) Name() string { return "console" }

// Format renders each plan as a headline block followed by its projection
// table.
func (ConsoleFormatter) Format(comparison *domain.PlanComparison) ([]byte, error) {
	var b strings.Builder

	b.WriteString("SIP PLAN COMPARISON\n")
	b.WriteString("===================\n")
	fmt.Fprintf(&b, "Assumed annual rate: %s\n", FormatPercent(comparison.Assumptions.AnnualRatePercent))
	fmt.Fprintf(&b, "Projection interval: %d months\n\n", comparison.Assumptions.ProjectionIntervalMonths)

	for _, plan := range comparison.Plans {
		fmt.Fprintf(&b, "%s (%s, %d years at %s)\n",
			plan.Name, plan.Type, plan.Years, FormatPercent(plan.AnnualRatePercent))
		b.WriteString(strings.Repeat("-", len(plan.Name)+2) + "\n")

		switch {
		case plan.Forward != nil:
			fmt.Fprintf(&b, "  Future value:   %s\n", FormatCurrency(plan.Forward.FutureValue))
			fmt.Fprintf(&b, "  Invested:       %s\n", FormatCurrency(plan.Forward.Principal))
			fmt.Fprintf(&b, "  Gains:          %s (%s)\n",
				FormatCurrency(plan.Forward.Gains), FormatPercent(plan.Forward.GainPercent))
		case plan.Reverse != nil:
			fmt.Fprintf(&b, "  Required SIP:   %s/month\n", FormatCurrency(plan.Reverse.MonthlySIP))
			fmt.Fprintf(&b, "  Invested:       %s\n", FormatCurrency(plan.Reverse.TotalInvested))
			fmt.Fprintf(&b, "  Gains:          %s (%s)\n",
				FormatCurrency(plan.Reverse.TotalGains), FormatPercent(plan.Reverse.GainPercent))
		}

		accuracy := "ok"
		if !plan.RoundTrip.IsAccurate {
			accuracy = fmt.Sprintf("VARIANCE %s", plan.RoundTrip.VarianceAbs.StringFixed(2))
		}
		fmt.Fprintf(&b, "  Round-trip:     %s\n\n", accuracy)

		if len(plan.Projection) > 0 {
			fmt.Fprintf(&b, "  %-6s %-6s %16s %16s %16s\n", "Month", "Year", "Invested", "Gains", "Value")
			for _, row := range plan.Projection {
				fmt.Fprintf(&b, "  %-6d %-6s %16s %16s %16s\n",
					row.Month, row.YearLabel,
					FormatCurrency(row.Principal),
					FormatCurrency(row.Gains),
					FormatCurrency(row.FutureValue))
			}
			b.WriteString("\n")
		}
	}

	return []byte(b.String()), nil
}
