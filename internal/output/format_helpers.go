package output

import (
	"github.com/shopspring/decimal"

	"github.com/sipgo/sip-calculator/pkg/money"
)

// FormatCurrency formats a whole-unit amount with a rupee sign and Indian
// digit grouping. Kept here so it can be reused by multiple formatters and
// unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.New(amount).Format()
}

// FormatPercent formats a decimal as a percentage with one decimal place.
func FormatPercent(amount decimal.Decimal) string {
	return amount.StringFixed(1) + "%"
}
