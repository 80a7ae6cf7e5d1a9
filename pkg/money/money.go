// Package money provides a thin wrapper around shopspring decimal for
// whole-unit monetary amounts and Indian-style display formatting.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with financial precision.
type Money struct {
	decimal.Decimal
}

// New creates a Money from a decimal amount.
func New(d decimal.Decimal) Money {
	return Money{d}
}

// FromFloat creates a Money from a float64.
func FromFloat(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromString creates a Money from a string.
func FromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// RoundUnit rounds to the nearest whole currency unit, halves away from zero.
func (m Money) RoundUnit() Money {
	return Money{m.Decimal.Round(0)}
}

// Add adds another Money amount.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Zero returns a zero Money amount.
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the whole-unit amount with Indian digit grouping,
// e.g. 9991476 -> "99,91,476".
func (m Money) String() string {
	return GroupIndian(m.Decimal.Round(0).String())
}

// Format returns the grouped amount with a rupee sign.
func (m Money) Format() string {
	return "₹" + m.String()
}

// GroupIndian inserts Indian-style digit separators into a plain integer
// string: the last three digits form one group, then groups of two.
func GroupIndian(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	out := strings.Join(append(groups, tail), ",")
	if neg {
		return "-" + out
	}
	return out
}
