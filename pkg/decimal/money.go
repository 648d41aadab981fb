package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount in Australian dollars
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// String returns the amount with exactly two decimals and no grouping
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as en-AU currency, e.g. $12,345.67 or -$80.00
func (m Money) Format() string {
	s := m.Decimal.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if s == "0.00" {
		sign = ""
	}
	whole, frac, _ := strings.Cut(s, ".")
	return sign + "$" + GroupThousands(whole) + "." + frac
}

// GroupThousands inserts a comma between every group of three digits
func GroupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatNumber renders a plain quantity with grouping and at most `places` decimals,
// trimming trailing zeros.
func FormatNumber(d decimal.Decimal, places int32) string {
	s := d.Round(places).String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	out := sign + GroupThousands(whole)
	if hasFrac {
		out += "." + frac
	}
	return out
}
