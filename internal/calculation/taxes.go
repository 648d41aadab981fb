package calculation

import (
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Resident rates: 2024-25 schedule, Medicare levy excluded.
// 2. Backpacker rates: 2024-25 working holiday maker schedule, no tax-free threshold.
// 3. Tables are fixed; there is no tax-year selection or indexation.
// 4. Income is assumed non-negative. Negative input is rejected by the config layer.

// TaxRegime selects which income tax schedule applies.
type TaxRegime int

const (
	RegimeStandard TaxRegime = iota
	RegimeBackpacker
)

// RegimeFor maps the backpacker flag used by job inputs to a regime.
func RegimeFor(backpacker bool) TaxRegime {
	if backpacker {
		return RegimeBackpacker
	}
	return RegimeStandard
}

func (r TaxRegime) String() string {
	switch r {
	case RegimeStandard:
		return "standard"
	case RegimeBackpacker:
		return "backpacker"
	default:
		return "unknown"
	}
}

// TaxBracket is one band of a piecewise-linear schedule. Income in (Min, Max] owes
// Base + (income - Min) * Rate. A zero Max marks the open-ended top band.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Base decimal.Decimal
	Rate decimal.Decimal
}

// openEnded reports whether the bracket has no upper bound.
func (b TaxBracket) openEnded() bool {
	return b.Max.IsZero()
}

// taxOn applies the bracket formula.
func (b TaxBracket) taxOn(income decimal.Decimal) decimal.Decimal {
	return b.Base.Add(income.Sub(b.Min).Mul(b.Rate))
}

// IncomeTaxCalculator evaluates the standard and backpacker schedules.
type IncomeTaxCalculator struct {
	Year       string
	Standard   []TaxBracket
	Backpacker []TaxBracket
}

// NewIncomeTaxCalculator2024 creates a calculator for the 2024-25 income year
func NewIncomeTaxCalculator2024() *IncomeTaxCalculator {
	return &IncomeTaxCalculator{
		Year: "2024-25",
		Standard: []TaxBracket{
			{decimal.Zero, decimal.NewFromInt(18200), decimal.Zero, decimal.Zero},
			{decimal.NewFromInt(18200), decimal.NewFromInt(45000), decimal.Zero, decimal.RequireFromString("0.19")},
			{decimal.NewFromInt(45000), decimal.NewFromInt(120000), decimal.NewFromInt(5092), decimal.RequireFromString("0.325")},
			{decimal.NewFromInt(120000), decimal.NewFromInt(180000), decimal.NewFromInt(29467), decimal.RequireFromString("0.37")},
			{decimal.NewFromInt(180000), decimal.Zero, decimal.NewFromInt(51667), decimal.RequireFromString("0.45")},
		},
		Backpacker: []TaxBracket{
			{decimal.Zero, decimal.NewFromInt(45000), decimal.Zero, decimal.RequireFromString("0.15")},
			{decimal.NewFromInt(45000), decimal.NewFromInt(200000), decimal.NewFromInt(6750), decimal.RequireFromString("0.30")},
			{decimal.NewFromInt(200000), decimal.Zero, decimal.NewFromInt(53250), decimal.RequireFromString("0.45")},
		},
	}
}

// Brackets returns the schedule for a regime.
func (itc *IncomeTaxCalculator) Brackets(regime TaxRegime) []TaxBracket {
	if regime == RegimeBackpacker {
		return itc.Backpacker
	}
	return itc.Standard
}

// CalculateTax returns the annual tax owed on income under the given regime.
// Band upper bounds are inclusive.
func (itc *IncomeTaxCalculator) CalculateTax(income decimal.Decimal, regime TaxRegime) decimal.Decimal {
	brackets := itc.Brackets(regime)
	for _, b := range brackets {
		if b.openEnded() || income.LessThanOrEqual(b.Max) {
			return b.taxOn(income)
		}
	}
	if len(brackets) == 0 {
		return decimal.Zero
	}
	// Schedule without an open top band: extend the last bracket.
	return brackets[len(brackets)-1].taxOn(income)
}

var defaultTaxCalculator = NewIncomeTaxCalculator2024()

// CalculateIncomeTax evaluates the 2024-25 schedule for the regime.
func CalculateIncomeTax(income decimal.Decimal, regime TaxRegime) decimal.Decimal {
	return defaultTaxCalculator.CalculateTax(income, regime)
}
