package calculation

import (
	"github.com/shopspring/decimal"
)

// RepaymentBand applies Rate to the whole repayment income when income is at or
// below Max and above the previous band.
type RepaymentBand struct {
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// LoanRepaymentCalculator evaluates compulsory study-loan repayments.
// Rates are not marginal: crossing a band edge re-rates the entire income, so the
// repayment jumps at each threshold.
type LoanRepaymentCalculator struct {
	Year      string
	Threshold decimal.Decimal // no repayment below this income
	Bands     []RepaymentBand
	TopRate   decimal.Decimal // applies above the last band
}

// NewLoanRepaymentCalculator2024 creates a calculator with the 2024-25 HELP bands
func NewLoanRepaymentCalculator2024() *LoanRepaymentCalculator {
	band := func(max int64, rate string) RepaymentBand {
		return RepaymentBand{Max: decimal.NewFromInt(max), Rate: decimal.RequireFromString(rate)}
	}
	return &LoanRepaymentCalculator{
		Year:      "2024-25",
		Threshold: decimal.NewFromInt(54435),
		Bands: []RepaymentBand{
			band(62850, "0.01"),
			band(66620, "0.02"),
			band(70618, "0.025"),
			band(74855, "0.03"),
			band(79346, "0.035"),
			band(84107, "0.04"),
			band(89154, "0.045"),
			band(94503, "0.05"),
			band(100174, "0.055"),
			band(106185, "0.06"),
			band(112556, "0.065"),
			band(119309, "0.07"),
			band(126467, "0.075"),
			band(134056, "0.08"),
			band(142100, "0.085"),
			band(150626, "0.09"),
			band(159663, "0.095"),
		},
		TopRate: decimal.RequireFromString("0.10"),
	}
}

// Rate returns the repayment rate applicable to income.
func (lrc *LoanRepaymentCalculator) Rate(income decimal.Decimal) decimal.Decimal {
	if income.LessThan(lrc.Threshold) {
		return decimal.Zero
	}
	for _, b := range lrc.Bands {
		if income.LessThanOrEqual(b.Max) {
			return b.Rate
		}
	}
	return lrc.TopRate
}

// CalculateRepayment returns the annual compulsory repayment on income.
func (lrc *LoanRepaymentCalculator) CalculateRepayment(income decimal.Decimal) decimal.Decimal {
	return income.Mul(lrc.Rate(income))
}

var defaultLoanCalculator = NewLoanRepaymentCalculator2024()

// CalculateLoanRepayment evaluates the 2024-25 repayment schedule.
func CalculateLoanRepayment(income decimal.Decimal) decimal.Decimal {
	return defaultLoanCalculator.CalculateRepayment(income)
}
