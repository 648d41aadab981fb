package output

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/swingpay/fifo-calculator/internal/calculation"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = GenerateAssumptions(calculation.NewIncomeTaxCalculator2024(), calculation.NewLoanRepaymentCalculator2024())

// GenerateAssumptions describes the tables and calendar averages the projections use.
func GenerateAssumptions(tax *calculation.IncomeTaxCalculator, loan *calculation.LoanRepaymentCalculator) []string {
	return []string{
		fmt.Sprintf("Income tax: %s resident and working holiday maker rates, no offsets or Medicare levy", tax.Year),
		fmt.Sprintf("Study loan repayment: %s rates applied to total income above %s", loan.Year, FormatCurrency(loan.Threshold)),
		fmt.Sprintf("Calendar: %s days per year, %s days per month", calculation.AverageDaysPerYear, calculation.AverageDaysPerMonth),
		fmt.Sprintf("Hourly pay: %s-hour shifts on every working day", calculation.HoursPerShift),
		"Tax and loan repayment per swing: annual amount spread evenly across swings",
	}
}

var decimalHundred = decimal.NewFromInt(100)
