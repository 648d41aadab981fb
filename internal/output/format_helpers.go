package output

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/swingpay/fifo-calculator/internal/domain"
	money "github.com/swingpay/fifo-calculator/pkg/decimal"
)

// Placeholder renders an amount that does not apply, such as a suppressed contribution.
const Placeholder = "-"

// FormatCurrency formats a decimal as AUD currency with grouping and 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatNumber formats a count or ratio with grouping and at most 2 decimals.
func FormatNumber(amount decimal.Decimal) string { return money.FormatNumber(amount, 2) }

// FormatPercentage formats a decimal percentage value with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// signedCurrency prefixes positive differences with "+".
func signedCurrency(amount decimal.Decimal) string {
	if amount.Round(2).IsPositive() {
		return "+" + FormatCurrency(amount)
	}
	return FormatCurrency(amount)
}

func intToString(i int) string { return strconv.Itoa(i) }

type metricKind int

const (
	kindCurrency metricKind = iota
	kindNumber
	kindPercent
)

// metric is one derived value shown per job. ok is false when the value does not
// apply to the job.
type metric struct {
	Key   string
	Label string
	Kind  metricKind
	Value func(r *domain.JobResults) (v decimal.Decimal, ok bool)
}

func always(f func(r *domain.JobResults) decimal.Decimal) func(*domain.JobResults) (decimal.Decimal, bool) {
	return func(r *domain.JobResults) (decimal.Decimal, bool) { return f(r), true }
}

func loanOnly(f func(r *domain.JobResults) decimal.Decimal) func(*domain.JobResults) (decimal.Decimal, bool) {
	return func(r *domain.JobResults) (decimal.Decimal, bool) {
		if !r.HasLoanRepayment() {
			return decimal.Zero, false
		}
		return f(r), true
	}
}

func retirementOnly(f func(c *domain.RetirementContribution) decimal.Decimal) func(*domain.JobResults) (decimal.Decimal, bool) {
	return func(r *domain.JobResults) (decimal.Decimal, bool) {
		if r.Retirement == nil {
			return decimal.Zero, false
		}
		return f(r.Retirement), true
	}
}

// metrics lists every rendered value in display order.
var metrics = []metric{
	{"cycles_per_year", "Swings per year", kindNumber, always(func(r *domain.JobResults) decimal.Decimal { return r.CyclesPerYear })},
	{"working_days_per_month", "Working days per month", kindNumber, always(func(r *domain.JobResults) decimal.Decimal { return r.WorkingDaysPerMonth })},
	{"daily_pay", "Daily pay", kindCurrency, func(r *domain.JobResults) (decimal.Decimal, bool) {
		return r.DailyPay, r.PayType == domain.PayTypeHourly
	}},
	{"estimated_hourly", "Estimated hourly rate", kindCurrency, func(r *domain.JobResults) (decimal.Decimal, bool) {
		if r.EstimatedHourly == nil {
			return decimal.Zero, false
		}
		return *r.EstimatedHourly, true
	}},
	{"gross_swing", "Gross per swing", kindCurrency, always(func(r *domain.JobResults) decimal.Decimal { return r.GrossSwing })},
	{"swing_tax", "Tax per swing", kindCurrency, always(func(r *domain.JobResults) decimal.Decimal { return r.SwingTax })},
	{"swing_loan_repayment", "Loan repayment per swing", kindCurrency, loanOnly(func(r *domain.JobResults) decimal.Decimal { return r.SwingLoanRepayment })},
	{"net_swing", "Net per swing", kindCurrency, always(func(r *domain.JobResults) decimal.Decimal { return r.NetSwing })},
	{"gross_month", "Gross per month", kindCurrency, always(func(r *domain.JobResults) decimal.Decimal { return r.GrossMonth })},
	{"net_month", "Net per month", kindCurrency, always(func(r *domain.JobResults) decimal.Decimal { return r.NetMonth })},
	{"gross_year", "Gross per year", kindCurrency, always(func(r *domain.JobResults) decimal.Decimal { return r.GrossYear })},
	{"annual_tax", "Income tax per year", kindCurrency, always(func(r *domain.JobResults) decimal.Decimal { return r.AnnualTax })},
	{"annual_loan_repayment", "Loan repayment per year", kindCurrency, loanOnly(func(r *domain.JobResults) decimal.Decimal { return r.AnnualLoanRepayment })},
	{"net_year", "Net per year", kindCurrency, always(func(r *domain.JobResults) decimal.Decimal { return r.NetYear })},
	{"super_rate", "Super rate", kindPercent, retirementOnly(func(c *domain.RetirementContribution) decimal.Decimal { return c.RatePercent })},
	{"super_per_swing", "Super per swing", kindCurrency, retirementOnly(func(c *domain.RetirementContribution) decimal.Decimal { return c.PerSwing })},
	{"super_per_month", "Super per month", kindCurrency, retirementOnly(func(c *domain.RetirementContribution) decimal.Decimal { return c.PerMonth })},
	{"super_per_year", "Super per year", kindCurrency, retirementOnly(func(c *domain.RetirementContribution) decimal.Decimal { return c.PerYear })},
}

// display renders the metric for people; values that do not apply become Placeholder.
func (m metric) display(r *domain.JobResults) string {
	v, ok := m.Value(r)
	if !ok {
		return Placeholder
	}
	switch m.Kind {
	case kindNumber:
		return FormatNumber(v)
	case kindPercent:
		return FormatNumber(v) + "%"
	}
	return FormatCurrency(v)
}

// raw renders the metric for machines; values that do not apply are empty.
func (m metric) raw(r *domain.JobResults) string {
	v, ok := m.Value(r)
	if !ok {
		return ""
	}
	if m.Kind == kindCurrency {
		return v.StringFixed(2)
	}
	return v.Round(4).String()
}

// swingLabel renders "8/6 (14-day cycle)".
func swingLabel(r *domain.JobResults) string {
	return r.Swing + " (" + intToString(r.CycleLength) + "-day cycle)"
}
