package domain

import (
	"github.com/shopspring/decimal"
)

// RetirementContribution is the employer contribution for a projection. A nil
// *RetirementContribution means the contribution is suppressed.
type RetirementContribution struct {
	RatePercent decimal.Decimal `json:"rate_percent"`
	Base        decimal.Decimal `json:"base"`
	PerYear     decimal.Decimal `json:"per_year"`
	PerMonth    decimal.Decimal `json:"per_month"`
	PerSwing    decimal.Decimal `json:"per_swing"`
}

// JobResults holds every derived metric of a single pay projection. Amounts are
// unrounded; formatting belongs to the output layer.
type JobResults struct {
	Swing     string  `json:"swing"`
	PayType   PayType `json:"pay_type"`
	TaxRegime string  `json:"tax_regime"`

	// Swing geometry
	CycleLength         int             `json:"cycle_length"`
	CyclesPerYear       decimal.Decimal `json:"cycles_per_year"`
	CyclesPerMonth      decimal.Decimal `json:"cycles_per_month"`
	WorkingDaysPerMonth decimal.Decimal `json:"working_days_per_month"`

	// Gross and net pay
	DailyPay   decimal.Decimal `json:"daily_pay"`
	GrossSwing decimal.Decimal `json:"gross_swing"`
	NetSwing   decimal.Decimal `json:"net_swing"`
	GrossMonth decimal.Decimal `json:"gross_month"`
	NetMonth   decimal.Decimal `json:"net_month"`
	GrossYear  decimal.Decimal `json:"gross_year"`
	NetYear    decimal.Decimal `json:"net_year"`

	// Deductions
	AnnualTax           decimal.Decimal `json:"annual_tax"`
	SwingTax            decimal.Decimal `json:"swing_tax"`
	AnnualLoanRepayment decimal.Decimal `json:"annual_loan_repayment"`
	SwingLoanRepayment  decimal.Decimal `json:"swing_loan_repayment"`

	// Salary projections only
	EstimatedHourly *decimal.Decimal `json:"estimated_hourly,omitempty"`

	Retirement *RetirementContribution `json:"retirement,omitempty"`
}

// HasLoanRepayment reports whether a non-zero loan repayment applies.
func (r *JobResults) HasLoanRepayment() bool {
	return r.AnnualLoanRepayment.IsPositive()
}

// TotalAnnualDeductions returns tax plus loan repayment for the year.
func (r *JobResults) TotalAnnualDeductions() decimal.Decimal {
	return r.AnnualTax.Add(r.AnnualLoanRepayment)
}

// RetirementPerYear returns the annual contribution, or zero when suppressed.
func (r *JobResults) RetirementPerYear() decimal.Decimal {
	if r.Retirement == nil {
		return decimal.Zero
	}
	return r.Retirement.PerYear
}

// JobProjection pairs a job with its results.
type JobProjection struct {
	Name    string      `json:"name"`
	Job     Job         `json:"job"`
	Results *JobResults `json:"results"`
}

// ComparisonDelta is the second job minus the first.
type ComparisonDelta struct {
	GrossYear         decimal.Decimal `json:"gross_year"`
	NetSwing          decimal.Decimal `json:"net_swing"`
	NetMonth          decimal.Decimal `json:"net_month"`
	NetYear           decimal.Decimal `json:"net_year"`
	RetirementPerYear decimal.Decimal `json:"retirement_per_year"`
}

// JobComparison holds one or two projections in input order.
type JobComparison struct {
	Jobs  []JobProjection  `json:"jobs"`
	Delta *ComparisonDelta `json:"delta,omitempty"`
	// BetterJob is the index of the job with the higher net annual pay, -1 on a tie
	// or when only one job was projected.
	BetterJob int `json:"better_job"`
}
