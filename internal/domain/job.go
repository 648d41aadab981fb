package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// PayType selects which projection variant a job uses.
type PayType string

const (
	PayTypeHourly PayType = "hourly"
	PayTypeSalary PayType = "salary"
)

// ErrUnknownPayType is returned for a job whose pay type is neither hourly nor salary.
var ErrUnknownPayType = errors.New("unknown pay type")

// Valid reports whether the pay type is one of the supported variants.
func (pt PayType) Valid() bool {
	return pt == PayTypeHourly || pt == PayTypeSalary
}

// RetirementElection describes an employer superannuation contribution.
type RetirementElection struct {
	Enabled     bool            `yaml:"enabled" json:"enabled"`
	RatePercent decimal.Decimal `yaml:"rate_percent" json:"rate_percent"`
	// HoursPerDay caps the hours counted toward the contribution base for hourly
	// workers. Zero means DefaultRetirementHoursPerDay.
	HoursPerDay decimal.Decimal `yaml:"hours_per_day,omitempty" json:"hours_per_day,omitempty"`
}

// DefaultRetirementHoursPerDay is the ordinary-time cap used when no hours are elected.
var DefaultRetirementHoursPerDay = decimal.NewFromInt(8)

// HourlyInput is the input to an hourly-rate projection. Numeric fields are expected
// to be validated by the caller.
type HourlyInput struct {
	RatePerHour decimal.Decimal
	Swing       string
	Backpacker  bool
	Retirement  *RetirementElection
	HasLoanDebt bool
}

// SalaryInput is the input to a fixed-salary projection.
type SalaryInput struct {
	AnnualSalary decimal.Decimal
	Swing        string
	Backpacker   bool
	Retirement   *RetirementElection
	HasLoanDebt  bool
}

// Job is a pay-type tagged job description as it appears in a comparison file.
type Job struct {
	Name         string              `yaml:"name" json:"name"`
	PayType      PayType             `yaml:"pay_type" json:"pay_type"`
	HourlyRate   decimal.Decimal     `yaml:"hourly_rate,omitempty" json:"hourly_rate,omitempty"`
	AnnualSalary decimal.Decimal     `yaml:"annual_salary,omitempty" json:"annual_salary,omitempty"`
	Swing        string              `yaml:"swing" json:"swing"`
	Backpacker   bool                `yaml:"backpacker" json:"backpacker"`
	HasLoanDebt  bool                `yaml:"has_loan_debt" json:"has_loan_debt"`
	Retirement   *RetirementElection `yaml:"retirement,omitempty" json:"retirement,omitempty"`
}

// HourlyInput converts the job into an hourly projection input.
func (j Job) HourlyInput() HourlyInput {
	return HourlyInput{
		RatePerHour: j.HourlyRate,
		Swing:       j.Swing,
		Backpacker:  j.Backpacker,
		Retirement:  j.Retirement,
		HasLoanDebt: j.HasLoanDebt,
	}
}

// SalaryInput converts the job into a salary projection input.
func (j Job) SalaryInput() SalaryInput {
	return SalaryInput{
		AnnualSalary: j.AnnualSalary,
		Swing:        j.Swing,
		Backpacker:   j.Backpacker,
		Retirement:   j.Retirement,
		HasLoanDebt:  j.HasLoanDebt,
	}
}

// Label returns the job name, or a positional fallback.
func (j Job) Label(index int) string {
	if j.Name != "" {
		return j.Name
	}
	return fmt.Sprintf("Job %d", index+1)
}

// Configuration is the on-disk comparison file.
type Configuration struct {
	Swings []SwingPattern `yaml:"swings,omitempty" json:"swings,omitempty"`
	Jobs   []Job          `yaml:"jobs" json:"jobs"`
}

// Catalog returns the default catalog extended with the configured swings.
func (c *Configuration) Catalog() (SwingCatalog, error) {
	return DefaultSwingCatalog().With(c.Swings...)
}
