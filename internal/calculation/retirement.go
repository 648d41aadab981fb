package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/swingpay/fifo-calculator/internal/domain"
)

var decimalHundred = decimal.NewFromInt(100)

// CalculateRetirementContribution computes the employer superannuation contribution
// on base. It returns nil when the election is missing or disabled, has no rate,
// or yields no contribution on base, so reports never show a zero super amount.
func CalculateRetirementContribution(base, cyclesPerYear decimal.Decimal, election *domain.RetirementElection) *domain.RetirementContribution {
	if election == nil || !election.Enabled || !election.RatePercent.IsPositive() {
		return nil
	}
	perYear := base.Mul(election.RatePercent).Div(decimalHundred)
	if !perYear.IsPositive() {
		return nil
	}
	return &domain.RetirementContribution{
		RatePercent: election.RatePercent,
		Base:        base,
		PerYear:     perYear,
		PerMonth:    perYear.Div(MonthsPerYear),
		PerSwing:    perYear.Div(cyclesPerYear),
	}
}

// HourlyRetirementBase returns the annual ordinary-time earnings for an hourly
// worker: only hoursPerDay of each shift count toward the contribution base.
// A zero hoursPerDay uses domain.DefaultRetirementHoursPerDay.
func HourlyRetirementBase(ratePerHour, hoursPerDay decimal.Decimal, daysOn int, cyclesPerYear decimal.Decimal) decimal.Decimal {
	if !hoursPerDay.IsPositive() {
		hoursPerDay = domain.DefaultRetirementHoursPerDay
	}
	return ratePerHour.
		Mul(hoursPerDay).
		Mul(decimal.NewFromInt(int64(daysOn))).
		Mul(cyclesPerYear)
}
