package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/swingpay/fifo-calculator/internal/domain"
)

// Calendar averages used instead of date arithmetic. Cycles per year and per month
// are approximations and are not aligned to any real calendar.
var (
	AverageDaysPerMonth = decimal.RequireFromString("30.44")
	AverageDaysPerYear  = decimal.RequireFromString("365.25")
	HoursPerShift       = decimal.NewFromInt(12)
	MonthsPerYear       = decimal.NewFromInt(12)
)

// SwingGeometry describes how often a swing cycle repeats.
type SwingGeometry struct {
	CycleLength         int
	CyclesPerMonth      decimal.Decimal
	CyclesPerYear       decimal.Decimal
	WorkingDaysPerMonth decimal.Decimal
}

// CalculateSwingGeometry derives cycle counts from a swing pattern. The pattern
// must satisfy SwingPattern.Validate; the engine checks it before calling.
func CalculateSwingGeometry(sp domain.SwingPattern) SwingGeometry {
	cycle := decimal.NewFromInt(int64(sp.CycleLength()))
	perMonth := AverageDaysPerMonth.Div(cycle)
	return SwingGeometry{
		CycleLength:         sp.CycleLength(),
		CyclesPerMonth:      perMonth,
		CyclesPerYear:       AverageDaysPerYear.Div(cycle),
		WorkingDaysPerMonth: perMonth.Mul(decimal.NewFromInt(int64(sp.DaysOn))),
	}
}
