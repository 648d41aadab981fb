package calculation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/swingpay/fifo-calculator/internal/domain"
)

// CalculationEngine orchestrates swing pay projections.
//
// Every projection is a pure function of its input and the engine's tables; the
// engine holds no per-call state and may be shared between goroutines. Numeric
// inputs are not validated here: negative rates or salaries, rates above 100% and
// similar produce arithmetic results without meaning. Validation happens at the
// config boundary (see config.InputParser.ValidateJob).
type CalculationEngine struct {
	Catalog  domain.SwingCatalog
	TaxCalc  *IncomeTaxCalculator
	LoanCalc *LoanRepaymentCalculator
	Debug    bool // log a per-projection breakdown at debug level
	Logger   Logger
}

// NewCalculationEngine creates an engine with the default swing catalog and 2024-25 tables.
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithCatalog(domain.DefaultSwingCatalog())
}

// NewCalculationEngineWithCatalog creates an engine that resolves swings against catalog.
func NewCalculationEngineWithCatalog(catalog domain.SwingCatalog) *CalculationEngine {
	return &CalculationEngine{
		Catalog:  catalog,
		TaxCalc:  NewIncomeTaxCalculator2024(),
		LoanCalc: NewLoanRepaymentCalculator2024(),
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// ProjectHourly projects take-home pay for an hourly rate on a 12-hour shift.
// An unknown swing returns an error wrapping domain.ErrUnknownSwing and no result.
func (ce *CalculationEngine) ProjectHourly(in domain.HourlyInput) (*domain.JobResults, error) {
	sp, err := ce.swing(in.Swing)
	if err != nil {
		return nil, fmt.Errorf("hourly projection: %w", err)
	}
	geo := CalculateSwingGeometry(sp)

	dailyPay := in.RatePerHour.Mul(HoursPerShift)
	grossSwing := dailyPay.Mul(decimal.NewFromInt(int64(sp.DaysOn)))
	annualPay := grossSwing.Mul(geo.CyclesPerYear)

	results := ce.assemble(sp, geo, domain.PayTypeHourly, in.Backpacker, in.HasLoanDebt, annualPay, grossSwing)
	results.DailyPay = dailyPay

	var hoursPerDay decimal.Decimal
	if in.Retirement != nil {
		hoursPerDay = in.Retirement.HoursPerDay
	}
	base := HourlyRetirementBase(in.RatePerHour, hoursPerDay, sp.DaysOn, geo.CyclesPerYear)
	results.Retirement = CalculateRetirementContribution(base, geo.CyclesPerYear, in.Retirement)

	ce.logBreakdown(results)
	return results, nil
}

// ProjectSalary projects take-home pay for a fixed annual salary. The swing pay is
// derived backward from the annual figure and an hourly equivalent is inferred
// from the same 12-hour shift assumption.
func (ce *CalculationEngine) ProjectSalary(in domain.SalaryInput) (*domain.JobResults, error) {
	sp, err := ce.swing(in.Swing)
	if err != nil {
		return nil, fmt.Errorf("salary projection: %w", err)
	}
	geo := CalculateSwingGeometry(sp)

	annualPay := in.AnnualSalary
	grossSwing := annualPay.Div(geo.CyclesPerYear)

	results := ce.assemble(sp, geo, domain.PayTypeSalary, in.Backpacker, in.HasLoanDebt, annualPay, grossSwing)

	hoursPerYear := decimal.NewFromInt(int64(sp.DaysOn)).Mul(HoursPerShift).Mul(geo.CyclesPerYear)
	estimatedHourly := annualPay.Div(hoursPerYear)
	results.EstimatedHourly = &estimatedHourly

	// Salaried workers have no ordinary-hours cap; the whole salary is the base.
	results.Retirement = CalculateRetirementContribution(annualPay, geo.CyclesPerYear, in.Retirement)

	ce.logBreakdown(results)
	return results, nil
}

// swing resolves name against the catalog and rejects patterns that cannot be
// projected, such as a caller-built entry with no days on.
func (ce *CalculationEngine) swing(name string) (domain.SwingPattern, error) {
	sp, err := ce.Catalog.Lookup(name)
	if err != nil {
		return domain.SwingPattern{}, err
	}
	if err := sp.Validate(); err != nil {
		return domain.SwingPattern{}, err
	}
	return sp, nil
}

// Project dispatches a job to the projection matching its pay type.
func (ce *CalculationEngine) Project(job domain.Job) (*domain.JobResults, error) {
	switch job.PayType {
	case domain.PayTypeHourly:
		return ce.ProjectHourly(job.HourlyInput())
	case domain.PayTypeSalary:
		return ce.ProjectSalary(job.SalaryInput())
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPayType, job.PayType)
	}
}

// assemble fills the fields shared by both projection variants. Tax and loan
// repayment are assessed on the annual figure and spread evenly over the cycles in
// a year; they are not re-evaluated on the smaller per-swing amount.
func (ce *CalculationEngine) assemble(sp domain.SwingPattern, geo SwingGeometry, payType domain.PayType, backpacker, hasLoanDebt bool, annualPay, grossSwing decimal.Decimal) *domain.JobResults {
	regime := RegimeFor(backpacker)
	annualTax := ce.TaxCalc.CalculateTax(annualPay, regime)

	annualLoan := decimal.Zero
	if hasLoanDebt {
		annualLoan = ce.LoanCalc.CalculateRepayment(annualPay)
	}

	netYear := annualPay.Sub(annualTax).Sub(annualLoan)
	swingTax := annualTax.Div(geo.CyclesPerYear)
	swingLoan := annualLoan.Div(geo.CyclesPerYear)

	return &domain.JobResults{
		Swing:               sp.Name,
		PayType:             payType,
		TaxRegime:           regime.String(),
		CycleLength:         geo.CycleLength,
		CyclesPerYear:       geo.CyclesPerYear,
		CyclesPerMonth:      geo.CyclesPerMonth,
		WorkingDaysPerMonth: geo.WorkingDaysPerMonth,
		GrossSwing:          grossSwing,
		NetSwing:            grossSwing.Sub(swingTax).Sub(swingLoan),
		GrossMonth:          annualPay.Div(MonthsPerYear),
		NetMonth:            netYear.Div(MonthsPerYear),
		GrossYear:           annualPay,
		NetYear:             netYear,
		AnnualTax:           annualTax,
		SwingTax:            swingTax,
		AnnualLoanRepayment: annualLoan,
		SwingLoanRepayment:  swingLoan,
	}
}

func (ce *CalculationEngine) logBreakdown(r *domain.JobResults) {
	if !ce.Debug {
		return
	}
	// One call per projection keeps concurrent breakdowns from interleaving.
	var b strings.Builder
	fmt.Fprintf(&b, "SWING PAY BREAKDOWN (%s, %s, %s tax):\n", r.Swing, r.PayType, r.TaxRegime)
	fmt.Fprintf(&b, "  Cycles per year:      %s\n", r.CyclesPerYear.StringFixed(4))
	fmt.Fprintf(&b, "  Gross per swing:      $%s\n", r.GrossSwing.StringFixed(2))
	fmt.Fprintf(&b, "  Gross per year:       $%s\n", r.GrossYear.StringFixed(2))
	fmt.Fprintf(&b, "  Income tax:           $%s\n", r.AnnualTax.StringFixed(2))
	fmt.Fprintf(&b, "  Loan repayment:       $%s\n", r.AnnualLoanRepayment.StringFixed(2))
	fmt.Fprintf(&b, "  Net per year:         $%s\n", r.NetYear.StringFixed(2))
	fmt.Fprintf(&b, "  Net per swing:        $%s", r.NetSwing.StringFixed(2))
	if r.Retirement != nil {
		fmt.Fprintf(&b, "\n  Super (%s%%):          $%s per year", r.Retirement.RatePercent.String(), r.Retirement.PerYear.StringFixed(2))
	}
	ce.Logger.Debugf("%s", b.String())
}
