package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/swingpay/fifo-calculator/internal/domain"
)

// decimalValue adapts a decimal.Decimal to a command-line flag.
type decimalValue struct {
	d *decimal.Decimal
}

func newDecimalValue(def string, p *decimal.Decimal) *decimalValue {
	*p = decimal.RequireFromString(def)
	return &decimalValue{d: p}
}

func (v *decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v *decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (v *decimalValue) Type() string { return "decimal" }

// jobFlags are the flags shared by the hourly and salary commands.
type jobFlags struct {
	name       string
	swing      string
	backpacker bool
	loan       bool
	super      bool
	superRate  decimal.Decimal
	superHours decimal.Decimal
}

func (f *jobFlags) register(cmd *cobra.Command, withHours bool) {
	fl := cmd.Flags()
	fl.StringVar(&f.name, "name", "", "label shown in the report")
	fl.StringVarP(&f.swing, "swing", "s", "8/6", "swing roster name (see 'swingpay swings')")
	fl.BoolVar(&f.backpacker, "backpacker", false, "use working holiday maker tax rates")
	fl.BoolVar(&f.loan, "loan", false, "include study loan repayments")
	fl.BoolVar(&f.super, "super", false, "include employer super contributions")
	fl.Var(newDecimalValue("11.5", &f.superRate), "super-rate", "super contribution rate in percent")
	if withHours {
		fl.Var(newDecimalValue("0", &f.superHours), "super-hours", "ordinary hours per day counted for super (0 = 8)")
	}
}

// job builds a job of the given pay type from the flags. Setting --super-rate or
// --super-hours elects super without --super.
func (f *jobFlags) job(cmd *cobra.Command, payType domain.PayType) domain.Job {
	job := domain.Job{
		Name:        f.name,
		PayType:     payType,
		Swing:       f.swing,
		Backpacker:  f.backpacker,
		HasLoanDebt: f.loan,
	}
	fl := cmd.Flags()
	if f.super || fl.Changed("super-rate") || fl.Changed("super-hours") {
		job.Retirement = &domain.RetirementElection{
			Enabled:     true,
			RatePercent: f.superRate,
			HoursPerDay: f.superHours,
		}
	}
	return job
}
