package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/swingpay/fifo-calculator/internal/domain"
)

func newHourlyCmd(opts *rootOptions) *cobra.Command {
	var (
		flags jobFlags
		rate  decimal.Decimal
	)
	cmd := &cobra.Command{
		Use:   "hourly",
		Short: "Project take-home pay for an hourly rate on 12-hour shifts",
		Example: "  swingpay hourly --rate 55 --swing 2/1 --loan\n" +
			"  swingpay hourly --rate 48.50 --super --super-rate 11.5 --super-hours 8",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job := flags.job(cmd, domain.PayTypeHourly)
			job.HourlyRate = rate
			return opts.run(cmd, &domain.Configuration{Jobs: []domain.Job{job}})
		},
	}
	cmd.Flags().Var(newDecimalValue("0", &rate), "rate", "hourly rate in dollars")
	_ = cmd.MarkFlagRequired("rate")
	flags.register(cmd, true)
	return cmd
}

func newSalaryCmd(opts *rootOptions) *cobra.Command {
	var (
		flags  jobFlags
		salary decimal.Decimal
	)
	cmd := &cobra.Command{
		Use:     "salary",
		Short:   "Project take-home pay for a fixed annual salary",
		Example: "  swingpay salary --salary 150000 --swing 2/2 --super",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job := flags.job(cmd, domain.PayTypeSalary)
			job.AnnualSalary = salary
			return opts.run(cmd, &domain.Configuration{Jobs: []domain.Job{job}})
		},
	}
	cmd.Flags().Var(newDecimalValue("0", &salary), "salary", "annual salary in dollars")
	_ = cmd.MarkFlagRequired("salary")
	flags.register(cmd, false)
	return cmd
}
