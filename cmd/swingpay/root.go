package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swingpay/fifo-calculator/internal/calculation"
	"github.com/swingpay/fifo-calculator/internal/config"
	"github.com/swingpay/fifo-calculator/internal/domain"
	"github.com/swingpay/fifo-calculator/internal/output"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	format    string
	outputDir string
	debug     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "swingpay",
		Short: "FIFO swing take-home pay calculator",
		Long: "swingpay projects gross pay, income tax, study loan repayments, super and net pay\n" +
			"per swing, month and year for fly-in fly-out rosters, and compares two jobs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if output.NormalizeFormatName(opts.format) == "all" {
				if opts.outputDir == "" {
					return fmt.Errorf("format all requires --output-dir")
				}
				return nil
			}
			_, err := output.LookupFormatter(opts.format)
			return err
		},
	}
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "console",
		"output format: "+strings.Join(output.AvailableFormatterNames(), ", ")+", or all with --output-dir")
	root.PersistentFlags().StringVarP(&opts.outputDir, "output-dir", "o", "", "write report files to this directory instead of stdout")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log the calculation breakdown to stderr")

	root.AddCommand(
		newHourlyCmd(opts),
		newSalaryCmd(opts),
		newCompareCmd(opts),
		newSwingsCmd(),
		newExampleCmd(),
	)
	return root
}

// logger returns a stderr logger whose debug lines follow --debug.
func (o *rootOptions) logger(cmd *cobra.Command) *calculation.WriterLogger {
	return calculation.NewWriterLogger(cmd.ErrOrStderr(), o.debug)
}

// run validates cfg, projects its jobs and writes the report.
func (o *rootOptions) run(cmd *cobra.Command, cfg *domain.Configuration) error {
	log := o.logger(cmd)
	parser := config.NewInputParser()
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return err
	}
	for i, job := range cfg.Jobs {
		if job.PayType == domain.PayTypeSalary && job.Retirement != nil && !job.Retirement.HoursPerDay.IsZero() {
			log.Warnf("%s: retirement hours per day only applies to hourly jobs and is ignored", job.Label(i))
		}
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}
	engine := calculation.NewCalculationEngineWithCatalog(catalog)
	engine.Debug = o.debug
	engine.SetLogger(log)

	log.Debugf("projecting %d job(s), format %s", len(cfg.Jobs), output.NormalizeFormatName(o.format))
	results, err := engine.CompareJobs(cmd.Context(), cfg.Jobs...)
	if err != nil {
		return err
	}

	if o.outputDir != "" {
		files, err := output.GenerateReport(results, o.format, o.outputDir)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
		}
		return nil
	}
	return output.RenderReport(cmd.OutOrStdout(), results, o.format)
}
