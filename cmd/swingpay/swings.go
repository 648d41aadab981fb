package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/swingpay/fifo-calculator/internal/calculation"
	"github.com/swingpay/fifo-calculator/internal/config"
	"github.com/swingpay/fifo-calculator/internal/domain"
	"github.com/swingpay/fifo-calculator/internal/output"
)

func newSwingsCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "swings",
		Short: "List the known swing rosters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := domain.DefaultSwingCatalog()
			if configPath != "" {
				cfg, err := config.NewInputParser().LoadFromFile(configPath)
				if err != nil {
					return err
				}
				if catalog, err = cfg.Catalog(); err != nil {
					return err
				}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SWING\tDAYS ON\tDAYS OFF\tCYCLE\tSWINGS/YEAR\tWORK DAYS/MONTH\t")
			for _, sp := range catalog {
				geo := calculation.CalculateSwingGeometry(sp)
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\t\n",
					sp.Name, sp.DaysOn, sp.DaysOff, geo.CycleLength,
					output.FormatNumber(geo.CyclesPerYear), output.FormatNumber(geo.WorkingDaysPerMonth))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "also list custom swings from this comparison file")
	return cmd
}
