package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swingpay/fifo-calculator/internal/config"
)

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare one or two jobs described in a YAML file",
		Long: "compare loads jobs (and optional custom swings) from a YAML file and projects\n" +
			"them side by side. Run 'swingpay example' for a starting file.",
		Example: "  swingpay compare --config jobs.yaml --format csv",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configPath)
			if err != nil {
				return err
			}
			opts.logger(cmd).Debugf("loaded %d job(s) and %d custom swing(s) from %s", len(cfg.Jobs), len(cfg.Swings), configPath)
			if err := opts.run(cmd, cfg); err != nil {
				return fmt.Errorf("compare %s: %w", configPath, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "comparison file (YAML)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
