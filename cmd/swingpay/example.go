package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swingpay/fifo-calculator/internal/config"
	"github.com/swingpay/fifo-calculator/internal/output"
)

const defaultExampleFile = "swingpay_example.yaml"

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example two-job comparison file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultExampleFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := output.SaveConfiguration(config.NewInputParser().CreateExampleConfiguration(), path); err != nil {
				return fmt.Errorf("failed to write example configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", path)
			return nil
		},
	}
}
