package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "phoney",
		Short:         "Fake data generation API and tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file")

	cmd.AddCommand(
		newServeCmd(&configPath),
		newGenerateCmd(),
		newValidateCmd(),
		newProvidersCmd(),
	)
	return cmd
}
