package main

import (
	"github.com/spf13/cobra"
)

const appName = "puppy-growth"

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Puppy growth tracking and feeding service",
		Long: `puppy-growth registra el peso de cachorros, estima su peso adulto
y calcula raciones diarias a partir de guías de alimentación.

Sin subcomando levanta el servidor HTTP (igual que "serve").`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")

	cmd.AddCommand(serveCmd(&configPath))
	cmd.AddCommand(estimateCmd())

	return cmd
}
