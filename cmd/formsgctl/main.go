package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Primesh-FL/FormSG/common/logger"
	"github.com/Primesh-FL/FormSG/core/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:           "formsgctl",
	Short:         "Operational tooling for the FormSG API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(config.ServiceTypeCLI)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger.Setup(cfg)
		return nil
	},
}

func main() {
	rootCmd.AddCommand(newMigrateCmd(), newSmsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
