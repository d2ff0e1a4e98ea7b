package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/award-audit/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "award-audit",
	Short: "Data quality audit for ISED innovation award extracts",
	Long:  "Merges the phase 1 and phase 2 award extracts, normalizes amounts, departments and innovator names, checks geography and dates, prints a quality report and writes a cleaned export.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
