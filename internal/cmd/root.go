// Package cmd wires the respec CLI surface
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/respec/internal/log"
)

var (
	logLevel string
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "respec",
	Short: "Specification-driven implementation planner",
	Long: `respec turns extracted code specifications into an ordered implementation
strategy. It resolves declared and inferred dependencies between entities,
groups related work, synthesizes implementation steps with validation
criteria, repairs dependency cycles, and schedules everything into an
execution order that always respects the surviving dependencies.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := log.DefaultConfig()
		cfg.Level = log.ParseLevel(logLevel)
		log.SetDefaultLogger(log.New(cfg))
	},
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
