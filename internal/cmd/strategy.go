package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/respec/internal/log"
	"github.com/felixgeelhaar/respec/internal/provider"
	"github.com/felixgeelhaar/respec/internal/render"
	"github.com/felixgeelhaar/respec/internal/spec"
	"github.com/felixgeelhaar/respec/internal/strategy"
	"github.com/felixgeelhaar/respec/internal/ux"
)

var (
	strategySpecsPath    string
	strategyOutPath      string
	strategyLockPath     string
	strategyRefine       bool
	strategyRefineModel  string
	strategyTimeout      time.Duration
	strategyOutputFormat string
	strategyVerbose      bool
)

var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Manage implementation strategies",
	Long: `Generate, validate, and inspect implementation strategies.

Use 'respec strategy create' to generate a strategy from a specification set.
Use 'respec strategy validate' to validate strategy structure.
Use 'respec strategy visualize' to print the execution order.
Use 'respec strategy explain' to inspect a single step.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var strategyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an implementation strategy from a specification set",
	Long: `Create an ordered implementation strategy from an extracted specification set.

The strategy lists every implementation step with its dependencies and an
execution order that respects them. Non-fatal problems in the input
(unresolvable dependency names, dependency cycles) are repaired and surface
as warnings on the strategy.`,
	RunE: runStrategyCreate,
}

var strategyValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate strategy structure and dependencies",
	Long: `Validate an existing strategy file for structural correctness.

Checks:
- Step ids are unique
- All referenced steps exist
- The execution order covers every step exactly once
- No step is scheduled before one of its prerequisites`,
	RunE: runStrategyValidate,
}

var strategyVisualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Print the strategy execution order",
	Long: `Print the strategy's steps in execution order with their dependencies,
warnings, and a summary. Use --verbose to include expected outputs and
validation criteria per step.`,
	RunE: runStrategyVisualize,
}

var strategyExplainCmd = &cobra.Command{
	Use:   "explain <step-id>",
	Short: "Explain a single strategy step",
	Long: `Show everything known about one step: what it implements, its validation
criteria, what it depends on, and which steps depend on it.`,
	Args: cobra.ExactArgs(1),
	RunE: runStrategyExplain,
}

func runStrategyCreate(cmd *cobra.Command, args []string) error {
	logger := log.DefaultLogger()

	if err := ux.ValidateRequiredFile(strategySpecsPath, "Specification set", "respec extract (or place the file manually)"); err != nil {
		return err
	}

	set, err := spec.LoadSet(strategySpecsPath)
	if err != nil {
		return ux.EnhanceError(err)
	}

	opts := strategy.GenerateOptions{Logger: logger}

	if strategyRefine {
		refiner, err := provider.NewOpenAIRefiner(provider.OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   strategyRefineModel,
			Timeout: strategyTimeout,
		})
		if err != nil {
			return ux.EnhanceError(err)
		}
		opts.Refiner = refiner
		opts.RefineTimeout = strategyTimeout
	}

	if strategyLockPath != "" {
		lock, err := spec.LoadSetLock(strategyLockPath)
		if err != nil {
			return ux.EnhanceError(err)
		}
		opts.Fingerprint = lock.Fingerprint
	}

	s, err := strategy.Generate(cmd.Context(), set, opts)
	if err != nil {
		return ux.EnhanceError(err)
	}

	if err := strategy.SaveStrategy(s, strategyOutPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Strategy written to %s (%d steps, %d warnings)\n",
		strategyOutPath, len(s.Steps), len(s.Warnings))
	for _, w := range s.Warnings {
		fmt.Fprintf(cmd.OutOrStdout(), "  ! %s\n", w)
	}
	return nil
}

func runStrategyValidate(cmd *cobra.Command, args []string) error {
	s, err := strategy.LoadStrategy(strategyOutPath)
	if err != nil {
		return ux.EnhanceError(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Strategy is valid: %d steps, %d dependencies\n",
		len(s.Steps), dependencyCount(s))
	return nil
}

func runStrategyVisualize(cmd *cobra.Command, args []string) error {
	s, err := strategy.LoadStrategy(strategyOutPath)
	if err != nil {
		return ux.EnhanceError(err)
	}

	switch strategyOutputFormat {
	case "text", "":
		fmt.Fprint(cmd.OutOrStdout(), render.Strategy(s, render.Options{
			NoColor: noColor,
			Verbose: strategyVerbose,
		}))
		return nil
	default:
		formatter, err := ux.NewFormatter(strategyOutputFormat, &ux.FormatterOptions{
			Writer:  cmd.OutOrStdout(),
			NoColor: noColor,
		})
		if err != nil {
			return err
		}
		return formatter.Format(s)
	}
}

func runStrategyExplain(cmd *cobra.Command, args []string) error {
	s, err := strategy.LoadStrategy(strategyOutPath)
	if err != nil {
		return ux.EnhanceError(err)
	}

	out, err := render.Explain(s, args[0], render.Options{NoColor: noColor})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func dependencyCount(s *strategy.Strategy) int {
	n := 0
	for _, deps := range s.Dependencies {
		n += len(deps)
	}
	return n
}

func init() {
	defaults := ux.NewPathDefaults()

	strategyCmd.PersistentFlags().StringVar(&strategyOutPath, "strategy", defaults.StrategyFile(), "strategy file path")

	strategyCreateCmd.Flags().StringVar(&strategySpecsPath, "specs", defaults.SpecsFile(), "specification set to plan from")
	strategyCreateCmd.Flags().StringVar(&strategyLockPath, "lock", "", "specs lock file whose fingerprint is recorded in the strategy")
	strategyCreateCmd.Flags().BoolVar(&strategyRefine, "refine", false, "consult the refinement provider for ungrouped entities")
	strategyCreateCmd.Flags().StringVar(&strategyRefineModel, "refine-model", "", "refinement model override")
	strategyCreateCmd.Flags().DurationVar(&strategyTimeout, "refine-timeout", 30*time.Second, "refinement request timeout")

	strategyVisualizeCmd.Flags().StringVar(&strategyOutputFormat, "output", "text", "output format (text, json, yaml)")
	strategyVisualizeCmd.Flags().BoolVar(&strategyVerbose, "verbose", false, "include expected outputs and validation criteria")

	strategyCmd.AddCommand(strategyCreateCmd)
	strategyCmd.AddCommand(strategyValidateCmd)
	strategyCmd.AddCommand(strategyVisualizeCmd)
	strategyCmd.AddCommand(strategyExplainCmd)
	rootCmd.AddCommand(strategyCmd)
}
