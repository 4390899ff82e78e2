package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/respec/internal/spec"
	"github.com/felixgeelhaar/respec/internal/ux"
	"github.com/felixgeelhaar/respec/internal/version"
)

var (
	specPath     string
	specLockPath string
)

var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "Manage specification sets",
	Long: `Validate and fingerprint extracted specification sets.

Use 'respec spec validate' to check a specification set for structural problems.
Use 'respec spec lock' to fingerprint a specification set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var specValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a specification set",
	Long: `Validate a specification set for structural problems.

Duplicate entity names are fatal. Dependency names that match no entity in
the set are reported but do not fail validation; the planner drops them
with a warning.`,
	RunE: runSpecValidate,
}

var specLockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Fingerprint a specification set",
	Long: `Compute a content fingerprint over the specification set and write it to
the lock file. Strategies record this fingerprint so a strategy can always
be traced back to the exact specifications it was planned from.`,
	RunE: runSpecLock,
}

func runSpecValidate(cmd *cobra.Command, args []string) error {
	set, err := spec.LoadSet(specPath)
	if err != nil {
		return ux.EnhanceError(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Specification set is valid: %d entities\n", len(set.Specifications))
	for t, n := range set.CountByType() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %d\n", t, n)
	}

	unresolved := set.UnresolvedDependencies()
	for _, sp := range set.Specifications {
		for _, dep := range unresolved[sp.EntityName] {
			fmt.Fprintf(cmd.OutOrStdout(), "  ! %s depends on unknown entity %q\n", sp.EntityName, dep)
		}
	}
	return nil
}

func runSpecLock(cmd *cobra.Command, args []string) error {
	set, err := spec.LoadSet(specPath)
	if err != nil {
		return ux.EnhanceError(err)
	}

	lock, err := spec.GenerateSetLock(set, version.Version)
	if err != nil {
		return err
	}

	if err := spec.SaveSetLock(lock, specLockPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Lock written to %s (fingerprint %s)\n", specLockPath, lock.Fingerprint)
	return nil
}

func init() {
	defaults := ux.NewPathDefaults()

	specCmd.PersistentFlags().StringVar(&specPath, "specs", defaults.SpecsFile(), "specification set path")
	specLockCmd.Flags().StringVar(&specLockPath, "out", defaults.SpecsLockFile(), "lock file path")

	specCmd.AddCommand(specValidateCmd)
	specCmd.AddCommand(specLockCmd)
	rootCmd.AddCommand(specCmd)
}
