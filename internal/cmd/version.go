package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/respec/internal/ux"
	"github.com/felixgeelhaar/respec/internal/version"
)

var (
	versionShort  bool
	versionFormat string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.GetInfo()

		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), info.Short())
			return nil
		}

		switch versionFormat {
		case "text", "":
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return nil
		default:
			formatter, err := ux.NewFormatter(versionFormat, &ux.FormatterOptions{
				Writer: cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			return formatter.Format(info)
		}
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version number")
	versionCmd.Flags().StringVar(&versionFormat, "output", "text", "output format (text, json, yaml)")
	rootCmd.AddCommand(versionCmd)
}
