package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reqline version %s\n", a.version)
			fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", a.buildTime)
		},
	}
}
