package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHeaderCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "header <line>",
		Short: "Parse a single header line",
		Long: `Parse one "Name: Value" header line and print its classified name and value.

Examples:
  reqline header 'Accept: audio/*; q=0.2, audio/basic'
  reqline header 'X-Custom:  value  ' -f yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.parser.ParseHeader(args[0])
			if err != nil {
				return fmt.Errorf("parse header: %w", err)
			}
			return render(cmd.OutOrStdout(), a.cfg.Format, newHeaderView(h))
		},
	}
}
