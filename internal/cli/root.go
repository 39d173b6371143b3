package cli

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	reqhttp "github.com/shapestone/shape-reqline/pkg/http"
)

// app is the state shared by all subcommands of one root command.
type app struct {
	cfg       Config
	version   string
	buildTime string

	logger *slog.Logger
	parser *reqhttp.Parser
}

// NewRootCommand builds the reqline command tree with cfg as flag defaults.
func NewRootCommand(cfg Config, version, buildTime string) *cobra.Command {
	a := &app{cfg: cfg, version: version, buildTime: buildTime}

	root := &cobra.Command{
		Use:   "reqline",
		Short: "Parse raw HTTP/1.x request text.",
		Long: `reqline parses the request line and headers of a raw HTTP/1.x request
and prints the classified method, the request-target and every header.

Defaults can be set with REQLINE_* environment variables or a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return &configError{err: err}
			}
			if a.cfg.NoColor {
				color.NoColor = true
			}
			a.logger = setupLogger(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.LogFormat)
			a.parser = reqhttp.NewParser(reqhttp.WithLogger(a.logger))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfg.Format, "format", "f", cfg.Format, "output format: text, json, yaml or wire")
	pf.StringVar(&a.cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	pf.StringVar(&a.cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	pf.BoolVar(&a.cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")

	root.AddCommand(newParseCommand(a))
	root.AddCommand(newHeaderCommand(a))
	root.AddCommand(newVersionCommand(a))

	return root
}

// Execute runs the root command with os.Args and returns the process exit code.
func Execute(cfg Config, version, buildTime string) int {
	root := NewRootCommand(cfg, version, buildTime)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return ExitCode(err)
	}
	return ExitSuccess
}
