package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newParseCommand(a *app) *cobra.Command {
	var diagnostics, crlf bool

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse a raw request from a file or stdin",
		Long: `Parse the request line and headers of a raw request.

The request is read from the named file, or from stdin when no file or "-"
is given. Malformed header lines are skipped; --diagnostics lists them.

Examples:
  reqline parse request.txt
  printf 'GET / HTTP/1.1\r\nHost: example.com\r\n' | reqline parse -f json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if crlf {
				raw = normalizeCRLF(raw)
			}

			result, err := a.parser.ParseRequestDiagnostics(raw)
			if err != nil {
				return fmt.Errorf("parse request: %w", err)
			}

			a.logger.Debug("parsed request",
				slog.String("method", result.Request.Method.String()),
				slog.String("target", result.Request.Target),
				slog.Int("headers", len(result.Request.Headers)),
				slog.Int("dropped", len(result.Diagnostics)))

			view := newRequestView(result.Request)
			if diagnostics {
				view.Dropped = newDroppedViews(result.Diagnostics)
			}
			return render(cmd.OutOrStdout(), a.cfg.Format, view)
		},
	}

	cmd.Flags().BoolVar(&diagnostics, "diagnostics", a.cfg.Diagnostics, "also print header lines that were dropped")
	cmd.Flags().BoolVar(&crlf, "crlf", a.cfg.CRLF, "convert bare LF line endings to CRLF before parsing")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", &inputError{err: fmt.Errorf("read stdin: %w", err)}
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", &inputError{err: fmt.Errorf("read %s: %w", args[0], err)}
	}
	return string(data), nil
}

// normalizeCRLF turns every bare LF into CRLF, leaving existing CRLF pairs alone.
func normalizeCRLF(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}
