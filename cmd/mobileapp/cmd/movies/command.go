// Package movies provides the non-interactive movie catalog commands.
package movies

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/mobileapp/internal/appcontext"
	"github.com/agentstation/mobileapp/internal/cmd/output"
	"github.com/agentstation/mobileapp/internal/cmd/table"
	"github.com/agentstation/mobileapp/pkg/logging"
	"github.com/agentstation/mobileapp/pkg/movies"
)

// NewCommand creates the movies command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "movies",
		GroupID: "core",
		Aliases: []string{"movie"},
		Short:   "Search, list, add and export catalog movies",
		Long: `Movies works on the catalog backing file without the interactive menu.

Available subcommands:
  list      - every movie, in file order
  search    - case-insensitive substring match on the name
  add       - append a movie and rewrite the backing file
  export    - write the catalog as text, JSON or YAML`,
		Example: `  mobileapp movies list
  mobileapp movies search matrix --user alice
  mobileapp movies add --name Dune --genre Sci-Fi --year 2021
  mobileapp movies export -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newSearchCommand(app))
	cmd.AddCommand(newAddCommand(app))
	cmd.AddCommand(newExportCommand(app))

	return cmd
}

// commandContext attaches the app logger to the command context.
func commandContext(cmd *cobra.Command, app appcontext.Interface) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithFields(logging.WithLogger(ctx, app.Logger()), map[string]any{
		"operation": cmd.CommandPath(),
		"format":    app.OutputFormat(),
	})
}

// printEntries renders entries as a table on terminals and JSON otherwise,
// unless a format was requested.
func printEntries(w io.Writer, format string, entries []movies.Entry) error {
	if entries == nil {
		entries = []movies.Entry{}
	}

	f := output.DetectFormat(format, w)
	if _, err := output.ParseFormat(string(f)); err != nil {
		return err
	}
	formatter := output.NewFormatter(f)
	if f == output.FormatTable {
		if len(entries) == 0 {
			_, err := fmt.Fprintln(w, "Movie not found!")
			return err
		}
		return formatter.Format(w, table.MoviesToTableData(entries))
	}
	return formatter.Format(w, entries)
}
