package movies

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/mobileapp/internal/appcontext"
	"github.com/agentstation/mobileapp/internal/cmd/filter"
	"github.com/agentstation/mobileapp/internal/cmd/output"
	"github.com/agentstation/mobileapp/internal/cmd/table"
	"github.com/agentstation/mobileapp/pkg/movies"
)

// skippedLine is the structured form of a load diagnostic.
type skippedLine struct {
	Kind    string `json:"kind" yaml:"kind"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
	Message string `json:"message" yaml:"message"`
}

func newListCommand(app appcontext.Interface) *cobra.Command {
	var showSkipped bool
	movieFilter := &filter.MovieFilter{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every movie in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !showSkipped {
				if err := movieFilter.Validate(); err != nil {
					return err
				}
				return printEntries(out, app.OutputFormat(), movieFilter.Apply(client.Entries()))
			}

			diags := client.Diagnostics()
			f := output.DetectFormat(app.OutputFormat(), out)
			if f == output.FormatTable {
				return output.NewFormatter(f).Format(out, table.DiagnosticsToTableData(diags))
			}
			return output.NewFormatter(f).Format(out, toSkippedLines(diags))
		},
	}

	cmd.Flags().StringVar(&movieFilter.Genre, "genre", "", "only movies of this genre")
	cmd.Flags().IntVar(&movieFilter.MinYear, "from", 0, "only movies released in or after this year")
	cmd.Flags().IntVar(&movieFilter.MaxYear, "to", 0, "only movies released in or before this year")
	cmd.Flags().BoolVar(&showSkipped, "skipped", false, "show the lines skipped while loading instead of the movies")
	return cmd
}

func toSkippedLines(diags []movies.Diagnostic) []skippedLine {
	lines := make([]skippedLine, 0, len(diags))
	for _, d := range diags {
		lines = append(lines, skippedLine{
			Kind:    d.Kind.String(),
			Line:    d.Line,
			Text:    d.Text,
			Message: d.String(),
		})
	}
	return lines
}
