package movies

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/mobileapp/internal/appcontext"
	"github.com/agentstation/mobileapp/internal/cmd/constants"
	"github.com/agentstation/mobileapp/pkg/save"
)

func newExportCommand(app appcontext.Interface) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as text, JSON or YAML",
		Long: `Export writes the loaded catalog to stdout or to --file. The format follows
-o: text (the backing file format, the default), json or yaml. Files are
written through a temp file and renamed into place.`,
		Example: `  mobileapp movies export > backup.txt
  mobileapp movies export -o json --file movies.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			requested := app.OutputFormat()
			if requested == constants.FormatTable {
				requested = constants.FormatText
			}
			format, err := save.ParseFormat(requested)
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			opts := []save.Option{save.WithFormat(format)}
			if file != "" {
				opts = append(opts, save.WithPath(file), save.WithAtomic(true))
			} else {
				opts = append(opts, save.WithWriter(cmd.OutOrStdout()))
			}
			if err := client.Save(opts...); err != nil {
				return err
			}

			if file != "" {
				app.Logger().Info().Str("path", file).Str("format", format.String()).Msg("Catalog exported")
				_, err = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d movies to %s\n", len(client.Entries()), file)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "write to this file instead of stdout")
	return cmd
}
