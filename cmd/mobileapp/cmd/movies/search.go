package movies

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/mobileapp/internal/appcontext"
)

func newSearchCommand(app appcontext.Interface) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find movies whose name contains the query",
		Long: `Search matches the query against movie names, ignoring case. An empty query
matches every movie. With --user the outcome is appended to that user's
search log, which requires the user's folder to exist.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			results := client.Search(commandContext(cmd, app), user, args[0])
			return printEntries(cmd.OutOrStdout(), app.OutputFormat(), results)
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "record the search in this user's search log")
	return cmd
}
