package movies

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/mobileapp/internal/appcontext"
)

type addFlags struct {
	name  string
	genre string
	year  int
	user  string
}

func newAddCommand(app appcontext.Interface) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a movie and rewrite the backing file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			entry, err := client.AddMovie(commandContext(cmd, app), flags.user, flags.name, flags.genre, flags.year)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Movie '%s' added with id %d.\n", entry.Name, entry.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "", "movie name")
	cmd.Flags().StringVar(&flags.genre, "genre", "", "movie genre")
	cmd.Flags().IntVar(&flags.year, "year", 0, "release year")
	cmd.Flags().StringVar(&flags.user, "user", "", "record the addition in this user's log")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("genre")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
