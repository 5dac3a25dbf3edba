// Package users provides account management commands.
package users

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/mobileapp/internal/appcontext"
	"github.com/agentstation/mobileapp/pkg/logging"
)

// NewCommand creates the users command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		GroupID: "management",
		Aliases: []string{"user"},
		Short:   "Manage accounts and per-user folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newRegisterCommand(app))
	cmd.AddCommand(newBootstrapCommand(app))

	return cmd
}

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

func newRegisterCommand(app appcontext.Interface) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create an account and its user folder",
		Long: `Register appends the account to the credentials file and creates the user
folder with its history files. Usernames must be unique.`,
		Example: `  mobileapp users register alice --password secret`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			if err := client.Register(commandContext(cmd, app), args[0], password); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s.\n", args[0])
			return err
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newBootstrapCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap <username>",
		Short: "Create the user folder and empty history files",
		Long: `Bootstrap creates <users-dir>/<username>/ with its log, calculation, game
and search history files. Existing files are left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			dir, err := client.Bootstrap(commandContext(cmd, app), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), dir)
			return err
		},
	}
}
