package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/mobileapp/cmd/mobileapp/cmd/menu"
	"github.com/agentstation/mobileapp/internal/cmd/globals"
)

// Execute runs the mobileapp CLI with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.err)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
// Without a subcommand the interactive launcher runs.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "mobileapp",
		Short:   "Menu launcher for a movie catalog, calculator, to-do list and guessing game",
		Version: a.version,
		Long: `mobileapp is a terminal launcher. After logging in or registering, a user can
search and extend a movie catalog, use a calculator, keep a to-do list and play
a number guessing game. Everything is stored in flat text files under the data
directory, with one folder of logs per user.

Run without a subcommand to start the interactive menu.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return menu.Run(cmd.Context(), a, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.mobileapp.yaml)")
	globals.AddFlags(rootCmd)
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding the catalog, credentials and user folders")

	rootCmd.SetVersionTemplate("mobileapp {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags := globals.Parse(cmd)
	logLevel := mustGetString(cmd, "log-level")
	dataDir := mustGetString(cmd, "data-dir")

	if configFile := mustGetString(cmd, "config"); configFile != "" {
		config, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		a.config = config
	}
	a.config.UpdateFromFlags(flags.Verbose, flags.Quiet, flags.NoColor, flags.Format, logLevel, dataDir)

	logger := NewLogger(a.config)
	a.logger = &logger

	a.logger.Debug().
		Str("config", a.config.ConfigFile).
		Str("data_dir", a.config.DataDir).
		Msg("Configuration loaded")
	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.CreateMenuCommand())
	rootCmd.AddCommand(a.CreateMoviesCommand())
	rootCmd.AddCommand(a.CreateUsersCommand())
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// ExitOnError prints err to stderr and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
