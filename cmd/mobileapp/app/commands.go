package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/mobileapp/cmd/mobileapp/cmd/menu"
	"github.com/agentstation/mobileapp/cmd/mobileapp/cmd/movies"
	"github.com/agentstation/mobileapp/cmd/mobileapp/cmd/users"
	"github.com/agentstation/mobileapp/internal/cmd/constants"
	"github.com/agentstation/mobileapp/internal/cmd/output"
)

// CreateMenuCommand creates the interactive menu command.
func (a *App) CreateMenuCommand() *cobra.Command {
	return menu.NewCommand(a)
}

// CreateMoviesCommand creates the movies command with app dependencies.
func (a *App) CreateMoviesCommand() *cobra.Command {
	return movies.NewCommand(a)
}

// CreateUsersCommand creates the users command with app dependencies.
func (a *App) CreateUsersCommand() *cobra.Command {
	return users.NewCommand(a)
}

// versionInfo is the structured form of the version command output.
type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	BuiltBy   string `json:"built_by" yaml:"built_by"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		GroupID: "management",
		Short:   "Show version information",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo{
				Version:   a.Version(),
				Commit:    a.Commit(),
				Date:      a.Date(),
				BuiltBy:   a.BuiltBy(),
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			out := cmd.OutOrStdout()
			switch a.OutputFormat() {
			case constants.FormatJSON, constants.FormatYAML, constants.FormatTable:
				return output.NewFormatter(output.Format(a.OutputFormat())).Format(out, info)
			}

			fmt.Fprintf(out, "mobileapp version %s\n", info.Version)
			fmt.Fprintf(out, "commit: %s\n", info.Commit)
			fmt.Fprintf(out, "built: %s\n", info.Date)
			fmt.Fprintf(out, "built by: %s\n", info.BuiltBy)
			fmt.Fprintf(out, "go version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "platform: %s\n", info.Platform)
			return nil
		},
	}
}
