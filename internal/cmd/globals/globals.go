// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import "github.com/spf13/cobra"

// Flags holds global common flags across all commands.
type Flags struct {
	Format  string
	Quiet   bool
	Verbose bool
	NoColor bool
}

// AddFlags adds the common output and verbosity flags to cmd as persistent flags.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.PersistentFlags().StringVarP(&flags.Format, "format", "o", "",
		"output format: table, json, yaml (export also accepts text)")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false,
		"minimal output (shortcut for --log-level=warn)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false,
		"verbose output (shortcut for --log-level=debug)")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false,
		"disable colored output")

	return flags
}

// Parse extracts global flags from the command hierarchy.
func Parse(cmd *cobra.Command) *Flags {
	format, _ := cmd.Flags().GetString("format")
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")

	return &Flags{
		Format:  format,
		Quiet:   quiet,
		Verbose: verbose,
		NoColor: noColor,
	}
}
