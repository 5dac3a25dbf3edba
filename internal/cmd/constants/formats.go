// Package constants provides shared constants for CLI commands.
package constants

// Output format constants used throughout the CLI.
const (
	// FormatTable is the default table output format.
	FormatTable = "table"

	// FormatJSON outputs data as JSON.
	FormatJSON = "json"

	// FormatYAML outputs data as YAML.
	FormatYAML = "yaml"

	// FormatText outputs the catalog backing file format.
	FormatText = "text"
)
