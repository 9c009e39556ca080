// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these keys govern terminal output.
const (
	CliColored = "cli.colored"
)

// Iconography - these keys manage the visual rendering of status symbols.
const (
	IconsVariant = "icons.variant"
)

// Inline Mode - these keys set the defaults of the seq and text commands.
const (
	InlineJson      = "inline.json"
	InlineKeepGoing = "inline.keep_going"
)
