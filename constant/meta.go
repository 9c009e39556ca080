// Package constant defines immutable application-level identifiers.
package constant

const (
	// Boxkit is the canonical application identifier used for filesystem paths and CLI branding.
	Boxkit = "boxkit"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)
