// Package version holds the version string printed by the built-in version
// subcommand. Consuming tools can override it at link time.
package version

// Version is the current version.
var Version = "0.2.0"
