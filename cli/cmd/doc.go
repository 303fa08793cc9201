// Package cmd provides the dlog subcommands. Each command receives the
// logger built by the CLI composition root as a kong binding.
package cmd

var (
	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)
