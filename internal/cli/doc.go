// Package cli wires together the Cobra command tree for the ghgists binary.
//
// It defines the root command and its subcommands (gists, config, version),
// binds flags, reads configuration, configures logging, and returns
// deterministic exit codes.
package cli
