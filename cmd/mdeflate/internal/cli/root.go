// Package cli implements the mdeflate command-line driver: "prog {c|d} in
// out" per the core spec's §6.4. None of the compression logic lives here;
// this is purely argument parsing and structured logging around the
// blockio package.
package cli

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var verbose bool

// Execute runs the root command. Exit codes follow §6.4: 0 on success, 1 on
// I/O or argument errors (the caller in main.go maps a returned error to
// os.Exit(1)).
func Execute() error {
	root := &cobra.Command{
		Use:           "mdeflate",
		Short:         "mdeflate block codec driver",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	flags := root.PersistentFlags()
	bindGlobalFlags(flags)

	root.AddCommand(newCompressCmd())
	root.AddCommand(newDecompressCmd())

	return root.Execute()
}

// bindGlobalFlags registers flags shared by every subcommand directly
// against the underlying pflag.FlagSet, the way cobra commands are wired in
// larger CLIs that need flag types (counts, durations) cobra doesn't
// special-case itself.
func bindGlobalFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
