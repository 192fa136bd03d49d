package cmd

import (
	logger "github.com/kdewallet/kwallet-go/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	entryFolder string
	entryWallet string
	entryAppID  string

	// EntryCmd is the top-level entry command.
	EntryCmd = &cobra.Command{
		Use:   "entry",
		Short: "Read and write wallet entries",
		Long: `Provides commands for reading and writing map entries of a KDE wallet.

An entry is a small record of named fields stored in a wallet folder. The
"password" field is used when no field is given.

Examples:
  # Store a password for github
  kwallet entry set github

  # Read it back
  kwallet entry get github

  # Store and read another field of the same entry
  kwallet entry set github alice --field user
  kwallet entry get github --field user

  # List every field of the entry
  kwallet entry show github --reveal`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing entry command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	EntryCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	EntryCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	EntryCmd.PersistentFlags().StringVarP(&entryFolder, "folder", "f", "", "wallet folder holding the entry (default from config)")
	EntryCmd.PersistentFlags().StringVarP(&entryWallet, "wallet", "w", "", "wallet to open (default from config, else the local wallet)")
	EntryCmd.PersistentFlags().StringVar(&entryAppID, "app-id", "", "application id presented to the wallet daemon (default from config)")

	EntryCmd.AddCommand(entryGetCmd)
	EntryCmd.AddCommand(entrySetCmd)
	EntryCmd.AddCommand(entryShowCmd)
	EntryCmd.AddCommand(entryLogCmd)
}

// GetEntryCmd returns the EntryCmd for testing.
func GetEntryCmd() *cobra.Command {
	return EntryCmd
}

// ResetEntryState resets all entry command global variables to their default values for testing.
func ResetEntryState() {
	verbose = false
	debug = false
	entryFolder = ""
	entryWallet = ""
	entryAppID = ""
	resetEntryGetState()
	resetEntrySetState()
	resetEntryShowState()
	resetEntryLogState()
	resetEntryCobraFlagState()
}

// resetEntryCobraFlagState resets the flag state for all entry commands to prevent test pollution.
func resetEntryCobraFlagState() {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	EntryCmd.PersistentFlags().VisitAll(reset)
	for _, sub := range EntryCmd.Commands() {
		sub.Flags().VisitAll(reset)
	}
}
