package cmd

import (
	"github.com/kdewallet/kwallet-go/internal/audit"
	"github.com/kdewallet/kwallet-go/internal/ui"
	"github.com/kdewallet/kwallet-go/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var entryShowReveal bool

func init() {
	entryShowCmd.Flags().BoolVar(&entryShowReveal, "reveal", false, "print values instead of masking them")
}

// resetEntryShowState resets the entry show command's global state for testing.
func resetEntryShowState() {
	entryShowReveal = false
}

var entryShowCmd = &cobra.Command{
	Use:   "show <entry>",
	Short: "List the fields of a wallet entry",
	Long: `Lists every field of a map entry in name order. Values are masked unless
--reveal is given.

Examples:
  # List field names
  kwallet entry show github

  # List fields with their values
  kwallet entry show github --reveal`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting entry show command")
		entry := args[0]

		spinner, cleanup := startSpinner("Reading from the wallet...", verbose)
		defer cleanup()

		conn, err := entryConnection()
		if err != nil {
			return reportedError{Logger.ErrorfAndReturn("Failed to load config: %w", err)}
		}

		result, err := workflows.Show(cmd.Context(), workflows.ShowOptions{
			Connection: conn,
			Entry:      entry,
		})
		if err != nil {
			Logger.Infof("Entry show failed: %v", err)
			spinner.FinalMSG = failureMessage(err, conn.Folder, entry, "")
			return reportedError{err}
		}
		Logger.Debugf("Entry %s has %d fields", entry, len(result.Record))

		audit.Log(audit.Entry{
			AppID:     conn.AppID,
			Operation: audit.OpShow,
			Wallet:    result.Wallet,
			Folder:    result.Folder,
			Entry:     result.Entry,
		})

		header := color.CyanString("Entry") + " " + ui.Entry.Sprint(result.Entry) +
			" (folder " + ui.Entry.Sprint(result.Folder) + ", wallet " + ui.Entry.Sprint(result.Wallet) + "):\n"
		if len(result.Record) == 0 {
			spinner.FinalMSG = header + "    " + ui.Muted.Sprint("no fields")
			return nil
		}

		Logger.Infof("Entry show command completed successfully")
		spinner.FinalMSG = header + ui.FormatRecord(result.Record, !entryShowReveal)
		return nil
	},
}
