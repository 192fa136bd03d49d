package cmd

import (
	"github.com/kdewallet/kwallet-go/internal/audit"
	"github.com/kdewallet/kwallet-go/internal/workflows"

	"github.com/spf13/cobra"
)

var entryGetField string

func init() {
	entryGetCmd.Flags().StringVar(&entryGetField, "field", "", `record field to print (default "password")`)
}

// resetEntryGetState resets the entry get command's global state for testing.
func resetEntryGetState() {
	entryGetField = ""
}

var entryGetCmd = &cobra.Command{
	Use:   "get <entry>",
	Short: "Print one field of a wallet entry",
	Long: `Prints one field of a map entry. The value is written to stdout on its own
line so it can be captured by scripts.

Examples:
  # Print the password of an entry
  kwallet entry get github

  # Print another field
  kwallet entry get github --field user

  # Read from a specific folder
  kwallet entry get github --folder Work`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting entry get command")
		entry := args[0]
		field := fieldOrDefault(entryGetField)

		spinner, cleanup := startSpinner("Reading from the wallet...", verbose)
		defer cleanup()

		conn, err := entryConnection()
		if err != nil {
			return reportedError{Logger.ErrorfAndReturn("Failed to load config: %w", err)}
		}

		Logger.Debugf("Reading field %s of entry %s", field, entry)
		result, err := workflows.Get(cmd.Context(), workflows.GetOptions{
			Connection: conn,
			Entry:      entry,
			Field:      field,
		})
		if err != nil {
			Logger.Infof("Entry get failed: %v", err)
			spinner.FinalMSG = failureMessage(err, conn.Folder, entry, field)
			return reportedError{err}
		}

		audit.Log(audit.Entry{
			AppID:     conn.AppID,
			Operation: audit.OpGet,
			Wallet:    result.Wallet,
			Folder:    result.Folder,
			Entry:     result.Entry,
			Field:     result.Field,
		})

		Logger.Infof("Entry get command completed successfully")
		spinner.FinalMSG = result.Value
		return nil
	},
}
