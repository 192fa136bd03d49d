package cmd

import (
	"github.com/kdewallet/kwallet-go/internal/audit"
	"github.com/kdewallet/kwallet-go/internal/ui"
	"github.com/kdewallet/kwallet-go/internal/utils"
	"github.com/kdewallet/kwallet-go/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var entrySetField string

func init() {
	entrySetCmd.Flags().StringVar(&entrySetField, "field", "", `record field to set (default "password")`)
}

// resetEntrySetState resets the entry set command's global state for testing.
func resetEntrySetState() {
	entrySetField = ""
}

var entrySetCmd = &cobra.Command{
	Use:   "set <entry> [value]",
	Short: "Store one field of a wallet entry",
	Long: `Stores one field of a map entry, creating the entry and its folder if needed.
Other fields of the entry are kept.

The value is taken from the argument if given. Otherwise it is prompted for
without echo when stdin is a terminal, or read from stdin. One trailing line
ending is removed from piped input.

A value passed as an argument may end up in your shell history.

Examples:
  # Prompt for the password of an entry
  kwallet entry set github

  # Set another field from an argument
  kwallet entry set github alice --field user

  # Pipe a value in
  pass show github | kwallet entry set github`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting entry set command")
		entry := args[0]
		field := fieldOrDefault(entrySetField)

		value, err := readEntryValue(args)
		if err != nil {
			return reportedError{Logger.ErrorfAndReturn("Failed to read value: %w", err)}
		}
		Logger.Debugf("Read value of %d bytes", len(value))

		spinner, cleanup := startSpinner("Writing to the wallet...", verbose)
		defer cleanup()

		conn, err := entryConnection()
		if err != nil {
			return reportedError{Logger.ErrorfAndReturn("Failed to load config: %w", err)}
		}

		Logger.Debugf("Writing field %s of entry %s", field, entry)
		result, err := workflows.Set(cmd.Context(), workflows.SetOptions{
			Connection: conn,
			Entry:      entry,
			Field:      field,
			Value:      value,
		})
		if err != nil {
			Logger.Infof("Entry set failed: %v", err)
			spinner.FinalMSG = failureMessage(err, conn.Folder, entry, field)
			return reportedError{err}
		}

		audit.Log(audit.Entry{
			AppID:     conn.AppID,
			Operation: audit.OpSet,
			Wallet:    result.Wallet,
			Folder:    result.Folder,
			Entry:     result.Entry,
			Field:     result.Field,
		})

		Logger.Infof("Entry set command completed successfully")
		spinner.FinalMSG = color.GreenString("✓") + " Stored " + ui.Field.Sprint(result.Field) +
			" of entry " + ui.Entry.Sprint(result.Entry) +
			" in folder " + ui.Entry.Sprint(result.Folder) +
			" of wallet " + ui.Entry.Sprint(result.Wallet)
		return nil
	},
}

// readEntryValue returns the value argument, or reads it interactively or from stdin.
func readEntryValue(args []string) (string, error) {
	if len(args) == 2 {
		return args[1], nil
	}

	if utils.IsTerminal() {
		Logger.Debugf("Prompting for value")
		return utils.ReadSecretConfirmed("Value: ", "Confirm value: ")
	}

	Logger.Debugf("Reading value from stdin")
	data, err := utils.ReadStdin()
	if err != nil {
		return "", err
	}
	return utils.TrimValue(data), nil
}
