package cmd

import (
	"fmt"
	"strings"

	"github.com/kdewallet/kwallet-go/internal/audit"
	"github.com/kdewallet/kwallet-go/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var entryLogLimit int

func init() {
	entryLogCmd.Flags().IntVarP(&entryLogLimit, "limit", "n", 20, "number of most recent operations to show (0 for all)")
}

// resetEntryLogState resets the entry log command's global state for testing.
func resetEntryLogState() {
	entryLogLimit = 20
}

var entryLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent entry operations",
	Long: `Shows the entries this command line read or wrote, newest last. Values are
never recorded.

Examples:
  # Show the last 20 operations
  kwallet entry log

  # Show everything
  kwallet entry log -n 0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting entry log command")
		Logger.Debugf("Reading audit log from %s", audit.LogPath())

		entries, err := audit.ReadEntries()
		if err != nil {
			return reportedError{Logger.ErrorfAndReturn("Failed to read audit log: %w", err)}
		}

		if len(entries) == 0 {
			fmt.Println(color.YellowString("⚠") + " No operations recorded yet.")
			return nil
		}

		for _, e := range audit.Last(entries, entryLogLimit) {
			location := strings.Join([]string{e.Wallet, e.Folder, e.Entry}, "/")
			line := fmt.Sprintf("%s  %-4s  %s", color.HiBlackString(e.Timestamp), e.Operation, ui.Entry.Sprint(location))
			if e.Field != "" {
				line += " " + ui.Field.Sprint(e.Field)
			}
			fmt.Println(line)
		}
		return nil
	},
}
