package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/kdewallet/kwallet-go/internal/configs"
	"github.com/kdewallet/kwallet-go/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Displays the configuration used by the entry commands, with defaults filled
in for anything the file does not set.

Examples:
  # Show the configuration
  kwallet config show

  # Output in JSON format
  kwallet config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config show command")
		ConfigLogger.Debugf("Flags: json=%t", configShowJSON)

		config, err := configs.LoadConfig()
		if err != nil {
			return reportedError{ConfigLogger.ErrorfAndReturn("Failed to load config: %w", err)}
		}

		if configShowJSON {
			output, err := json.MarshalIndent(config, "", "  ")
			if err != nil {
				return reportedError{ConfigLogger.ErrorfAndReturn("Failed to marshal config to JSON: %w", err)}
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return nil
		}

		outputConfigText(cmd, config)
		return nil
	},
}

// outputConfigText outputs the config in human-readable format.
func outputConfigText(cmd *cobra.Command, config *configs.Config) {
	out := cmd.OutOrStdout()
	source := configs.ConfigPath()
	if !configs.ConfigExists() {
		source = "defaults, no file at " + source
	}
	fmt.Fprintln(out, color.CyanString("Configuration")+" ("+source+"):")
	fmt.Fprintln(out)

	wallet := config.Client.Wallet
	if wallet == "" {
		wallet = ui.Muted.Sprint("local wallet")
	} else {
		wallet = color.GreenString(wallet)
	}

	fmt.Fprintf(out, "  %-12s %s\n", "App ID:", color.GreenString(config.Client.AppID))
	fmt.Fprintf(out, "  %-12s %s\n", "Wallet:", wallet)
	fmt.Fprintf(out, "  %-12s %s\n", "Folder:", color.GreenString(config.Client.Folder))
	fmt.Fprintln(out)
	fmt.Fprintln(out, color.CyanString("D-Bus:"))
	fmt.Fprintf(out, "  %-12s %s\n", "Service:", color.YellowString(config.DBus.Service))
	fmt.Fprintf(out, "  %-12s %s\n", "Path:", color.YellowString(config.DBus.Path))
	fmt.Fprintf(out, "  %-12s %s\n", "Interface:", color.YellowString(config.DBus.Interface))
}
