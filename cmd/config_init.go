package cmd

import (
	"fmt"

	"github.com/kdewallet/kwallet-go/internal/configs"
	"github.com/kdewallet/kwallet-go/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	configInitAppID     string
	configInitWallet    string
	configInitFolder    string
	configInitService   string
	configInitPath      string
	configInitInterface string
)

func init() {
	configInitCmd.Flags().StringVar(&configInitAppID, "app-id", "", "application id presented to the wallet daemon")
	configInitCmd.Flags().StringVar(&configInitWallet, "wallet", "", "wallet to open (empty for the local wallet)")
	configInitCmd.Flags().StringVar(&configInitFolder, "folder", "", "default wallet folder")
	configInitCmd.Flags().StringVar(&configInitService, "service", "", "D-Bus name of the wallet daemon")
	configInitCmd.Flags().StringVar(&configInitPath, "path", "", "D-Bus object path of the wallet daemon")
	configInitCmd.Flags().StringVar(&configInitInterface, "interface", "", "D-Bus interface of the wallet daemon")
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitAppID = ""
	configInitWallet = ""
	configInitFolder = ""
	configInitService = ""
	configInitPath = ""
	configInitInterface = ""
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the configuration file",
	Long: `Writes ~/.config/kwallet/config.toml. An existing file is loaded first, so
only the settings given as flags change.

Examples:
  # Write a config file with the defaults
  kwallet config init

  # Always use the "Work" wallet
  kwallet config init --wallet Work

  # Go back to the local wallet
  kwallet config init --wallet ""`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config init command")

		existed := configs.ConfigExists()
		config, err := configs.LoadConfig()
		if err != nil {
			return reportedError{ConfigLogger.ErrorfAndReturn("Failed to load existing config: %w", err)}
		}
		ConfigLogger.Debugf("Existing config found: %t", existed)

		flags := cmd.Flags()
		if flags.Changed("app-id") {
			config.Client.AppID = configInitAppID
		}
		if flags.Changed("wallet") {
			config.Client.Wallet = configInitWallet
		}
		if flags.Changed("folder") {
			config.Client.Folder = configInitFolder
		}
		if flags.Changed("service") {
			config.DBus.Service = configInitService
		}
		if flags.Changed("path") {
			config.DBus.Path = configInitPath
		}
		if flags.Changed("interface") {
			config.DBus.Interface = configInitInterface
		}

		ConfigLogger.Debugf("Saving config to %s", configs.ConfigPath())
		if err := configs.SaveConfig(config); err != nil {
			return reportedError{ConfigLogger.ErrorfAndReturn("Failed to save config: %w", err)}
		}

		verb := "created"
		if existed {
			verb = "updated"
		}
		ConfigLogger.Infof("Config init command completed successfully")
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, color.GreenString("✓")+" Configuration "+verb+" at "+ui.Entry.Sprint(configs.ConfigPath()))
		fmt.Fprintln(out, color.CyanString("→")+" Run "+ui.Code.Sprint("kwallet config show")+" to review it")
		return nil
	},
}
