package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/kdewallet/kwallet-go/cmd"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kwallet",
	Short: "kwallet - read and write KDE Wallet entries from the command line.",
	Long: `kwallet reads and writes map entries of the KDE Wallet over D-Bus.

Features:
  - Store passwords and other named fields in a wallet folder
  - Read single fields for use in scripts
  - Keep per-user defaults for the wallet, folder and daemon

Usage:
  kwallet <command> [flags]

Available Commands:
  entry      Read and write wallet entries
  config     Manage kwallet configuration

Run 'kwallet help <command>' for more details on a specific command.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewColorFigure("kwallet", "small", "cyan", true)
		banner.Print()
		fmt.Println()
		fmt.Println("Run 'kwallet --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.EntryCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !cmd.IsReported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}
