package cmd

import (
	"fmt"

	logger "github.com/4yzz/text-encrypter/internal/logging"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	keyPath string
	Logger  logger.Logger

	rootCmd = &cobra.Command{
		Use:   "text-encrypter",
		Short: "Encrypt or decrypt text or files with a single shared key",
		Long: `text-encrypter locks and unlocks text strings or whole files using
symmetric authenticated encryption (fernet tokens).

The key lives in a single file. Without --key, the default per-user
location is used, and a key is generated there on first use.

Usage:
  text-encrypter <command> [flags]

Available Commands:
  genkey     Generate and save a new key
  encrypt    Encrypt a text string or a file
  decrypt    Decrypt a token or an encrypted file
  version    Show version

Run 'text-encrypter help <command>' for more details on a specific command.
`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing command with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewColorFigure("text-encrypter", "small", "cyan", true)
			banner.Print()
			fmt.Println()
			fmt.Printf("Run %s to see available commands.\n", color.YellowString("text-encrypter --help"))
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	rootCmd.PersistentFlags().StringVarP(&keyPath, "key", "k", "", "path to key file (optional)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(genkeyCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
}

// Execute runs the root command. Failures have already been rendered by the
// command that hit them; callers only need the error for the exit status.
func Execute() error {
	return rootCmd.Execute()
}

// Helper functions for testing

// GetRootCmd returns the root command for testing.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	keyPath = ""
	resetGenkeyCommandState()
	resetEncryptCommandState()
	resetDecryptCommandState()
}
