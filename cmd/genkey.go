package cmd

import (
	"os"

	"github.com/4yzz/text-encrypter/internal/ui"
	"github.com/4yzz/text-encrypter/internal/workflows"

	"github.com/spf13/cobra"
)

var genkeyOut string

func init() {
	genkeyCmd.Flags().StringVarP(&genkeyOut, "out", "o", "", "where to save the key (default OS path)")
}

// resetGenkeyCommandState resets the genkey command's global state for testing.
func resetGenkeyCommandState() {
	genkeyOut = ""
	genkeyCmd.Flags().Lookup("out").Changed = false
}

var genkeyCmd = &cobra.Command{
	Use:   "genkey",
	Short: "Generate and save a new key",
	Long: `Generates a fresh random key and saves it to the given path, or to the
default per-user location when --out is omitted. An existing key at the
target path is overwritten, making tokens sealed under it unrecoverable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting genkey command")
		spinner, cleanup := startSpinner("Generating key...", verbose)
		defer cleanup()

		if genkeyOut != "" {
			if _, err := os.Stat(genkeyOut); err == nil {
				spinner.Stop()
				Logger.WarnfUser("Overwriting the existing key at %s - tokens sealed under it become unrecoverable", genkeyOut)
				spinner.Restart()
			}
		}

		result, err := workflows.GenerateKey(cmd.Context(), workflows.GenerateKeyOptions{
			Output: genkeyOut,
		})
		if err != nil {
			return finishWith(spinner, err)
		}

		Logger.Infof("Key generated at %s", result.Path)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Saved key to " + ui.Path.Sprint(result.Path)
		return nil
	},
}
