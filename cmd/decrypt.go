package cmd

import (
	"fmt"

	"github.com/4yzz/text-encrypter/internal/ui"
	"github.com/4yzz/text-encrypter/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	decryptToken string
	decryptFile  string
	decryptOut   string
)

func init() {
	decryptCmd.Flags().StringVarP(&decryptToken, "token", "t", "", "token to decrypt")
	decryptCmd.Flags().StringVarP(&decryptFile, "file", "f", "", "path to encrypted file")
	decryptCmd.Flags().StringVarP(&decryptOut, "out", "o", "", "output path (default: strip .enc, else append .dec)")
}

// resetDecryptCommandState resets the decrypt command's global state for testing.
func resetDecryptCommandState() {
	decryptToken = ""
	decryptFile = ""
	decryptOut = ""
	for _, name := range []string{"token", "file", "out"} {
		decryptCmd.Flags().Lookup(name).Changed = false
	}
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a token or an encrypted file",
	Long: `Opens a fernet token back into the original text or file contents.

In token mode the recovered text is printed. In file mode the recovered
bytes are written to --out if given; otherwise the output name strips a
trailing .enc, or appends .dec when the source never had one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")

		tokenSet := cmd.Flags().Changed("token")
		fileSet := cmd.Flags().Changed("file")
		if tokenSet == fileSet {
			return Logger.ErrorfAndReturn("exactly one of %s or %s is required", ui.Code.Sprint("--token"), ui.Code.Sprint("--file"))
		}

		spinner, cleanup := startSpinner("Decrypting...", verbose)
		defer cleanup()

		if tokenSet {
			result, err := workflows.DecryptText(cmd.Context(), workflows.DecryptTextOptions{
				Token:   decryptToken,
				KeyPath: keyPath,
			})
			if err != nil {
				return finishWith(spinner, err)
			}

			Logger.Infof("Opened token with key at %s", result.KeyPath)
			finalMessage := ""
			if result.KeyCreated {
				finalMessage += keyProvisionNotice(result.KeyPath)
			}
			finalMessage += ui.Success.Sprint("✓") + " Decrypted text:\n" + result.Text
			spinner.FinalMSG = finalMessage
			return nil
		}

		result, err := workflows.DecryptFile(cmd.Context(), workflows.DecryptFileOptions{
			File:    decryptFile,
			Output:  decryptOut,
			KeyPath: keyPath,
		})
		if err != nil {
			return finishWith(spinner, err)
		}

		Logger.Infof("Decrypted %s with key at %s", decryptFile, result.KeyPath)
		finalMessage := ""
		if result.KeyCreated {
			finalMessage += keyProvisionNotice(result.KeyPath)
		}
		finalMessage += fmt.Sprintf("%s Decrypted %s %s",
			ui.Success.Sprint("✓"), ui.Info.Sprint("→"), ui.Path.Sprint(result.OutputPath))
		spinner.FinalMSG = finalMessage
		return nil
	},
}
