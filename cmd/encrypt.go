package cmd

import (
	"fmt"

	"github.com/4yzz/text-encrypter/internal/ui"
	"github.com/4yzz/text-encrypter/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	encryptText string
	encryptFile string
	encryptOut  string
)

func init() {
	encryptCmd.Flags().StringVarP(&encryptText, "text", "t", "", "text to encrypt")
	encryptCmd.Flags().StringVarP(&encryptFile, "file", "f", "", "path to file to encrypt")
	encryptCmd.Flags().StringVarP(&encryptOut, "out", "o", "", "output path (default: input path + .enc)")
}

// resetEncryptCommandState resets the encrypt command's global state for testing.
func resetEncryptCommandState() {
	encryptText = ""
	encryptFile = ""
	encryptOut = ""
	for _, name := range []string{"text", "file", "out"} {
		encryptCmd.Flags().Lookup(name).Changed = false
	}
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt a text string or a file",
	Long: `Seals text or a whole file into a fernet token under your key.

In text mode the token is printed; in file mode the token is written next
to the source file with a .enc suffix unless --out is given. The source
file is never modified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")

		textSet := cmd.Flags().Changed("text")
		fileSet := cmd.Flags().Changed("file")
		if textSet == fileSet {
			return Logger.ErrorfAndReturn("exactly one of %s or %s is required", ui.Code.Sprint("--text"), ui.Code.Sprint("--file"))
		}

		spinner, cleanup := startSpinner("Encrypting...", verbose)
		defer cleanup()

		if textSet {
			result, err := workflows.EncryptText(cmd.Context(), workflows.EncryptTextOptions{
				Text:    encryptText,
				KeyPath: keyPath,
			})
			if err != nil {
				return finishWith(spinner, err)
			}

			Logger.Infof("Sealed %d bytes of text with key at %s", len(encryptText), result.KeyPath)
			finalMessage := ""
			if result.KeyCreated {
				finalMessage += keyProvisionNotice(result.KeyPath)
			}
			finalMessage += ui.Success.Sprint("✓") + " Encrypted token (copy this safely):\n" +
				ui.Token.Sprint(result.Token)
			spinner.FinalMSG = finalMessage
			return nil
		}

		result, err := workflows.EncryptFile(cmd.Context(), workflows.EncryptFileOptions{
			File:    encryptFile,
			Output:  encryptOut,
			KeyPath: keyPath,
		})
		if err != nil {
			return finishWith(spinner, err)
		}

		Logger.Infof("Encrypted %s with key at %s", encryptFile, result.KeyPath)
		finalMessage := ""
		if result.KeyCreated {
			finalMessage += keyProvisionNotice(result.KeyPath)
		}
		finalMessage += fmt.Sprintf("%s Encrypted %s %s",
			ui.Success.Sprint("✓"), ui.Info.Sprint("→"), ui.Path.Sprint(result.OutputPath))
		spinner.FinalMSG = finalMessage
		return nil
	},
}
