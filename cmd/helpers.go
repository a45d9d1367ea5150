package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	terrors "github.com/4yzz/text-encrypter/internal/errors"
	"github.com/4yzz/text-encrypter/internal/ui"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// startSpinner creates a spinner with the given message and returns it with
// a cleanup function. The cleanup stops the spinner and prints any FinalMSG
// with a guaranteed trailing newline.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		// Ensure the final message ends with a newline, and clear FinalMSG
		// so s.Stop() doesn't print it a second time.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// finishWith renders a failure on the spinner and propagates it for the
// exit status. This is the single place failure kinds become user-facing
// messages.
func finishWith(s *spinner.Spinner, err error) error {
	s.FinalMSG = failureMessage(err)
	return err
}

func failureMessage(err error) string {
	cross := ui.Error.Sprint("✗") + " "
	hint := ui.Info.Sprint("→") + " "

	switch {
	case errors.Is(err, terrors.ErrKeyNotFound):
		return cross + err.Error() + "\n" +
			hint + "Check the path passed to " + ui.Code.Sprint("--key") +
			", or run " + ui.Code.Sprint("text-encrypter genkey")
	case errors.Is(err, terrors.ErrKeyCorrupt):
		return cross + err.Error() + "\n" +
			hint + "Generate a fresh key with " + ui.Code.Sprint("text-encrypter genkey")
	case errors.Is(err, terrors.ErrSourceNotFound):
		return cross + err.Error()
	case errors.Is(err, terrors.ErrDecryptionFailed):
		return cross + "Failed to decrypt: the token is corrupted or was sealed with a different key"
	case errors.Is(err, terrors.ErrEncodingFailed):
		return cross + "Decrypted, but the payload is not valid text\n" +
			hint + "Use " + ui.Code.Sprint("decrypt --file") + " for binary payloads"
	default:
		return cross + err.Error()
	}
}

// keyProvisionNotice reports that a key was silently created, so the user
// knows durable secret material now exists on disk.
func keyProvisionNotice(path string) string {
	return color.YellowString("!") + " No key found. Generated a new one at " + ui.Path.Sprint(path) + "\n"
}
