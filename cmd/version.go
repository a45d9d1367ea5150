package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the program version reported by the version command.
const Version = "0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("text-encrypter v%s\n", Version)
	},
}
