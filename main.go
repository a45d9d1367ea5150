package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/4yzz/text-encrypter/cmd"

	"github.com/fatih/color"
)

func main() {
	// An interrupt terminates immediately with the conventional 130 status.
	// Partially written output files are left as-is.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Fprintln(os.Stderr, color.YellowString("!")+" Cancelled.")
		os.Exit(130)
	}()

	// Failures are rendered by the command that hit them; here only the
	// exit status is decided.
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
