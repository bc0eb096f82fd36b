package main

import (
	"fmt"
	"os"

	"github.com/pehdsa/journey-native/cmd"
	"github.com/pehdsa/journey-native/internal/exitcode"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitcode.ExitCode(err))
	}
}
