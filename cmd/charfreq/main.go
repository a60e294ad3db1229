package main

import (
	"fmt"
	"os"

	"github.com/charfreq/charfreq/internal/adapters/samplecorpus"
	"github.com/charfreq/charfreq/internal/core/services/charactertally"
	"github.com/charfreq/charfreq/internal/handlers/cli"
)

// Version is set at build time
var Version = "dev"

func main() {
	// sampleProvider can be nil if NewYAMLProvider returns an error;
	// the commands handle a nil provider.
	sampleProvider, err := samplecorpus.NewYAMLProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize sample corpus provider: %v. Continuing without samples.\n", err)
		sampleProvider = nil // Explicitly set to nil on error
	}

	rootCmd := cli.NewRootCommand(Version, charactertally.NewService, sampleProvider)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
