package cli

import (
	"fmt"

	"github.com/charfreq/charfreq/internal/core/ports"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func NewRootCommand(
	version string,
	tallyProvider ports.CharacterTallyProvider,
	sampleProvider ports.SampleProvider,
) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "charfreq",
		Short: "charfreq tallies character frequencies in text.",
		Long: `charfreq reads text from a file, stdin, a literal string, or a bundled
sample corpus and reports how often each character occurs.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if tallyProvider == nil && (cmd.Name() == "count" || cmd.Name() == "lookup") {
				return fmt.Errorf("tally provider not initialized for command %s", cmd.Name())
			}
			if sampleProvider == nil && cmd.Name() == "samples" {
				return fmt.Errorf("sample provider not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewCountCommand(tallyProvider, sampleProvider))
	rootCmd.AddCommand(NewLookupCommand(tallyProvider, sampleProvider))
	rootCmd.AddCommand(NewSamplesCommand(sampleProvider))

	return rootCmd
}
