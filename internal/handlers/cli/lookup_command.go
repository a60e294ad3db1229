package cli

import (
	"fmt"

	"github.com/charfreq/charfreq/internal/core/ports"
	"github.com/charfreq/charfreq/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewLookupCommand creates the 'lookup' subcommand.
func NewLookupCommand(
	tallyProvider ports.CharacterTallyProvider,
	sampleProvider ports.SampleProvider,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <characters> [file]",
		Short: "Look up the counts of specific characters in the given input.",
		Long: `Tallies the input and reports the count of each character in <characters>.
Characters that never occur are reported with a count of 0; absence is a
valid answer, not an error.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookupCmd(cmd, args, tallyProvider, sampleProvider)
		},
	}

	cmd.Flags().StringP("text", "t", "", "Tally this literal text instead of reading a file.")
	cmd.Flags().StringP("sample", "n", "", "Tally a bundled sample corpus by name (see 'charfreq samples').")

	return cmd
}

func runLookupCmd(
	cmd *cobra.Command,
	args []string,
	tallyProvider ports.CharacterTallyProvider,
	sampleProvider ports.SampleProvider,
) error {
	queried := []rune(args[0])
	if len(queried) == 0 {
		return fmt.Errorf("no characters to look up")
	}

	text, _ := cmd.Flags().GetString("text")
	sampleName, _ := cmd.Flags().GetString("sample")

	source, err := resolveSource(cmd, text, sampleName, args[1:], sampleProvider)
	if err != nil {
		return err
	}

	tallySvc, err := tallyProvider(source)
	if err != nil {
		return fmt.Errorf("could not tally characters: %w", err)
	}

	fmt.Println(ui.HeaderColor("Character Counts:"))
	for _, c := range queried {
		count := tallySvc.Count(c)
		if count == 0 {
			fmt.Printf("  %s  %s\n", ui.ZeroColor(formatChar(c)), ui.ZeroColor("0"))
			continue
		}
		fmt.Printf("  %s  %s\n", ui.CharColor(formatChar(c)), ui.CountColor(count))
	}
	fmt.Println(ui.DetailColor(fmt.Sprintf("\n(Source: %s; %d characters total)",
		tallySvc.SourceDetails(), tallySvc.TotalCharacters())))
	return nil
}
