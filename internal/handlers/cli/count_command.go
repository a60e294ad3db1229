package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charfreq/charfreq/internal/core/ports"
	"github.com/charfreq/charfreq/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCountCommand creates the 'count' subcommand.
func NewCountCommand(
	tallyProvider ports.CharacterTallyProvider,
	sampleProvider ports.SampleProvider,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Tally character frequencies in the given input.",
		Long: `Tallies every character in the input and prints the most frequent ones.
The input is a file argument, --text, --sample, or stdin when none are given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountCmd(cmd, args, tallyProvider, sampleProvider)
		},
	}

	cmd.Flags().StringP("text", "t", "", "Tally this literal text instead of reading a file.")
	cmd.Flags().StringP("sample", "n", "", "Tally a bundled sample corpus by name (see 'charfreq samples').")
	cmd.Flags().IntP("top", "o", 0, "Maximum number of characters to show (default 20).")

	return cmd
}

// runCountCmd contains the core logic for the 'count' command.
func runCountCmd(
	cmd *cobra.Command,
	args []string,
	tallyProvider ports.CharacterTallyProvider,
	sampleProvider ports.SampleProvider,
) error {
	flags := parseCountCommandFlags(cmd)

	source, err := resolveSource(cmd, flags.text, flags.sampleName, args, sampleProvider)
	if err != nil {
		return err
	}

	tallySvc, err := tallyProvider(source)
	if err != nil {
		return fmt.Errorf("could not tally characters: %w", err)
	}

	entries := tallySvc.Entries()
	if len(entries) == 0 {
		fmt.Println(ui.InfoColor("The input was empty; nothing to count."))
		fmt.Println(ui.DetailColor(fmt.Sprintf("(Source: %s)", tallySvc.SourceDetails())))
		return nil
	}

	shown := entries
	truncated := false
	if flags.top > 0 && len(entries) > flags.top {
		shown = entries[:flags.top]
		truncated = true
	}

	total := tallySvc.TotalCharacters()

	fmt.Println(ui.HeaderColor("Character Frequencies:"))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Character", "Count", "Share"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, e := range shown {
		table.Append([]string{formatChar(e.Char), strconv.Itoa(e.Count), percentOf(e.Count, total)})
	}
	table.Render()

	if truncated {
		fmt.Println(ui.WarningColor(fmt.Sprintf("Showing the top %d of %d distinct characters.", flags.top, len(entries))))
	}
	fmt.Println(ui.DetailColor(fmt.Sprintf("(Source: %s; %d characters, %d distinct)",
		tallySvc.SourceDetails(), total, tallySvc.DistinctCharacters())))
	return nil
}
