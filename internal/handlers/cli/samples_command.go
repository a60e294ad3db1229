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

// NewSamplesCommand creates the 'samples' subcommand.
func NewSamplesCommand(sampleProvider ports.SampleProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "List the sample corpora bundled with charfreq.",
		Long:  `Displays the named sample texts that can be tallied with 'count --sample <name>'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSamplesCmd(cmd, args, sampleProvider)
		},
	}
	return cmd
}

// runSamplesCmd contains the core logic for the 'samples' command.
func runSamplesCmd(
	_ *cobra.Command,
	_ []string,
	sampleProvider ports.SampleProvider,
) error {
	samples, err := sampleProvider.GetSamples()
	if err != nil {
		return fmt.Errorf("could not list sample corpora: %w", err)
	}

	if len(samples) == 0 {
		fmt.Println(ui.InfoColor("No sample corpora are bundled with this build."))
		return nil
	}

	fmt.Println(ui.HeaderColor("Bundled Sample Corpora:"))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Description", "Length"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, s := range samples {
		table.Append([]string{s.Name, s.Description, strconv.Itoa(len([]rune(s.Text)))})
	}
	table.Render()

	fmt.Println(ui.DetailColor("Tally one with: charfreq count --sample <name>"))
	return nil
}
