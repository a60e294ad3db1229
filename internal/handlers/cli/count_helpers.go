package cli

import (
	"fmt"
	"strconv"

	"github.com/charfreq/charfreq/internal/adapters/filesource"
	"github.com/charfreq/charfreq/internal/adapters/readersource"
	"github.com/charfreq/charfreq/internal/adapters/samplecorpus"
	"github.com/charfreq/charfreq/internal/adapters/stringsource"
	"github.com/charfreq/charfreq/internal/core/ports"
	"github.com/spf13/cobra"
)

type countCommandFlags struct {
	text       string
	sampleName string
	top        int
}

func parseCountCommandFlags(cmd *cobra.Command) countCommandFlags {
	text, _ := cmd.Flags().GetString("text")
	sampleName, _ := cmd.Flags().GetString("sample")
	top, _ := cmd.Flags().GetInt("top")

	// Default values if not provided or zero
	if top <= 0 {
		top = 20
	}

	return countCommandFlags{
		text:       text,
		sampleName: sampleName,
		top:        top,
	}
}

// resolveSource picks the character source for a command invocation.
// Precedence: --text, then --sample, then a file argument, then stdin.
func resolveSource(
	cmd *cobra.Command,
	text string,
	sampleName string,
	fileArgs []string,
	sampleProvider ports.SampleProvider,
) (ports.CharacterSource, error) {
	if text != "" {
		return stringsource.New(text), nil
	}

	if sampleName != "" {
		if sampleProvider == nil {
			return nil, fmt.Errorf("no sample corpora are available")
		}
		samples, err := sampleProvider.GetSamples()
		if err != nil {
			return nil, fmt.Errorf("could not load sample corpora: %w", err)
		}
		s, ok := samplecorpus.Find(samples, sampleName)
		if !ok {
			return nil, fmt.Errorf("unknown sample %q (run 'charfreq samples' to list them)", sampleName)
		}
		return stringsource.NewNamed(s.Text, fmt.Sprintf("Sample: %s", s.Name)), nil
	}

	if len(fileArgs) > 0 {
		return filesource.New(fileArgs[0])
	}

	return readersource.New(cmd.InOrStdin(), "stdin")
}

// formatChar renders a character for display, making whitespace and other
// non-printable characters visible.
func formatChar(c rune) string {
	switch c {
	case ' ':
		return "' '"
	case '\t':
		return "\\t"
	case '\n':
		return "\\n"
	case '\r':
		return "\\r"
	}
	if !strconv.IsPrint(c) {
		return fmt.Sprintf("U+%04X", c)
	}
	return string(c)
}

// percentOf formats count as a percentage of total with one decimal place.
func percentOf(count, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(count)*100/float64(total))
}
