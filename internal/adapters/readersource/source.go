package readersource

import (
	"fmt"
	"io"

	"github.com/charfreq/charfreq/internal/core/ports"
)

// Source implements the CharacterSource interface over an io.Reader,
// typically stdin. The reader is consumed on the first Characters call;
// a second call sees whatever the reader has left, which for a drained
// stream is nothing.
type Source struct {
	reader io.Reader
	label  string
}

// New creates a reader-backed character source. label is the
// human-readable name used in the source identifier (e.g. "stdin").
func New(r io.Reader, label string) (ports.CharacterSource, error) {
	if r == nil {
		return nil, fmt.Errorf("reader cannot be nil")
	}
	if label == "" {
		label = "stream"
	}
	return &Source{reader: r, label: label}, nil
}

// Characters drains the reader and returns its contents decoded into runes.
func (s *Source) Characters() ([]rune, error) {
	data, err := io.ReadAll(s.reader)
	if err != nil {
		return nil, fmt.Errorf("reading from %s: %w", s.label, err)
	}
	return []rune(string(data)), nil
}

// SourceIdentifier implements the ports.CharacterSource interface.
func (s *Source) SourceIdentifier() string {
	return fmt.Sprintf("Stream: %s", s.label)
}
