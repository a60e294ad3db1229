package stringsource

import (
	"fmt"

	"github.com/charfreq/charfreq/internal/core/ports"
)

// Source implements the CharacterSource interface for a literal
// in-memory piece of text.
type Source struct {
	text  string
	label string
}

// New creates a character source backed by the given text.
// Empty text is valid; it yields an empty character sequence.
func New(text string) ports.CharacterSource {
	return &Source{text: text}
}

// NewNamed creates a character source backed by the given text whose
// identifier is the given label instead of the generic in-memory one.
func NewNamed(text, label string) ports.CharacterSource {
	return &Source{text: text, label: label}
}

// Characters returns the text decoded into runes. It never fails.
func (s *Source) Characters() ([]rune, error) {
	return []rune(s.text), nil
}

// SourceIdentifier implements the ports.CharacterSource interface.
func (s *Source) SourceIdentifier() string {
	if s.label != "" {
		return s.label
	}
	return fmt.Sprintf("in-memory text (%d bytes)", len(s.text))
}
