package testutil

import (
	"github.com/charfreq/charfreq/internal/core/ports"
)

// RecordingCharacterSource is a recording test double (spy) for
// ports.CharacterSource. It serves canned text and records how it was
// invoked, so tests can assert on the interaction itself — for example
// that the counter drains its source exactly once during construction —
// instead of intercepting anything at a global level.
type RecordingCharacterSource struct {
	// Text is the canned content returned by Characters.
	Text string
	// Err, if non-nil, is returned by Characters instead of Text.
	Err error
	// Identifier is returned by SourceIdentifier.
	Identifier string

	// CharactersCalls is the number of times Characters was invoked.
	CharactersCalls int
	// SourceIdentifierCalls is the number of times SourceIdentifier was invoked.
	SourceIdentifierCalls int
}

// Characters records the invocation and returns the canned text or error.
func (r *RecordingCharacterSource) Characters() ([]rune, error) {
	r.CharactersCalls++
	if r.Err != nil {
		return nil, r.Err
	}
	return []rune(r.Text), nil
}

// SourceIdentifier records the invocation and returns the canned identifier.
func (r *RecordingCharacterSource) SourceIdentifier() string {
	r.SourceIdentifierCalls++
	return r.Identifier
}

// Ensure RecordingCharacterSource implements the ports.CharacterSource interface.
var _ ports.CharacterSource = (*RecordingCharacterSource)(nil)
