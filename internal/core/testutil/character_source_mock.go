package testutil

import (
	"github.com/charfreq/charfreq/internal/core/ports"
)

// MockCharacterSource is a mock implementation of the ports.CharacterSource interface.
type MockCharacterSource struct {
	CharactersFunc       func() ([]rune, error)
	SourceIdentifierFunc func() string
}

// Characters mocks the Characters method.
func (m *MockCharacterSource) Characters() ([]rune, error) {
	if m.CharactersFunc != nil {
		return m.CharactersFunc()
	}
	// Default behavior: an empty source. An empty sequence is valid input
	// for the counter, so this is a safe default for most tests.
	return nil, nil
}

// SourceIdentifier mocks the SourceIdentifier method.
func (m *MockCharacterSource) SourceIdentifier() string {
	if m.SourceIdentifierFunc != nil {
		return m.SourceIdentifierFunc()
	}
	// Default behavior: return an empty string.
	return ""
}

// Ensure MockCharacterSource implements the ports.CharacterSource interface.
var _ ports.CharacterSource = (*MockCharacterSource)(nil)
