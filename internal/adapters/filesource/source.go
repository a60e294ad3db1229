package filesource

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charfreq/charfreq/internal/core/ports"
)

/*
Source provides characters read from a file on disk.
It implements the ports.CharacterSource interface.
*/
type Source struct {
	Path             string // Stores the absolute path
	sourceIdentifier string // Stores the user-friendly source identifier
}

// New creates a file-backed character source for the given path.
// The path is resolved to an absolute path up front so the identifier
// can be precomputed; the file itself is not opened until Characters
// is called.
func New(path string) (ports.CharacterSource, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", path, err)
	}

	return &Source{
		Path:             absPath,
		sourceIdentifier: fmt.Sprintf("File: %s", toUserFriendlyPath(absPath)),
	}, nil
}

// Characters reads the whole file and returns its contents decoded into
// runes. Read failures are this adapter's concern and are wrapped here;
// the counter core passes them through untouched.
func (s *Source) Characters() ([]rune, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", toUserFriendlyPath(s.Path), err)
	}
	return []rune(string(data)), nil
}

func (s *Source) SourceIdentifier() string {
	if s.sourceIdentifier != "" {
		return s.sourceIdentifier
	}
	// Fallback if the identifier was not precomputed (should not happen when
	// New is used).
	return fmt.Sprintf("File: %s", toUserFriendlyPath(s.Path))
}
