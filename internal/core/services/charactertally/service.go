package charactertally

import (
	"github.com/charfreq/charfreq/internal/core/domain/tally"
	"github.com/charfreq/charfreq/internal/core/ports"
)

type service struct {
	tally         tally.Tally
	sourceDetails string
}

// NewService creates a character tally service from the given source.
// Construction is eager: the source is drained to completion exactly once,
// here, and the resulting tally is immutable for the life of the service.
// An empty source is valid and yields a tally where every lookup returns 0.
//
// It panics if source is nil. If the source's read fails, that error is
// returned as-is: the failure belongs to the collaborator, so it is neither
// caught nor wrapped here.
func NewService(source ports.CharacterSource) (ports.CharacterTallyService, error) {
	if source == nil {
		panic("characterSource cannot be nil")
	}

	chars, err := source.Characters()
	if err != nil {
		return nil, err
	}

	return &service{
		tally:         tally.New(chars),
		sourceDetails: source.SourceIdentifier(),
	}, nil
}

// Count returns the occurrence count for c, or 0 if c was never observed.
func (s *service) Count(c rune) int {
	return s.tally.Count(c)
}

// Entries returns all observed characters with their counts.
func (s *service) Entries() []tally.Entry {
	return s.tally.Entries()
}

// TotalCharacters returns the total number of characters tallied.
func (s *service) TotalCharacters() int {
	return s.tally.Total()
}

// DistinctCharacters returns the number of distinct characters observed.
func (s *service) DistinctCharacters() int {
	return s.tally.Distinct()
}

// SourceDetails describes where the tallied characters came from.
func (s *service) SourceDetails() string {
	return s.sourceDetails
}
