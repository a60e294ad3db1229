package ports

import "github.com/charfreq/charfreq/internal/core/domain/tally"

// CharacterTallyService defines the contract for querying a built tally.
// Implementations are immutable once constructed, so every method is
// free of side effects and safe for concurrent use.
type CharacterTallyService interface {
	// Count returns the occurrence count for c, or 0 if c was never observed.
	Count(c rune) int
	// Entries returns all observed characters with their counts, sorted by
	// count descending then code point ascending.
	Entries() []tally.Entry
	// TotalCharacters returns the total number of characters tallied.
	TotalCharacters() int
	// DistinctCharacters returns the number of distinct characters observed.
	DistinctCharacters() int
	// SourceDetails describes where the tallied characters came from.
	SourceDetails() string
}

// CharacterTallyProvider builds a CharacterTallyService by draining the given
// source. It lets handlers construct a counter per resolved input without
// depending on a concrete service implementation.
type CharacterTallyProvider func(source CharacterSource) (CharacterTallyService, error)
