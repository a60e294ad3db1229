package ports

// CharacterSource defines the contract for producing the characters to tally.
// It is the only collaborator the counter depends on; how the characters are
// obtained (in-memory text, a file, stdin) is the caller's concern.
type CharacterSource interface {
	// Characters returns the full ordered sequence of characters, read to
	// completion in a single call.
	Characters() ([]rune, error)
	// SourceIdentifier returns a human-readable description of where the
	// characters come from, for display purposes only.
	SourceIdentifier() string
}
