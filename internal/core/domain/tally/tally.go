/*
Package tally defines the core domain entity for a character tally.
*/
package tally

import "sort"

/*
Entry represents a single character and its occurrence count.
This is a core domain entity.
*/
type Entry struct {
	Char  rune
	Count int
}

/*
Tally is an immutable mapping from character to occurrence count.
It is built once from an input sequence and never mutated afterwards,
so it is safe to share between concurrent readers.
*/
type Tally struct {
	counts map[rune]int
	total  int
}

// New builds a Tally from an ordered sequence of characters.
// Every character is counted; an empty (or nil) sequence yields an
// empty tally where every lookup returns zero.
func New(chars []rune) Tally {
	counts := make(map[rune]int)
	for _, c := range chars {
		counts[c]++
	}
	return Tally{counts: counts, total: len(chars)}
}

// Count returns how many times c occurred in the tallied input.
// A character that was never observed yields 0; absence is a valid
// zero-valued answer, not an error.
func (t Tally) Count(c rune) int {
	return t.counts[c]
}

// Total returns the total number of characters tallied.
func (t Tally) Total() int {
	return t.total
}

// Distinct returns the number of distinct characters observed.
func (t Tally) Distinct() int {
	return len(t.counts)
}

// Entries returns every observed character with its count, sorted by
// count descending and then by code point ascending. The backing map
// is unordered; sorting here keeps output stable for display and tests.
func (t Tally) Entries() []Entry {
	entries := make([]Entry, 0, len(t.counts))
	for c, n := range t.counts {
		entries = append(entries, Entry{Char: c, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Char < entries[j].Char
	})
	return entries
}
