package charactertally

import (
	"errors"
	"reflect"
	"testing"

	"github.com/charfreq/charfreq/internal/core/domain/tally"
	"github.com/charfreq/charfreq/internal/core/testutil"
)

func TestNewService(t *testing.T) {
	t.Run("success with a valid source", func(t *testing.T) {
		svc, err := NewService(&testutil.MockCharacterSource{})
		if err != nil {
			t.Fatalf("NewService() unexpected error = %v", err)
		}
		if svc == nil {
			t.Fatal("NewService() returned nil, expected a service instance")
		}
	})

	t.Run("nil source panics", func(t *testing.T) {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("NewService did not panic as expected")
			}
			panicMsg, ok := r.(string)
			if !ok {
				t.Fatalf("Panic recovery value is not a string: %T, value: %v", r, r)
			}
			if panicMsg != "characterSource cannot be nil" {
				t.Errorf("NewService panicked with wrong message. Got '%s', want 'characterSource cannot be nil'", panicMsg)
			}
		}()
		_, _ = NewService(nil)
	})
}

func TestNewService_PropagatesSourceErrorUnmodified(t *testing.T) {
	sourceErr := errors.New("underlying read failed")
	source := &testutil.MockCharacterSource{
		CharactersFunc: func() ([]rune, error) {
			return nil, sourceErr
		},
	}

	svc, err := NewService(source)
	if svc != nil {
		t.Errorf("NewService() = %v, want nil service on source failure", svc)
	}
	// The source's failure is its own concern: the service must return the
	// exact error value, neither wrapped nor replaced.
	if err != sourceErr {
		t.Errorf("NewService() error = %v, want the source's error value unchanged", err)
	}
}

func TestNewService_DrainsSourceExactlyOnce(t *testing.T) {
	source := &testutil.RecordingCharacterSource{Text: "fredfredfred"}

	svc, err := NewService(source)
	if err != nil {
		t.Fatalf("NewService() unexpected error = %v", err)
	}

	// Construction is eager: the source is read to completion during
	// NewService, and queries never touch it again.
	if source.CharactersCalls != 1 {
		t.Errorf("Characters called %d times during construction, want 1", source.CharactersCalls)
	}

	_ = svc.Count('f')
	_ = svc.Count('x')
	_ = svc.Entries()
	_ = svc.TotalCharacters()

	if source.CharactersCalls != 1 {
		t.Errorf("Characters called %d times after queries, want still 1", source.CharactersCalls)
	}
}

func TestService_Count(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantCounts map[rune]int
	}{
		{
			name: "fredfredfred scenario",
			text: "fredfredfred",
			wantCounts: map[rune]int{
				'f': 3, 'r': 3, 'e': 3, 'd': 3, 'x': 0,
			},
		},
		{
			name:       "empty source is valid and yields all zeroes",
			text:       "",
			wantCounts: map[rune]int{'a': 0, 'f': 0},
		},
		{
			name:       "case-sensitive counting",
			text:       "aAa",
			wantCounts: map[rune]int{'a': 2, 'A': 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &testutil.MockCharacterSource{
				CharactersFunc: func() ([]rune, error) {
					return []rune(tt.text), nil
				},
			}
			svc, err := NewService(source)
			if err != nil {
				t.Fatalf("NewService() unexpected error = %v", err)
			}
			for c, want := range tt.wantCounts {
				if got := svc.Count(c); got != want {
					t.Errorf("Count(%q) = %d, want %d", c, got, want)
				}
			}
		})
	}
}

func TestService_EntriesAndTotals(t *testing.T) {
	source := &testutil.RecordingCharacterSource{Text: "banana"}

	svc, err := NewService(source)
	if err != nil {
		t.Fatalf("NewService() unexpected error = %v", err)
	}

	wantEntries := []tally.Entry{
		{Char: 'a', Count: 3},
		{Char: 'n', Count: 2},
		{Char: 'b', Count: 1},
	}
	if got := svc.Entries(); !reflect.DeepEqual(got, wantEntries) {
		t.Errorf("Entries() = %v, want %v", got, wantEntries)
	}
	if got := svc.TotalCharacters(); got != 6 {
		t.Errorf("TotalCharacters() = %d, want 6", got)
	}
	if got := svc.DistinctCharacters(); got != 3 {
		t.Errorf("DistinctCharacters() = %d, want 3", got)
	}
}

func TestService_SourceDetails(t *testing.T) {
	source := &testutil.MockCharacterSource{
		SourceIdentifierFunc: func() string {
			return "File: ~/notes.txt"
		},
	}

	svc, err := NewService(source)
	if err != nil {
		t.Fatalf("NewService() unexpected error = %v", err)
	}
	if got := svc.SourceDetails(); got != "File: ~/notes.txt" {
		t.Errorf("SourceDetails() = %q, want %q", got, "File: ~/notes.txt")
	}
}
