package stringsource

import (
	"reflect"
	"strings"
	"testing"
)

func TestSource_Characters(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []rune
	}{
		{"plain text", "fredfredfred", []rune("fredfredfred")},
		{"empty text is a valid empty sequence", "", []rune{}},
		{"multi-byte text decodes per code point", "héllo 世界", []rune{'h', 'é', 'l', 'l', 'o', ' ', '世', '界'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := New(tt.text)
			got, err := source.Characters()
			if err != nil {
				t.Fatalf("Characters() unexpected error = %v", err)
			}
			if len(got) == 0 && len(tt.want) == 0 {
				return // both empty; []rune("") vs []rune{} representations are equivalent
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Characters() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSource_SourceIdentifier(t *testing.T) {
	t.Run("default identifier mentions byte length", func(t *testing.T) {
		source := New("abc")
		got := source.SourceIdentifier()
		if !strings.Contains(got, "in-memory") || !strings.Contains(got, "3 bytes") {
			t.Errorf("SourceIdentifier() = %q, want it to mention in-memory text and byte length", got)
		}
	})

	t.Run("named source uses its label", func(t *testing.T) {
		source := NewNamed("fredfredfred", "Sample: fred")
		if got := source.SourceIdentifier(); got != "Sample: fred" {
			t.Errorf("SourceIdentifier() = %q, want %q", got, "Sample: fred")
		}
	})
}
