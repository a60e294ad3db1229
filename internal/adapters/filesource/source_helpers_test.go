package filesource

import (
	"os/user"
	"path/filepath"
	"testing"
)

func TestToUserFriendlyPath(t *testing.T) {
	currentUser, err := user.Current()
	if err != nil {
		t.Fatalf("Failed to get current user: %v", err)
	}
	homeDir := currentUser.HomeDir

	tests := []struct {
		name    string
		absPath string
		want    string
	}{
		{
			name:    "path under home becomes ~-relative",
			absPath: filepath.Join(homeDir, "notes", "input.txt"),
			want:    filepath.Join("~", "notes", "input.txt"),
		},
		{
			name:    "home itself becomes ~",
			absPath: homeDir,
			want:    "~",
		},
		{
			name:    "path outside home is returned unchanged",
			absPath: filepath.Join(string(filepath.Separator), "etc", "hosts"),
			want:    filepath.Join(string(filepath.Separator), "etc", "hosts"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toUserFriendlyPath(tt.absPath); got != tt.want {
				t.Errorf("toUserFriendlyPath(%q) = %q, want %q", tt.absPath, got, tt.want)
			}
		})
	}
}
