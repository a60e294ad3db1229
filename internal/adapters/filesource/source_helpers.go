package filesource

import (
	"os/user"
	"path/filepath"
	"strings"
)

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
// If the home directory cannot be determined or the path is not under home, it returns the original path.
func toUserFriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath // Fallback if user/home directory cannot be determined
	}
	homeDir := usr.HomeDir

	if !strings.HasPrefix(absPath, homeDir) {
		return absPath // Path is not under home directory
	}

	if absPath == homeDir {
		return "~"
	}

	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil {
		return absPath // Fallback in case of an unexpected error with Rel
	}
	return filepath.Join("~", relPath)
}
