package credential

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a bearer token from the file at path and returns its trimmed
// content.
//
// Path separators are normalised for the host filesystem, so config files
// can use forward slashes on every platform.
//
// Returns:
//   - string: The token with surrounding whitespace removed
//   - error: ErrMissing if the file does not exist, ErrUnreadable for any
//     other fault (wrapped with detail). Credential absence is not
//     transient; callers should not retry.
func Load(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrUnreadable)
	}

	native := filepath.FromSlash(path)

	data, err := os.ReadFile(native)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrMissing, native)
		}
		return "", fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrUnreadable, native)
	}

	return token, nil
}
