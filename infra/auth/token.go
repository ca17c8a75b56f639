package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// TokenProvider supplies a bearer token for backend requests.
// An empty token means the request is sent anonymously.
type TokenProvider interface {
	AccessToken() (string, error)
}

// FileTokenProvider reads a bearer token from a file on disk.
type FileTokenProvider struct {
	path string
}

// NewFileTokenProvider creates a TokenProvider that reads from the given file path.
// An empty path yields an anonymous provider.
func NewFileTokenProvider(path string) *FileTokenProvider {
	return &FileTokenProvider{path: path}
}

// AccessToken reads and returns the token, trimming whitespace.
// The file is re-read on every call so a refreshed token is picked up.
func (f *FileTokenProvider) AccessToken() (string, error) {
	if f.path == "" {
		return "", nil
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("token file %s does not exist", f.path)
		}
		return "", fmt.Errorf("reading token from %s: %w", f.path, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", f.path)
	}

	return token, nil
}
