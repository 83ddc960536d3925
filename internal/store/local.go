package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const DefaultResultsDir = "evaluation_results"

// EnsureResultsDir creates the results directory if needed and returns its
// path. An empty dir selects the default.
func EnsureResultsDir(dir string) (string, error) {
	if dir == "" {
		dir = DefaultResultsDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}
	return dir, nil
}

// WriteResult writes one named artifact into the results directory and
// returns its full path.
func WriteResult(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}
