package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

func DigestFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file %s: %w", path, err)
	}
	return "sha256:" + hex.EncodeToString(h.Sum(nil)), nil
}

// DigestInputs digests each named input file for the report's provenance
// block. Entries with an empty path are skipped.
func DigestInputs(paths map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(paths))
	for name, path := range paths {
		if path == "" {
			continue
		}
		d, err := DigestFile(path)
		if err != nil {
			return nil, err
		}
		out[name] = d
	}
	return out, nil
}
