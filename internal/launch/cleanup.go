package launch

import (
	"fmt"
	"os"
)

// Cleanup removes the temporary files a run produced: the metadata
// document and, for pasted keypairs, the materialized keypair file.
// Missing files are not errors, so calling it repeatedly is safe.
func Cleanup(paths ...string) error {
	var firstErr error
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to remove %s: %w", path, err)
			}
		}
	}
	return firstErr
}
