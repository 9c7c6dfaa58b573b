package solana

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mr-tron/base58"
)

// secretKeyLen is the byte length of an ed25519 secret key as the solana
// CLI stores it (seed plus public key).
const secretKeyLen = 64

// tempKeypairName is the file name used for pasted keypair material.
const tempKeypairName = "mintforge_wallet_keypair.json"

// MaterializeKeypair writes pasted keypair material to a private file in
// dir (os.TempDir when empty) in the JSON byte-array format the solana
// CLI reads, and returns the file path.
//
// Accepted inputs: the JSON array form itself, or a base58-encoded
// 64-byte secret key.
func MaterializeKeypair(input, dir string) (string, error) {
	data, err := normalizeKeypair(strings.TrimSpace(input))
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, tempKeypairName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write keypair file: %w", err)
	}
	return path, nil
}

func normalizeKeypair(input string) ([]byte, error) {
	if input == "" {
		return nil, fmt.Errorf("keypair input is empty")
	}

	// json.Marshal would base64-encode a []byte, so the array form is
	// handled as []int throughout to preserve the CLI's file format.
	if strings.HasPrefix(input, "[") {
		var key []int
		if err := json.Unmarshal([]byte(input), &key); err != nil {
			return nil, fmt.Errorf("keypair is not a valid JSON byte array: %w", err)
		}
		if len(key) != secretKeyLen {
			return nil, fmt.Errorf("keypair array has %d bytes, want %d", len(key), secretKeyLen)
		}
		for i, b := range key {
			if b < 0 || b > 255 {
				return nil, fmt.Errorf("keypair array element %d out of byte range: %d", i, b)
			}
		}
		return marshalKey(key)
	}

	decoded, err := base58.Decode(input)
	if err != nil {
		return nil, fmt.Errorf("keypair is not valid base58: %w", err)
	}
	if len(decoded) != secretKeyLen {
		return nil, fmt.Errorf("decoded keypair has %d bytes, want %d", len(decoded), secretKeyLen)
	}
	key := make([]int, len(decoded))
	for i, b := range decoded {
		key[i] = int(b)
	}
	return marshalKey(key)
}

func marshalKey(key []int) ([]byte, error) {
	out, err := json.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("failed to encode keypair: %w", err)
	}
	return out, nil
}
