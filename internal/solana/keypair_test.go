package solana

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/mr-tron/base58"
)

func testSecretKey() []byte {
	key := make([]byte, secretKeyLen)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestMaterializeKeypairFromJSONArray(t *testing.T) {
	raw, err := json.Marshal(func() []int {
		out := make([]int, secretKeyLen)
		for i := range out {
			out[i] = i
		}
		return out
	}())
	if err != nil {
		t.Fatal(err)
	}

	path, err := MaterializeKeypair(string(raw), t.TempDir())
	if err != nil {
		t.Fatalf("MaterializeKeypair error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, raw) {
		t.Errorf("file content = %s, want %s", data, raw)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("file mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestMaterializeKeypairFromBase58(t *testing.T) {
	encoded := base58.Encode(testSecretKey())

	path, err := MaterializeKeypair(encoded, t.TempDir())
	if err != nil {
		t.Fatalf("MaterializeKeypair error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var key []int
	if err := json.Unmarshal(data, &key); err != nil {
		t.Fatalf("written file is not a JSON array: %v", err)
	}
	if len(key) != secretKeyLen {
		t.Fatalf("key length = %d, want %d", len(key), secretKeyLen)
	}
	for i, b := range key {
		if b != i {
			t.Fatalf("key[%d] = %d, want %d", i, b, i)
		}
	}
}

func TestMaterializeKeypairRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"truncated array", "[1,2,3]"},
		{"malformed json", "[1,2,"},
		{"out of range element", `[300` + jsonTail(secretKeyLen-1) + `]`},
		{"wrong length base58", base58.Encode([]byte{1, 2, 3})},
		{"invalid base58", "0OIl not base58"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := MaterializeKeypair(tt.input, t.TempDir()); err == nil {
				t.Errorf("MaterializeKeypair(%q) succeeded", tt.input)
			}
		})
	}
}

// jsonTail builds ",0,0,...,0" with n zeros to pad array literals.
func jsonTail(n int) string {
	out := make([]byte, 0, n*2)
	for i := 0; i < n; i++ {
		out = append(out, ",0"...)
	}
	return string(out)
}
