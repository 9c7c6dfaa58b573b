package solana

import (
	"fmt"
	"strconv"
	"strings"
)

// ExtractKeyword scans stdout line by line for the first line containing
// keyword and returns the last whitespace-separated field of that line.
// The boolean is false when no line matches or the match carries no
// extractable field. Callers must treat a missing marker as a failure
// even when the command exited zero.
func ExtractKeyword(stdout, keyword string) (string, bool) {
	for _, line := range strings.Split(stdout, "\n") {
		if !strings.Contains(line, keyword) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return "", false
		}
		return fields[len(fields)-1], true
	}
	return "", false
}

// ParseBalance extracts the leading SOL amount from `solana balance`
// output such as "12.5 SOL".
func ParseBalance(output string) (float64, error) {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty balance output")
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable balance %q: %w", fields[0], err)
	}
	return v, nil
}

// FormatAmount renders a whole-unit token amount for the spl-token CLI.
func FormatAmount(units uint64) string {
	return strconv.FormatUint(units, 10)
}
