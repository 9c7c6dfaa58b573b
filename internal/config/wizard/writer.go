package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mintforge/mintforge/internal/config"
)

// WriteSession writes the session to a YAML file with a descriptive
// header, for later non-interactive runs with `mintforge create -c`.
func WriteSession(s *config.Session, outputPath string) error {
	yamlBytes, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func generateHeader(outputPath string) string {
	return fmt.Sprintf(`# mintforge session configuration
# Generated on %s
#
# Run the launch with:
#   mintforge create -c %s
#
# The wallet keypair itself is never stored here, only where to find it.
`, time.Now().Format("2006-01-02 15:04:05"), outputPath)
}
