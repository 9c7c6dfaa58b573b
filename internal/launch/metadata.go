package launch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mintforge/mintforge/internal/config"
)

// MetadataFileName is the metadata file written to the working directory
// before publication and removed during cleanup.
const MetadataFileName = "token_metadata.json"

// tokenMetadata is the off-chain metadata document the metaplex CLI
// uploads.
type tokenMetadata struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
}

// WriteMetadataFile writes the token's metadata document to dir (the
// current directory when empty) and returns its path.
func WriteMetadataFile(dir string, token config.TokenConfig) (string, error) {
	doc := tokenMetadata{
		Name:        token.Name,
		Symbol:      token.Symbol,
		Description: token.Description,
		Image:       token.ImageURL,
		ExternalURL: token.Website,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode metadata: %w", err)
	}

	path := filepath.Join(dir, MetadataFileName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write metadata file: %w", err)
	}
	return path, nil
}
