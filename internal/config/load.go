package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the session file name looked up when no --config
// flag is given.
const DefaultConfigFile = "mintforge.yaml"

// LoadFile reads and parses a session from a YAML file.
func LoadFile(path string) (*Session, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var s Session
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &s,
		TagName: "yaml",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	applyDefaults(&s)

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &s, nil
}

// FindConfigFile returns the default session file if it exists in the
// working directory.
func FindConfigFile() (string, error) {
	if _, err := os.Stat(DefaultConfigFile); err != nil {
		return "", fmt.Errorf("%s not found in current directory", DefaultConfigFile)
	}
	return DefaultConfigFile, nil
}

func applyDefaults(s *Session) {
	if s.Network == "" {
		s.Network = NetworkDevnet
	}
	if s.Wallet.Source == "" {
		s.Wallet.Source = WalletDefault
	}
	if s.Fees.Tier == "" {
		s.Fees.Tier = FeeBalanced
	}
	if s.Listing == "" {
		s.Listing = ListingAll
	}
	if s.Token.CirculatingSupply == 0 {
		s.Token.CirculatingSupply = s.Token.TotalSupply
	}
}
