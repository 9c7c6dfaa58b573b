package solana

import "context"

// MetadataClient wraps the metaplex CLI for publishing token metadata.
type MetadataClient struct {
	runner Runner
}

// NewMetadataClient returns a MetadataClient using the given runner.
func NewMetadataClient(runner Runner) *MetadataClient {
	return &MetadataClient{runner: runner}
}

// CreateMetadata attaches the metadata in file to mint on the given
// network.
func (m *MetadataClient) CreateMetadata(ctx context.Context, mint, file, network string) error {
	res, err := m.runner.Run(ctx, MetaplexBin, "create-metadata",
		"--mint", mint, "--metadata", file, "--network", network)
	if err != nil {
		return err
	}
	return res.Err(MetaplexBin + " create-metadata")
}
