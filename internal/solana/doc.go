// Package solana wraps the external command-line tools a launch depends
// on: the solana CLI for wallet and cluster configuration, the spl-token
// CLI for the token program, and the metaplex CLI for on-chain metadata.
//
// The tools' plain-text stdout is an unversioned contract. Identifiers
// such as the mint address are recovered by scanning output lines for a
// marker keyword; a zero exit status without the marker is still treated
// as a failure.
package solana
