package listing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mintforge/mintforge/internal/config"
)

// reportPrefix starts every listing report file name; the mint address
// prefix makes runs distinguishable.
const reportPrefix = "token_listing_report_"

// mintPrefixLen is how many leading characters of the mint address go
// into the report file name.
const mintPrefixLen = 8

// ReportFileName returns the report name for a mint address.
func ReportFileName(mint string) string {
	prefix := mint
	if len(prefix) > mintPrefixLen {
		prefix = prefix[:mintPrefixLen]
	}
	return reportPrefix + prefix + ".txt"
}

// WriteReport writes the listing report for a completed run to dir (the
// current directory when empty) and returns its path. now stamps the
// report so tests can pin it.
func WriteReport(dir, mint string, token config.TokenConfig, links []Link, now time.Time) (string, error) {
	var b strings.Builder

	b.WriteString("TOKEN LISTING SUBMISSION REPORT\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	fmt.Fprintf(&b, "Token: %s (%s)\n", token.Name, token.Symbol)
	fmt.Fprintf(&b, "Address: %s\n", mint)
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	b.WriteString("TRACKING PLATFORMS:\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	for _, link := range links {
		fmt.Fprintf(&b, "%s: %s\n", strings.ToUpper(link.Platform.Key), link.URL)
	}

	b.WriteString("\nNEXT STEPS FOR LISTING:\n")
	b.WriteString(strings.Repeat("-", 25) + "\n")
	b.WriteString("1. Create liquidity pool on Raydium or Orca\n")
	b.WriteString("2. Wait for automatic indexing on DexScreener/Birdeye (usually 5-15 minutes)\n")
	b.WriteString("3. Manually submit to DexTools after liquidity is added\n")
	b.WriteString("4. Submit to CoinMarketCap/CoinGecko once you have trading volume\n")
	b.WriteString("5. Share your token on Twitter and Telegram communities\n")

	b.WriteString("\nSOCIAL SUBMISSION TIPS:\n")
	b.WriteString(strings.Repeat("-", 25) + "\n")
	b.WriteString("1. Twitter: Use relevant hashtags (#Solana, #MemeCoin, #DeFi)\n")
	b.WriteString("2. Telegram: Share in legitimate crypto groups\n")
	b.WriteString("3. Reddit: Post in r/Solana and relevant subreddits\n")
	b.WriteString("4. Remember to engage with your community regularly\n")

	path := filepath.Join(dir, ReportFileName(mint))
	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return "", fmt.Errorf("failed to write listing report: %w", err)
	}
	return path, nil
}
