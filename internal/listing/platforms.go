// Package listing catalogues third-party token tracking platforms and
// produces the per-run listing report.
//
// The platforms are a data table, not behavior: each entry is a URL
// template plus guidance text. None of the links are verified
// programmatically; indexing and review are the platforms' business.
package listing

import (
	"strings"

	"github.com/mintforge/mintforge/internal/config"
)

// Tier controls which listing preferences include a platform.
type Tier int

const (
	// TierAuto platforms index new tokens without a submission and are
	// included for every preference except "none".
	TierAuto Tier = iota
	// TierMajor platforms are included for "major" and "all".
	TierMajor
	// TierFull platforms are included only for "all".
	TierFull
)

// Platform is one catalogue entry.
type Platform struct {
	Key  string
	Name string
	Tier Tier

	// URLTemplate contains {mint} where the token address belongs;
	// static submission pages have no placeholder.
	URLTemplate string

	// Notes are guidance lines shown with the link.
	Notes []string
}

// Catalog returns the platform table in report order.
func Catalog() []Platform {
	return []Platform{
		{
			Key:         "dexscreener",
			Name:        "DexScreener",
			Tier:        TierAuto,
			URLTemplate: "https://dexscreener.com/solana/{mint}",
			Notes:       []string{"DexScreener will automatically detect your token"},
		},
		{
			Key:         "birdeye",
			Name:        "Birdeye",
			Tier:        TierAuto,
			URLTemplate: "https://birdeye.so/token/{mint}?chain=solana",
			Notes:       []string{"Birdeye will automatically index your token"},
		},
		{
			Key:         "rugcheck",
			Name:        "RugCheck",
			Tier:        TierAuto,
			URLTemplate: "https://rugcheck.xyz/tokens/{mint}",
			Notes:       []string{"RugCheck will analyze your token's security"},
		},
		{
			Key:         "dextools",
			Name:        "DexTools",
			Tier:        TierMajor,
			URLTemplate: "https://www.dextools.io/app/en/solana/pair-explorer/{mint}",
			Notes:       []string{"Submit to DexTools once you create a liquidity pool"},
		},
		{
			Key:         "coinmarketcap",
			Name:        "CoinMarketCap",
			Tier:        TierFull,
			URLTemplate: "https://developer.coinmarketcap.com/community/submit-asset/",
			Notes:       []string{"You'll need: token address, website, social links"},
		},
		{
			Key:         "coingecko",
			Name:        "CoinGecko",
			Tier:        TierFull,
			URLTemplate: "https://www.coingecko.com/en/coins/submit",
			Notes:       []string{"You'll need detailed project information"},
		},
	}
}

// Link is a resolved platform URL for a specific token.
type Link struct {
	Platform Platform
	URL      string
}

// Links resolves the catalogue for mint under the given preference, in
// catalogue order. ListingNone yields nothing.
func Links(mint string, pref config.ListingPreference) []Link {
	if pref == config.ListingNone {
		return nil
	}

	var out []Link
	for _, p := range Catalog() {
		if !included(p.Tier, pref) {
			continue
		}
		out = append(out, Link{
			Platform: p,
			URL:      strings.ReplaceAll(p.URLTemplate, "{mint}", mint),
		})
	}
	return out
}

func included(tier Tier, pref config.ListingPreference) bool {
	switch tier {
	case TierAuto, TierMajor:
		return true
	case TierFull:
		return pref == config.ListingAll
	default:
		return false
	}
}
