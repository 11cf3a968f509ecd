// Package yahoo は Yahoo Finance の quoteSummary API から財務履歴フラグメントを取得します。
package yahoo

import "os"

const (
	defaultBaseURL   = "https://query2.finance.yahoo.com"
	defaultCookieURL = "https://fc.yahoo.com"
	defaultCrumbURL  = "https://query2.finance.yahoo.com/v1/test/getcrumb"
	defaultSuffix    = ".SA"
)

// Config holds configuration for the Yahoo Finance client.
type Config struct {
	BaseURL      string // Base URL for the API (e.g., "https://query2.finance.yahoo.com")
	MarketSuffix string // Appended to every symbol (".SA" for B3)
	CookieURL    string // Page that sets the session cookie; empty disables the handshake
	CrumbURL     string // Endpoint returning the crumb; empty disables the handshake
}

// LoadConfig loads Yahoo Finance configuration from environment variables.
func LoadConfig() Config {
	return Config{
		BaseURL:      getEnv("YAHOO_BASE_URL", defaultBaseURL),
		MarketSuffix: getEnv("YAHOO_MARKET_SUFFIX", defaultSuffix),
		CookieURL:    getEnv("YAHOO_COOKIE_URL", defaultCookieURL),
		CrumbURL:     getEnv("YAHOO_CRUMB_URL", defaultCrumbURL),
	}
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
