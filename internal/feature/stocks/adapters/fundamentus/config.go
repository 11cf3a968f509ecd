// Package fundamentus は fundamentus.com.br のHTMLページから詳細・株主構成・配当の各フラグメントを抽出します。
package fundamentus

import (
	"os"
	"time"
)

const defaultBaseURL = "https://fundamentus.com.br"

// Config holds configuration for the fundamentus scraper.
type Config struct {
	BaseURL       string         // Base URL of the site (e.g., "https://fundamentus.com.br")
	EventCategory string         // "tipo" query parameter of the events page (2 = dividends)
	Location      *time.Location // Time zone used for the midnight of event dates
}

// LoadConfig loads fundamentus configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL:       os.Getenv("FUNDAMENTUS_BASE_URL"),
		EventCategory: os.Getenv("FUNDAMENTUS_EVENT_CATEGORY"),
		Location:      time.Local,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.EventCategory == "" {
		cfg.EventCategory = "2"
	}
	if tz := os.Getenv("FUNDAMENTUS_TIMEZONE"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			cfg.Location = loc
		}
	}
	return cfg
}
