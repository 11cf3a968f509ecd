// Package config は .env と環境変数からアプリケーション設定を読み込みます。
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"stock_ingest/internal/feature/stocks/adapters/fundamentus"
	"stock_ingest/internal/feature/stocks/adapters/twelvedata"
	"stock_ingest/internal/feature/stocks/adapters/yahoo"
	"stock_ingest/internal/feature/stocks/domain/entity"
)

//go:embed symbols.json
var defaultSymbols []byte

// 保存先バックエンド
const (
	StoreFile  = "file"
	StoreSQL   = "sql"
	StoreMongo = "mongo"
)

// 作業リストの決定方法
const (
	UniverseStatic    = "static"
	UniverseDirectory = "directory"
)

// Config holds application configuration.
type Config struct {
	LogLevel    slog.Level
	HTTPTimeout time.Duration
	UserAgent   string
	ServerPort  string
	APISecret   string // read API JWT secret; empty leaves the API open

	RateLimit RateLimitConfig
	Store     StoreConfig
	Universe  UniverseConfig
	Redis     RedisConfig

	Fundamentus fundamentus.Config
	Yahoo       yahoo.Config
	TwelveData  twelvedata.Config
}

// RateLimitConfig は Interval あたり Requests 回までリクエストを許可します。
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

type StoreConfig struct {
	Backend         string // file | sql | mongo
	DataDir         string // file backend
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
}

type UniverseConfig struct {
	Policy      string // static | directory
	SymbolsFile string // empty uses the embedded list
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration // 0 = until the next B3 session
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Load reads configuration from .env (if present) and environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    parseLevel(getEnv("LOG_LEVEL", "info")),
		HTTPTimeout: getEnvAsDuration("HTTP_TIMEOUT", 10*time.Second),
		UserAgent:   getEnv("USER_AGENT", ""),
		ServerPort:  getEnv("PORT", "8080"),
		APISecret:   getEnv("API_JWT_SECRET", ""),
		RateLimit: RateLimitConfig{
			Requests: getEnvAsInt("RATE_LIMIT_REQUESTS", 1),
			Interval: getEnvAsDuration("RATE_LIMIT_INTERVAL", 500*time.Millisecond),
		},
		Store: StoreConfig{
			Backend:         strings.ToLower(getEnv("STORE_BACKEND", StoreFile)),
			DataDir:         getEnv("DATA_PATH", "./data"),
			MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
			MongoDatabase:   getEnv("MONGO_DATABASE", "stock_ingest"),
			MongoCollection: getEnv("MONGO_COLLECTION", "stocks"),
		},
		Universe: UniverseConfig{
			Policy:      strings.ToLower(getEnv("UNIVERSE_POLICY", UniverseStatic)),
			SymbolsFile: getEnv("SYMBOLS_FILE", ""),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      getEnvAsDuration("REDIS_TTL", 0),
		},
		Fundamentus: fundamentus.LoadConfig(),
		Yahoo:       yahoo.LoadConfig(),
		TwelveData:  twelvedata.LoadConfig(),
	}
	cfg.TwelveData.Timeout = cfg.HTTPTimeout

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that enum-like settings hold known values.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreFile, StoreSQL, StoreMongo:
	default:
		return fmt.Errorf("STORE_BACKEND must be one of file, sql, mongo: got %q", c.Store.Backend)
	}
	switch c.Universe.Policy {
	case UniverseStatic, UniverseDirectory:
	default:
		return fmt.Errorf("UNIVERSE_POLICY must be static or directory: got %q", c.Universe.Policy)
	}
	if c.Universe.Policy == UniverseDirectory && c.TwelveData.TwelveDataAPIKey == "" {
		return fmt.Errorf("TWELVE_DATA_API_KEY is required for the directory universe")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// Symbols returns the static symbol list from SymbolsFile, or the embedded default.
func (c UniverseConfig) Symbols() ([]entity.Symbol, error) {
	b := defaultSymbols
	if c.SymbolsFile != "" {
		var err error
		if b, err = os.ReadFile(c.SymbolsFile); err != nil {
			return nil, fmt.Errorf("read symbols file: %w", err)
		}
	}
	var raw []string
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode symbols: %w", err)
	}
	out := make([]entity.Symbol, 0, len(raw))
	for _, s := range raw {
		out = append(out, entity.Symbol(s))
	}
	return out, nil
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
