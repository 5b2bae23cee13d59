package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadSettings.
const (
	EnvAddr      = "LEASEBUY_ADDR"
	EnvDB        = "LEASEBUY_DB"
	EnvRedisAddr = "LEASEBUY_REDIS_ADDR"
	EnvCacheTTL  = "LEASEBUY_CACHE_TTL"
	EnvLogLevel  = "LEASEBUY_LOG_LEVEL"
)

// Settings configures the HTTP server and its backing services.
type Settings struct {
	Addr      string
	DBPath    string
	RedisAddr string // empty selects the in-process cache
	CacheTTL  time.Duration
	LogLevel  string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Addr:     ":8080",
		DBPath:   ":memory:",
		CacheTTL: 10 * time.Minute,
		LogLevel: "info",
	}
}

// LoadSettings loads the given .env files (".env" when none are named) and
// then reads settings from the environment. Missing .env files are ignored;
// variables already set in the environment win over the files.
func LoadSettings(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	s := DefaultSettings()
	if v := os.Getenv(EnvAddr); v != "" {
		s.Addr = v
	}
	if v := os.Getenv(EnvDB); v != "" {
		s.DBPath = v
	}
	s.RedisAddr = os.Getenv(EnvRedisAddr)
	if v := os.Getenv(EnvCacheTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s %q: %w", EnvCacheTTL, v, err)
		}
		s.CacheTTL = ttl
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = strings.ToLower(v)
	}
	return s, nil
}
