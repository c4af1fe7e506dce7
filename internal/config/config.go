package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	"ufl-rankings/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DBPath            string
	ServerPort        string
	LogLevel          string
	AdminSecret       string
	CacheTTL          time.Duration
	FallbackCache     bool
	RecencyWindowDays int

	// EnvFileLoaded is false when no .env file was found.
	EnvFileLoaded bool
}

func Load() (*Config, error) {
	envErr := godotenv.Load()

	cfg := &Config{
		DBPath:            getEnv("DB_PATH", "rankings.db"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		AdminSecret:       getEnv("ADMIN_SECRET", ""),
		CacheTTL:          constants.SnapshotCacheTTL,
		FallbackCache:     true,
		RecencyWindowDays: constants.RecencyWindowDays,
		EnvFileLoaded:     envErr == nil,
	}

	if cfg.AdminSecret == "" {
		return nil, fmt.Errorf("ADMIN_SECRET is required")
	}

	if v := os.Getenv("CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL %q: %w", v, err)
		}
		cfg.CacheTTL = ttl
	}
	if v := os.Getenv("FALLBACK_CACHE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FALLBACK_CACHE %q: %w", v, err)
		}
		cfg.FallbackCache = b
	}
	if v := os.Getenv("RECENCY_WINDOW_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 0 {
			return nil, fmt.Errorf("invalid RECENCY_WINDOW_DAYS %q", v)
		}
		cfg.RecencyWindowDays = days
	}

	return cfg, nil
}

// Log reports the loaded configuration without the admin secret.
func Log(cfg *Config, logger zerolog.Logger) {
	if !cfg.EnvFileLoaded {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}
	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("cache_ttl", cfg.CacheTTL).
		Bool("fallback_cache", cfg.FallbackCache).
		Int("recency_window_days", cfg.RecencyWindowDays).
		Msg("configuration loaded")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Options(
	fx.Provide(Load),
	fx.Invoke(Log),
)
