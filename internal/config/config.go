package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS" envDefault:":8080"`
	DatabaseURI     string        `env:"DATABASE_URI"`
	RedisAddress    string        `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	TokenSecret     string        `env:"TOKEN_SECRET" envDefault:"change-me-in-production"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// CartRetention is how long an anonymous cart may stay idle before the
	// janitor removes it.
	CartRetention   time.Duration `env:"CART_RETENTION" envDefault:"336h"`
	CleanupInterval time.Duration `env:"CART_CLEANUP_INTERVAL" envDefault:"1h"`
	NotifyQueueSize int           `env:"NOTIFY_QUEUE_SIZE" envDefault:"64"`
	SuggestionLimit int           `env:"SUGGESTION_LIMIT" envDefault:"3"`
}

const (
	defaultCartRetention   = 14 * 24 * time.Hour
	defaultCleanupInterval = time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultNotifyQueueSize = 64
	defaultSuggestionLimit = 3
)

// Load parses configuration from environment variables and flags.
func Load() (*Config, error) {
	return load(os.Args[1:], nil)
}

func load(args []string, environment map[string]string) (*Config, error) {
	cfg := &Config{}

	opts := env.Options{}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("gameshop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		retentionStr = cfg.CartRetention.String()
		cleanupStr   = cfg.CleanupInterval.String()
		shutdownStr  = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddress, "r", cfg.RedisAddress, "Redis address for the recommender")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing auth tokens")
	fs.StringVar(&retentionStr, "cart-retention", retentionStr, "Idle window before anonymous carts are deleted")
	fs.StringVar(&cleanupStr, "cleanup-interval", cleanupStr, "Interval between stale cart sweeps")
	fs.StringVar(&shutdownStr, "shutdown-timeout", shutdownStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.NotifyQueueSize, "notify-queue", cfg.NotifyQueueSize, "Buffered notification queue size")
	fs.IntVar(&cfg.SuggestionLimit, "suggestion-limit", cfg.SuggestionLimit, "Maximum product suggestions returned")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CartRetention, err = time.ParseDuration(retentionStr); err != nil {
		return nil, fmt.Errorf("invalid cart retention: %w", err)
	}

	if cfg.CleanupInterval, err = time.ParseDuration(cleanupStr); err != nil {
		return nil, fmt.Errorf("invalid cleanup interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.CartRetention <= 0 {
		cfg.CartRetention = defaultCartRetention
	}

	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = defaultCleanupInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = defaultSuggestionLimit
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}
