package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config holds the runtime settings of the service. Every key can be set
// through the environment (APP_HOST, LOG_LEVEL, ...) or a matching flag.
type Config struct {
	AppHost           string        `mapstructure:"app_host"`
	AppVersion        string        `mapstructure:"app_version"`
	LogLevel          string        `mapstructure:"log_level"`
	SeedFile          string        `mapstructure:"seed_file"`
	GinMode           string        `mapstructure:"gin_mode"`
	RateLimitRequests int           `mapstructure:"rate_limit_requests"`
	RateLimitWindow   time.Duration `mapstructure:"rate_limit_window"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	SessionTTL        time.Duration `mapstructure:"session_ttl"`
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"addr":      "app_host",
	"log-level": "log_level",
	"seed":      "seed_file",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_host", ":8080")
	v.SetDefault("app_version", "1.0.0")
	v.SetDefault("log_level", "info")
	v.SetDefault("seed_file", "")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("rate_limit_requests", 120)
	v.SetDefault("rate_limit_window", "1m")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("session_ttl", "30m")
}

// Load reads defaults, the environment and, when cmd is not nil, the flags
// the command defines. Flags win over the environment.
func Load(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for flag, key := range flagKeys {
			if f := cmd.Flags().Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.AppHost) == "" {
		return fmt.Errorf("APP_HOST cannot be empty")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE %q", c.GinMode)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	if c.RateLimitRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.RateLimitRequests)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimitWindow)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}

	return nil
}
