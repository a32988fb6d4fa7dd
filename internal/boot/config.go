package boot

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env           string `env:"ENV,default=dev"`
	Port          int    `env:"PORT,default=8080"`
	MetricsPort   int    `env:"METRICS_PORT,default=8081"`
	DatabasePath  string `env:"DATABASE_PATH,default=kisanmitra.db"`
	TokenSecret   string `env:"TOKEN_SECRET"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN,default=http://localhost:3000"`

	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL,default=168h"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL,default=720h"`

	MaxLoginAttempts int           `env:"MAX_LOGIN_ATTEMPTS,default=5"`
	LockoutDuration  time.Duration `env:"LOCKOUT_DURATION,default=2h"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := envconfig.Process(context.Background(), config); err != nil {
		return nil, fmt.Errorf("parsing env vars: %w", err)
	}
	if config.TokenSecret == "" {
		return nil, fmt.Errorf("TOKEN_SECRET must be set")
	}
	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "dev"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
