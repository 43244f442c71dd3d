package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// devJWTSecret is the recognized signing key for local and demo runs. Any
// non-development environment must supply its own JWT_SECRET; Validate
// refuses to start otherwise.
const devJWTSecret = "dev-only-insecure-secret"

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Admin AdminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=hotel_booking"`
}

// AdminConfig holds the bootstrap defaults for the provisioned administrator
// account. These are first-run conveniences, not a security mechanism.
type AdminConfig struct {
	Email     string `env:"ADMIN_EMAIL,      default=admin@hotel.local"`
	Password  string `env:"ADMIN_PASSWORD,   default=change-me-now"`
	FirstName string `env:"ADMIN_FIRST_NAME, default=System"`
	LastName  string `env:"ADMIN_LAST_NAME,  default=Administrator"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = devJWTSecret
	}
	return &cfg, nil
}

// Validate enforces the deployment rules that cannot be expressed as env
// defaults: outside development the signing key must be explicit and must
// not be the baked-in development value.
func (c *Config) Validate() error {
	if c.Env != "development" && c.JWTSecret == devJWTSecret {
		return fmt.Errorf("config: JWT_SECRET must be set explicitly when ENV=%s", c.Env)
	}
	return nil
}
