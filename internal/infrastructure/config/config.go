package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	LogPretty bool          `env:"LOG_PRETTY, default=false"`
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
	// BaseURL prefixes every resource URL this API hands out.
	BaseURL string `env:"BASE_URL, default=http://localhost:8080"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Remote    RemoteConfig
	Bootstrap BootstrapConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017/?replicaSet=rs0"`
	Database string `env:"MONGO_DB,  default=klantinteracties"`
}

type RedisConfig struct {
	Addr             string        `env:"REDIS_ADDR,         default=localhost:6379"`
	Password         string        `env:"REDIS_PASSWORD"`
	DB               int           `env:"REDIS_DB,           default=0"`
	PendingDeleteTTL time.Duration `env:"PENDING_DELETE_TTL, default=1h"`
}

type RemoteConfig struct {
	// Timeout of one remote attempt; 0 disables it.
	Timeout  time.Duration `env:"REMOTE_TIMEOUT,   default=10s"`
	RetryMax int           `env:"REMOTE_RETRY_MAX, default=3"`
	ZRCSpec  string        `env:"ZRC_API_SPEC"`
	DRCSpec  string        `env:"DRC_API_SPEC"`
	// Credentials are apiRoot|clientId|secret entries separated by ';'.
	Credentials []string `env:"REMOTE_CREDENTIALS, delimiter=;"`
}

// BootstrapConfig registers one applicatie with every scope at startup.
type BootstrapConfig struct {
	ClientID string `env:"BOOTSTRAP_CLIENT_ID"`
	Secret   string `env:"BOOTSTRAP_SECRET"`
}

// Load reads an optional .env file and then the environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if cfg.Remote.RetryMax < 0 {
		return nil, errors.New("config: REMOTE_RETRY_MAX must not be negative")
	}
	if (cfg.Bootstrap.ClientID == "") != (cfg.Bootstrap.Secret == "") {
		return nil, errors.New("config: BOOTSTRAP_CLIENT_ID and BOOTSTRAP_SECRET go together")
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
