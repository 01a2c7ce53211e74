package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL selects the backend origin. Defaults to the documented
	// local development endpoint.
	APIBaseURL     string        `env:"REPOMARKET_API_URL,  default=http://localhost:8081"`
	RequestTimeout time.Duration `env:"REPOMARKET_TIMEOUT,  default=30s"`
	LogLevel       string        `env:"LOG_LEVEL,           default=info"`
	LogPretty      bool          `env:"LOG_PRETTY,          default=false"`

	// SessionStore selects where the session is persisted: file, memory or redis.
	SessionStore string `env:"REPOMARKET_SESSION_STORE, default=file"`
	// SessionFile overrides the session file location. Empty means the
	// per-user config directory default.
	SessionFile string `env:"REPOMARKET_SESSION_FILE"`

	Server ServerConfig
	Redis  RedisConfig
	Mongo  MongoConfig
}

// ServerConfig configures the local development backend.
type ServerConfig struct {
	Port      string        `env:"PORT,        default=8081"`
	JWTSecret string        `env:"JWT_SECRET,  default=repomarket-dev-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,   default=24h"`
	// UserStore selects user persistence: memory or mongo.
	UserStore string `env:"USER_STORE, default=memory"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=repomarket"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
