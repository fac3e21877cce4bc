package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config is the client's startup configuration, read once from the
// environment. APIBase prefixes every pipeline request.
type Config struct {
	APIBase  string `env:"API_BASE,  default=http://localhost:8000/api/v1"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Redis   RedisConfig
}

// SessionConfig selects where the persisted session record lives.
type SessionConfig struct {
	// Backend is "file" or "redis".
	Backend string `env:"SESSION_BACKEND, default=file"`
	// Path is the session file location for the file backend.
	Path string `env:"SESSION_PATH, default=.eduline/session.json"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads a local .env file when present, then the environment.
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
