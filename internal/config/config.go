package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/samber/lo"
)

// Config holds the runtime settings of the signaling server. Every field is
// overridable from the environment; a .env file is loaded first when present.
type Config struct {
	Addr            string        `envconfig:"ADDR" default:":3001"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	SendBufferSize  int           `envconfig:"SEND_BUFFER_SIZE" default:"256"`
	ReadLimit       int64         `envconfig:"READ_LIMIT" default:"65536"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the environment. A missing .env file is
// not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// OriginAllowed reports whether origin may open a websocket. A single "*"
// entry allows everything, matching the permissive CORS posture of the rest
// of the server.
func (c Config) OriginAllowed(origin string) bool {
	if lo.Contains(c.AllowedOrigins, "*") {
		return true
	}
	return lo.Contains(c.AllowedOrigins, origin)
}
