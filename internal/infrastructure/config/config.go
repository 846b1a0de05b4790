package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:5000/api"`
	Env        string `env:"ENV,          default=development"`
	LogLevel   string `env:"LOG_LEVEL,    default=info"`
	LogPretty  bool   `env:"LOG_PRETTY,   default=false"`
	// StateDir is where the file-backed store keeps the persisted session and
	// cart records. When StateBackend is "redis" it is ignored.
	StateDir     string `env:"STATE_DIR,     default=.bakeryhub"`
	StateBackend string `env:"STATE_BACKEND, default=file"` // file | memory | redis

	Redis      RedisConfig
	Cloudinary CloudinaryConfig
	DevProxy   DevProxyConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// CloudinaryConfig drives the unsigned browser-style image upload.
type CloudinaryConfig struct {
	CloudName    string `env:"CLOUDINARY_CLOUD_NAME"`
	UploadPreset string `env:"CLOUDINARY_UPLOAD_PRESET"`
}

// DevProxyConfig configures cmd/devproxy, which forwards /api to a local
// backend during development.
type DevProxyConfig struct {
	Port        string `env:"DEVPROXY_PORT,    default=5173"`
	BackendAddr string `env:"DEVPROXY_BACKEND, default=http://localhost:5000"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
