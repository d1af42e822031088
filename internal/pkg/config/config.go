package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// StoreBackend selects the persistence layer: "mongo" or "memory".
	// The in-memory store is for local development and demos.
	StoreBackend string `env:"STORE_BACKEND, default=mongo"`

	Mongo       MongoConfig
	Redis       RedisConfig
	SideChannel SideChannelConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=client_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SideChannelConfig struct {
	// SheetsWebhookURL is the Apps Script endpoint mirroring signups and
	// briefs into the studio spreadsheet. Empty disables the mirror.
	SheetsWebhookURL string `env:"SHEETS_WEBHOOK_URL"`
	Workers          int    `env:"SIDECHANNEL_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
