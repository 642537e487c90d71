package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds settings that are not passed on the command line.
// The database name, port and user always come from positional arguments.
type Config struct {
	DBHost     string `env:"CAFE_DB_HOST" env-default:"localhost"`
	DBPassword string `env:"CAFE_DB_PASSWORD" env-default:""`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("unable to read configuration: %w", err)
	}
	return &cfg, nil
}
