package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

// Config holds the demo hosts' settings. The console host ignores
// DiscordToken; the Discord host refuses to start without it.
type Config struct {
	DiscordToken      string  `env:"DISCORD_TOKEN"`
	CommandPrefix     string  `env:"COMMAND_PREFIX" envDefault:"!"`
	StoragePath       string  `env:"STORAGE_PATH" envDefault:"permissions.json"`
	CommandsPerSecond float64 `env:"COMMANDS_PER_SECOND" envDefault:"3"`
	CommandBurst      int     `env:"COMMAND_BURST" envDefault:"5"`
}

// New parses the configuration from the environment.
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
