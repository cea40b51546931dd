package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds everything the bot reads from the environment.
// SLACK_BOT_TOKEN is required to run; the check lives in the
// composition root so tests can construct Settings directly.
type Settings struct {
	BotToken        string `env:"SLACK_BOT_TOKEN"`
	Port            int    `env:"PORT" envDefault:"3000"`
	Debug           bool   `env:"DEBUG" envDefault:"false"`
	MaintainersPath string `env:"MAINTAINERS_FILE" envDefault:"maintainers.json"`
}

func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return s, nil
}

// LogLevel maps the debug flag to a logger level name.
func (s Settings) LogLevel() string {
	if s.Debug {
		return "debug"
	}
	return "info"
}
