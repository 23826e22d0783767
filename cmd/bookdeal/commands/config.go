package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"pollex.nl/bookdeal/internal/platform/config"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type Config struct {
	LogLevel string `env:"BOOKDEAL_LOG_LEVEL" envDefault:"info"`
	Output   string `env:"BOOKDEAL_OUTPUT" envDefault:"text"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg Config) validate() error {
	switch cfg.Output {
	case outputText, outputJSON:
	default:
		return fmt.Errorf("unknown output %q: want %s or %s", cfg.Output, outputText, outputJSON)
	}

	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return err
	}

	return nil
}

func (cfg Config) logger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(cfg.LogLevel)

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", name)
	}

	return level, nil
}
