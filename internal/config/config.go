// Package config loads the game's settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Config holds everything main needs to wire the game.
type Config struct {
	RootWordsFile  string `env:"WORDS_ROOT_FILE"`
	DictionaryFile string `env:"WORDS_DICTIONARY_FILE"`
	Language       string `env:"WORDS_LANGUAGE" envDefault:"en"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile        string `env:"LOG_FILE" envDefault:"wordscramble.log"`
}

// Load parses the environment and validates the language tag.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := language.Parse(cfg.Language); err != nil {
		return Config{}, fmt.Errorf("WORDS_LANGUAGE %q: %w", cfg.Language, err)
	}
	return cfg, nil
}
