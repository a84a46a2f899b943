package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/tui"
	"github.com/robalobadob/wordscramble/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "wordscramble:", err)
		os.Exit(1)
	}
}

// run plays until the player quits. Deferred cleanup has finished by the
// time it returns.
func run(cfg config.Config) error {
	// The screen owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", cfg.LogFile, err)
	}
	defer logFile.Close()
	log.Logger = zerolog.New(logFile).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dict, err := loadDictionary(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to load dictionary")
		return err
	}
	log.Info().Int("words", dict.Len()).Str("language", dict.Language().String()).Msg("dictionary loaded")

	session := game.NewSession(game.NewValidator(dict, cfg.Language))
	screen := tui.NewScreen(tui.NewController(session, rootSource(cfg)))
	if err := screen.Run(); err != nil {
		log.Error().Err(err).Msg("screen exited")
		return err
	}
	return nil
}

// rootSource prefers the configured root word file and falls back to the
// embedded list.
func rootSource(cfg config.Config) game.WordListSource {
	var roots game.WordListSource = words.EmbeddedSource{}
	if cfg.RootWordsFile != "" {
		roots = words.FallbackSource{Primary: words.FileSource{Path: cfg.RootWordsFile}, Secondary: roots}
	}
	return roots
}

// loadDictionary falls back to the embedded list when the configured file
// cannot be used.
func loadDictionary(cfg config.Config) (*words.Dictionary, error) {
	dict, err := words.LoadDictionary(cfg.Language, cfg.DictionaryFile)
	if err == nil || cfg.DictionaryFile == "" {
		return dict, err
	}
	log.Warn().Err(err).Str("file", cfg.DictionaryFile).Msg("dictionary file unusable, using embedded list")
	return words.LoadDictionary(cfg.Language, "")
}
