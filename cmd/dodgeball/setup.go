package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodgeball/internal/app"
	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/storage"
)

// loadConfig loads the config and applies the command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	switch p := config.DifficultyPreset(flagDifficulty); p {
	case "", config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard:
		config.ApplyPreset(&cfg, p)
	default:
		return config.Config{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, nil
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// fileLogger logs to ~/.dodgeball/dodgeball.log so terminal games do not
// write over the alt screen. Falls back to discarding logs.
func fileLogger() (*log.Logger, func(), error) {
	noop := func() {}
	home, err := os.UserHomeDir()
	if err != nil {
		logger, lerr := newLogger(io.Discard, "dodgeball")
		return logger, noop, lerr
	}

	dir := filepath.Join(home, ".dodgeball")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger, lerr := newLogger(io.Discard, "dodgeball")
		return logger, noop, lerr
	}
	f, err := os.OpenFile(filepath.Join(dir, "dodgeball.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger, lerr := newLogger(io.Discard, "dodgeball")
		return logger, noop, lerr
	}

	logger, err := newLogger(f, "dodgeball")
	if err != nil {
		f.Close()
		return nil, noop, err
	}
	return logger, func() { f.Close() }, nil
}

// openRecorder opens the round history. The game works without it, so a
// failure is only logged and the returned recorder is nil.
func openRecorder(logger *log.Logger) (app.RoundRecorder, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("round history disabled", "err", err)
		return nil, func() {}
	}
	return store, func() { store.Close() }
}
