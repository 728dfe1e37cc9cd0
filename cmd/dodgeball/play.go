package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodgeball/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Move
  Space/F      - Throw
  Enter        - Begin / Restart
  Esc/B        - Back from settings
  Mouse        - Click buttons
  Ctrl+S       - Save a text screenshot
  Ctrl+C       - Quit

Terminals report key presses but not releases, so a movement key counts as
held for a short moment after each press or auto-repeat.

Examples:
  dodgeball play
  dodgeball play --difficulty easy
  dodgeball play --config ./my-dodgeball.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	recorder, closeStore := openRecorder(logger)
	defer closeStore()

	var screenshots string
	if home, err := os.UserHomeDir(); err == nil {
		screenshots = filepath.Join(home, ".dodgeball", "screenshots")
	}

	if err := tui.Run(tui.Options{
		Config:        cfg,
		Width:         width,
		Height:        height,
		Seed:          flagSeed,
		Logger:        logger,
		Recorder:      recorder,
		ScreenshotDir: screenshots,
	}); err != nil {
		logger.Error("game failed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
