package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodgeball/internal/platform/gui"
)

var flagAssetsDir string

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a window",
	Long: `Open a window and play with PNG sprites.

The assets directory must contain the human animation frames
(skeleton-run_0.png ... skeleton-run_20.png), ai.png, fireball.png and the
backgrounds. Run 'dodgeball assets <dir>' to generate placeholders.

Controls:
  Arrows/WASD  - Move
  Q/Space      - Throw
  Enter        - Begin / Restart
  Esc          - Back from settings
  Mouse        - Click buttons

Examples:
  dodgeball window
  dodgeball window --assets ./assets --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssetsDir, "assets", "", "Sprite directory (default: from config)")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "dodgeball")
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := cfg.Assets.Dir
	if flagAssetsDir != "" {
		dir = flagAssetsDir
	}

	recorder, closeStore := openRecorder(logger)
	defer closeStore()

	if err := gui.Run(gui.Options{
		Config:    cfg,
		AssetsDir: dir,
		Seed:      flagSeed,
		Logger:    logger,
		Recorder:  recorder,
	}); err != nil {
		logger.Error("game failed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
