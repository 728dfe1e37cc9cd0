package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodgeball/internal/assets"
)

var flagOverwrite bool

var assetsCmd = &cobra.Command{
	Use:   "assets [dir]",
	Short: "Write placeholder sprites",
	Long: `Generate simple PNG sprites for every asset the config names, so the
window mode runs without artwork. Existing files are kept unless
--overwrite is given.

Examples:
  dodgeball assets
  dodgeball assets ./assets --overwrite`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAssets,
}

func init() {
	assetsCmd.Flags().BoolVar(&flagOverwrite, "overwrite", false, "Replace existing files")
}

func runAssets(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := cfg.Assets.Dir
	if len(args) == 1 {
		dir = args[0]
	}

	written, err := assets.WritePlaceholders(dir, cfg, flagOverwrite)
	if err != nil {
		return err
	}

	sort.Strings(written)
	for _, name := range written {
		fmt.Printf("  wrote %s\n", name)
	}
	fmt.Printf("%d placeholder sprites in %s\n", len(written), dir)
	return nil
}
