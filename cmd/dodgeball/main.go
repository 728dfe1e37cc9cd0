// dodgeball is a real-time dodgeball game against an AI opponent.
//
// Usage:
//
//	dodgeball play            - Play in the terminal
//	dodgeball window          - Play in a window with PNG sprites
//	dodgeball serve           - Start SSH server for remote play
//	dodgeball history         - Show recorded rounds
//	dodgeball assets <dir>    - Write placeholder sprites
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible AI movement
//	--db <path>           - Set database path (default: ~/.dodgeball/history.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - AI preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodgeball",
	Short: "Dodgeball - dodge and throw against an AI opponent",
	Long: `Dodgeball is a real-time game: move your avatar, throw balls at the AI
opponent and dodge its throws. The first hit ends the round; a round where
both sides run out of balls is a draw.

Available commands:
  play     - Play in the terminal
  window   - Play in a window
  serve    - Start SSH server for remote play
  history  - Show recorded rounds
  assets   - Write placeholder sprites for the window mode

Examples:
  dodgeball play
  dodgeball play --difficulty hard
  dodgeball window --assets ./assets
  dodgeball serve --ssh :2222
  dodgeball history --limit 50`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use the config, 60 by default)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodgeball/history.db", "Path to round history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "AI preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(assetsCmd)
}
