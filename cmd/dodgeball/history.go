package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodgeball/internal/platform/tui"
	"github.com/vovakirdan/dodgeball/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTUI   bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded rounds",
	Long: `Display the most recent rounds and the win/loss/draw tally.

Examples:
  dodgeball history
  dodgeball history --limit 50
  dodgeball history --tui
  dodgeball history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of rounds to show")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse the history in an interactive table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete every recorded round")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRounds(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	rounds, err := store.RecentRounds(flagHistoryLimit)
	if err != nil {
		return err
	}
	tally, err := store.Tally()
	if err != nil {
		return err
	}

	if flagHistoryTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunHistory(rounds, tally, width, height)
	}

	// Display rounds
	fmt.Println("Round History")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dodgeball play' to record the first round!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-13s  %-9s  %-9s  %s\n", "#", "Winner", "Time", "Balls", "Date")
	fmt.Printf("  %-4s  %-13s  %-9s  %-9s  %s\n", "-", "------", "----", "-----", "----")

	// Print rounds
	for i, r := range rounds {
		fmt.Printf("  %-4d  %-13s  %-9s  %-9s  %s\n",
			i+1,
			tui.WinnerLabel(r.Outcome),
			fmt.Sprintf("%.2fs", r.Duration.Seconds()),
			fmt.Sprintf("%d/%d", r.HumanBalls, r.AIBalls),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	fmt.Println(tui.TallyLine(tally))
	return nil
}
