package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodgeball/internal/dodgeball"
	"github.com/vovakirdan/dodgeball/internal/storage"
)

func TestHistoryRows(t *testing.T) {
	rounds := []storage.RoundRecord{
		{
			Outcome:    dodgeball.HumanWins.String(),
			Duration:   12340 * time.Millisecond,
			HumanBalls: 93,
			AIBalls:    4,
			HumanSpeed: 20,
			AISpeed:    25,
			HumanSize:  50,
			AISize:     40,
			CreatedAt:  time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
		},
		{Outcome: dodgeball.Draw.String(), CreatedAt: testStart},
	}

	rows := historyRows(rounds)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := []string{"1", "Human Player", "12.34s", "93/4", "20/25", "50/40", "Mar 05 14:30"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][1] != "No one" {
		t.Errorf("draw row winner = %q, expected %q", rows[1][1], "No one")
	}
}

func TestWinnerLabel(t *testing.T) {
	tests := []struct {
		outcome string
		want    string
	}{
		{"human_wins", "Human Player"},
		{"ai_wins", "AI Opponent"},
		{"draw", "No one"},
		{"something_else", "something_else"},
	}
	for _, tt := range tests {
		if got := WinnerLabel(tt.outcome); got != tt.want {
			t.Errorf("WinnerLabel(%q) = %q, expected %q", tt.outcome, got, tt.want)
		}
	}
}

func TestTallyLine(t *testing.T) {
	tests := []struct {
		name  string
		tally storage.Tally
		want  string
	}{
		{"empty", storage.Tally{}, "0 rounds: 0 won, 0 lost, 0 drawn"},
		{
			"with fastest win",
			storage.Tally{Wins: 2, Losses: 1, Draws: 1, FastestWin: 8500 * time.Millisecond},
			"4 rounds: 2 won, 1 lost, 1 drawn (fastest win 8.50s)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TallyLine(tt.tally); got != tt.want {
				t.Errorf("TallyLine() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestHistoryModelView(t *testing.T) {
	m := NewHistoryModel(nil, storage.Tally{}, 80, 24)
	view := m.View()
	if !strings.Contains(view, "ROUND HISTORY") || !strings.Contains(view, "No rounds recorded yet.") {
		t.Errorf("empty history view = %q", view)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit the history screen")
	}
	if next.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
