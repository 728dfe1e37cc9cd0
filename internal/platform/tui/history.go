package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodgeball/internal/dodgeball"
	"github.com/vovakirdan/dodgeball/internal/storage"
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// HistoryModel shows recorded rounds in a scrollable table.
type HistoryModel struct {
	rounds   []storage.RoundRecord
	tally    storage.Tally
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history view over already loaded rounds.
func NewHistoryModel(rounds []storage.RoundRecord, tally storage.Tally, width, height int) HistoryModel {
	m := HistoryModel{
		rounds: rounds,
		tally:  tally,
		help:   help.New(),
		keys:   DefaultHistoryKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.table.SetRows(historyRows(rounds))
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Winner", Width: 14},
		{Title: "Time", Width: 9},
		{Title: "Balls", Width: 9},
		{Title: "Speed", Width: 7},
		{Title: "Size", Width: 7},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// historyRows formats one table row per round. Balls, speed and size are
// shown as human/ai.
func historyRows(rounds []storage.RoundRecord) []table.Row {
	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			WinnerLabel(r.Outcome),
			fmt.Sprintf("%.2fs", r.Duration.Seconds()),
			fmt.Sprintf("%d/%d", r.HumanBalls, r.AIBalls),
			fmt.Sprintf("%d/%d", r.HumanSpeed, r.AISpeed),
			fmt.Sprintf("%d/%d", r.HumanSize, r.AISize),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// WinnerLabel turns a stored outcome into the banner name.
func WinnerLabel(outcome string) string {
	for _, o := range []dodgeball.Outcome{dodgeball.HumanWins, dodgeball.AIWins, dodgeball.Draw} {
		if o.String() == outcome {
			return o.Winner()
		}
	}
	return outcome
}

// TallyLine summarizes a tally on one line.
func TallyLine(t storage.Tally) string {
	line := fmt.Sprintf("%d rounds: %d won, %d lost, %d drawn", t.Total(), t.Wins, t.Losses, t.Draws)
	if t.FastestWin > 0 {
		line += fmt.Sprintf(" (fastest win %.2fs)", t.FastestWin.Seconds())
	}
	return line
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(historyRows(m.rounds))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("ROUND HISTORY"))
	b.WriteString("\n")
	b.WriteString(TallyLine(m.tally))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No rounds recorded yet.\nPlay a round to start the history!")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunHistory shows the history screen until the user quits.
func RunHistory(rounds []storage.RoundRecord, tally storage.Tally, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(rounds, tally, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
