package tui

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodgeball/internal/app"
	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/core"
)

// Options configure one terminal game session.
type Options struct {
	Config        config.Config
	Width, Height int   // Terminal size in cells
	Seed          int64 // 0 seeds from the current time
	Clock         core.Clock
	Logger        *log.Logger
	Recorder      app.RoundRecorder
	ScreenshotDir string // Empty disables screenshots
}

// Model is the Bubble Tea model running one dodgeball App.
type Model struct {
	loop          *app.Loop
	input         *Input
	renderer      *Renderer
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	tickRate      int
	screenshotDir string
	quitting      bool
	err           error
}

// NewModel builds the app and its terminal collaborators.
func NewModel(opts Options) (Model, error) {
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	cfg := opts.Config
	a, err := app.New(app.Options{
		Config:   cfg,
		Assets:   NewGlyphStore(cfg.Assets),
		Clock:    opts.Clock,
		Rand:     rand.New(rand.NewSource(opts.Seed)),
		Logger:   opts.Logger,
		Recorder: opts.Recorder,
	})
	if err != nil {
		return Model{}, err
	}

	cols, rows := gameArea(opts.Width, opts.Height)
	vp := NewViewport(a.Field(), cols, rows)
	input := NewInput(vp, opts.Clock)
	h := help.New()
	h.Width = opts.Width

	return Model{
		loop:          app.NewLoop(a, input, opts.Clock),
		input:         input,
		renderer:      NewRenderer(vp),
		keys:          NewKeyMap(cfg.Keys),
		help:          h,
		logger:        opts.Logger,
		tickRate:      cfg.TickRate,
		screenshotDir: opts.ScreenshotDir,
	}, nil
}

// gameArea returns the cells left for the playfield. The last row shows
// the key help.
func gameArea(width, height int) (cols, rows int) {
	return max(width, 1), max(height-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.renderer.Resize(gameArea(msg.Width, msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Quit goes through the loop like
// every other event.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.IsQuit(msg):
		m.input.Quit()
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
	default:
		m.input.Press(m.keys.Lookup(msg))
	}
	return m, nil
}

// handleMouse tracks the pointer and records left clicks.
func (m Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.input.Click(msg.X, msg.Y)
		return
	}
	m.input.MoveMouse(msg.X, msg.Y)
}

// handleTick runs one loop step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	err := m.loop.Step(m.renderer)
	switch {
	case errors.Is(err, app.ErrQuit):
		m.quitting = true
		return m, tea.Quit
	case err != nil:
		m.logger.Error("game loop failed", "err", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// saveScreenshot saves the last presented frame as plain text.
func (m Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("dodgeball_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.renderer.Front().String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the last presented frame and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.renderer.Front()) + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
}

// Err returns the error that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}

// App returns the running app.
func (m Model) App() *app.App {
	return m.loop.App()
}

// Run starts a local terminal session and blocks until it ends.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
