package gui

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dodgeball/internal/app"
	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/core"
)

// Options configure a window session.
type Options struct {
	Config    config.Config
	AssetsDir string
	Seed      int64 // 0 seeds from the current time
	Logger    *log.Logger
	Recorder  app.RoundRecorder
}

// Game adapts an app.Loop to ebiten.Game. ebiten calls Update at the
// configured TPS, so one Update is one tick.
type Game struct {
	loop     *app.Loop
	input    *Input
	renderer *Renderer
	width    int
	height   int
}

// NewGame loads every sprite and builds the app.
func NewGame(opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	clock := core.SystemClock{}
	a, err := app.New(app.Options{
		Config:   opts.Config,
		Assets:   NewStore(opts.AssetsDir, opts.Logger),
		Clock:    clock,
		Rand:     rand.New(rand.NewSource(opts.Seed)),
		Logger:   opts.Logger,
		Recorder: opts.Recorder,
	})
	if err != nil {
		return nil, err
	}

	field := a.Field()
	input := NewInput(core.V(field.X, field.Y))
	return &Game{
		loop:     app.NewLoop(a, input, clock),
		input:    input,
		renderer: renderer,
		width:    int(field.W),
		height:   int(field.H),
	}, nil
}

// Update runs one tick. A quit event ends the game with ebiten.Termination.
func (g *Game) Update() error {
	g.input.Poll()
	err := g.loop.Update()
	if errors.Is(err, app.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw renders the current frame onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.setTarget(screen)
	g.loop.Draw(g.renderer)
}

// Layout keeps the logical screen at the playfield size; ebiten scales it
// to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Dodgeball")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(opts.Config.TickRate)

	return ebiten.RunGame(g)
}
