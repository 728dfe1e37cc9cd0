// Package app runs the dodgeball screens: home, settings and play.
// It routes input to the active screen, owns the current Settings and the
// running Round, and draws through core.Renderer.
package app

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/core"
	"github.com/vovakirdan/dodgeball/internal/dodgeball"
)

// Screen identifies the active screen.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenSettings
	ScreenPlay
)

// String returns the screen name used in logs.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenSettings:
		return "settings"
	case ScreenPlay:
		return "play"
	default:
		return "unknown"
	}
}

// Options are the collaborators of an App. Config, Assets and Clock are
// required; the rest have defaults.
type Options struct {
	Config   config.Config
	Assets   core.AssetStore
	Clock    core.Clock
	Rand     *rand.Rand    // Defaults to a time-seeded source
	Logger   *log.Logger   // Defaults to a discarding logger
	Recorder RoundRecorder // Optional round history
}

// App is one game instance: exactly one active screen, the settings it
// edits and the round it plays.
type App struct {
	cfg      config.Config
	field    core.Box
	settings *dodgeball.Settings
	assets   core.AssetStore
	clock    core.Clock
	rng      *rand.Rand
	logger   *log.Logger
	recorder RoundRecorder

	active      Screen
	backgrounds []core.Image
	round       *dodgeball.Round
	recorded    bool

	home           homeScreen
	settingsScreen settingsScreen
	play           playScreen
}

// New creates an App on the home screen. Every configured asset is loaded
// once up front so that a missing file fails here rather than mid-game.
func New(opts Options) (*App, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("app: invalid config: %w", err)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	cfg := opts.Config
	a := &App{
		cfg:      cfg,
		field:    core.NewBox(0, 0, float64(cfg.Playfield.Width), float64(cfg.Playfield.Height)),
		settings: dodgeball.NewSettings(cfg),
		assets:   opts.Assets,
		clock:    opts.Clock,
		rng:      opts.Rand,
		logger:   opts.Logger,
		recorder: opts.Recorder,
		active:   ScreenHome,
	}
	a.home = newHomeScreen(a.field)
	a.settingsScreen = newSettingsScreen(a.field)
	a.play = newPlayScreen(a.field)

	if err := a.preload(); err != nil {
		return nil, err
	}
	return a, nil
}

// preload loads the backgrounds and the sprites at their initial sizes.
func (a *App) preload() error {
	full := core.Size{W: a.cfg.Playfield.Width, H: a.cfg.Playfield.Height}
	for _, name := range a.cfg.Assets.Backgrounds {
		img, err := a.assets.LoadImage(name, full)
		if err != nil {
			return fmt.Errorf("app: background: %w", err)
		}
		a.backgrounds = append(a.backgrounds, img)
	}
	if _, err := a.sprites(); err != nil {
		return err
	}
	a.logger.Debug("assets loaded", "backgrounds", len(a.backgrounds), "frames", a.cfg.Assets.HumanFrameCount)
	return nil
}

// sprites loads the round images at the current settings' sizes.
func (a *App) sprites() (dodgeball.Sprites, error) {
	assets := a.cfg.Assets
	frames, err := a.assets.LoadAnimationFrames(assets.HumanFrames, assets.HumanFrameCount, core.Square(a.settings.HumanSize))
	if err != nil {
		return dodgeball.Sprites{}, fmt.Errorf("app: human frames: %w", err)
	}
	ai, err := a.assets.LoadImage(assets.AIImage, core.Square(a.settings.AISize))
	if err != nil {
		return dodgeball.Sprites{}, fmt.Errorf("app: ai image: %w", err)
	}
	projectile, err := a.assets.LoadImage(assets.ProjectileImage, core.Square(a.cfg.Rules.ProjectileSize))
	if err != nil {
		return dodgeball.Sprites{}, fmt.Errorf("app: projectile image: %w", err)
	}
	return dodgeball.Sprites{HumanFrames: frames, AI: ai, Projectile: projectile}, nil
}

// Active returns the active screen.
func (a *App) Active() Screen {
	return a.active
}

// Settings returns the settings edited on the settings screen.
func (a *App) Settings() *dodgeball.Settings {
	return a.settings
}

// Round returns the current round, or nil before the first Begin.
func (a *App) Round() *dodgeball.Round {
	return a.round
}

// Field returns the playfield rectangle.
func (a *App) Field() core.Box {
	return a.field
}

func (a *App) show(s Screen) {
	if a.active != s {
		a.logger.Debug("screen", "from", a.active, "to", s)
	}
	a.active = s
}

// startRound replaces the current round with a fresh one built from the
// current settings and enters the play screen.
func (a *App) startRound(now time.Time) error {
	sprites, err := a.sprites()
	if err != nil {
		return err
	}
	a.round = dodgeball.NewRound(a.settings, dodgeball.RulesFromConfig(a.cfg), a.field, sprites, now, a.rng)
	a.recorded = false
	a.show(ScreenPlay)
	a.logger.Info("round started",
		"human_speed", a.settings.HumanSpeed,
		"ai_speed", a.settings.AISpeed,
		"human_size", a.settings.HumanSize,
		"ai_size", a.settings.AISize,
	)
	return nil
}

// HandleEvent routes one edge-triggered event to the active screen.
// Quit events are handled by the Loop.
func (a *App) HandleEvent(ev core.Event, now time.Time) error {
	switch a.active {
	case ScreenHome:
		return a.home.handle(a, ev, now)
	case ScreenSettings:
		a.settingsScreen.handle(a, ev)
	case ScreenPlay:
		return a.play.handle(a, ev, now)
	}
	return nil
}

// Update advances the active screen by one tick. Only the play screen has
// per-tick state.
func (a *App) Update(in core.InputSource, now time.Time, dt float64) {
	if a.active != ScreenPlay || a.round == nil {
		return
	}
	a.round.Step(dodgeball.ControlsFrom(in), now, dt)
	if a.round.State.Over() && !a.recorded {
		a.finishRound(now)
	}
}

// finishRound logs and records a round that just ended.
func (a *App) finishRound(now time.Time) {
	a.recorded = true
	r := a.round
	sum := RoundSummary{
		Outcome:    r.State.Outcome(),
		Duration:   r.State.Elapsed(now),
		HumanBalls: r.Human.Balls,
		AIBalls:    r.AI.Balls,
		HumanSpeed: a.settings.HumanSpeed,
		AISpeed:    a.settings.AISpeed,
		HumanSize:  a.settings.HumanSize,
		AISize:     a.settings.AISize,
	}
	a.logger.Info("round over", "outcome", sum.Outcome, "duration", sum.Duration.Round(time.Millisecond))

	if a.recorder == nil {
		return
	}
	if err := a.recorder.RecordRound(sum); err != nil {
		a.logger.Warn("cannot record round", "err", err)
	}
}

// Draw renders the active screen over the selected background.
func (a *App) Draw(dst core.Renderer, now time.Time) {
	if bg := a.background(); bg != nil {
		dst.DrawImage(bg, core.V(a.field.X, a.field.Y))
	}
	switch a.active {
	case ScreenHome:
		a.home.draw(dst)
	case ScreenSettings:
		a.settingsScreen.draw(dst, a.settings, a.cfg.Assets.Backgrounds)
	case ScreenPlay:
		a.play.draw(dst, a.round, now)
	}
}

func (a *App) background() core.Image {
	i := a.settings.Background
	if i < 0 || i >= len(a.backgrounds) {
		return nil
	}
	return a.backgrounds[i]
}
