// Package config provides YAML-based configuration loading for the dodgeball
// game: playfield geometry, default settings, round rules, asset names and
// terminal key bindings.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for the game.
type Config struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	TickRate  int             `yaml:"tick_rate"`
	Settings  SettingsConfig  `yaml:"settings"`
	Limits    LimitsConfig    `yaml:"limits"`
	Rules     RulesConfig     `yaml:"rules"`
	Assets    AssetsConfig    `yaml:"assets"`
	Keys      KeysConfig      `yaml:"keys"`
}

// PlayfieldConfig defines the size of the playfield in playfield units.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SettingsConfig holds the initial values of the settings screen.
type SettingsConfig struct {
	HumanSpeed int `yaml:"human_speed"`
	AISpeed    int `yaml:"ai_speed"`
	HumanSize  int `yaml:"human_size"`
	AISize     int `yaml:"ai_size"`
	Background int `yaml:"background"`
}

// LimitsConfig defines the floors the settings screen clamps to.
type LimitsConfig struct {
	MinSpeed int `yaml:"min_speed"`
	MinSize  int `yaml:"min_size"`
}

// RulesConfig defines round rules.
type RulesConfig struct {
	HumanBalls        int     `yaml:"human_balls"`
	AIBalls           int     `yaml:"ai_balls"`
	ProjectileSpeed   float64 `yaml:"projectile_speed"`
	ProjectileSize    int     `yaml:"projectile_size"`
	AIThrowCooldownMS int     `yaml:"ai_throw_cooldown_ms"`
	AIJitter          float64 `yaml:"ai_jitter"`
	AnimationInterval float64 `yaml:"animation_interval"` // Seconds between human sprite frames
	HumanStartX       float64 `yaml:"human_start_x"`      // Distance of the human spawn from the left edge
	AIStartInset      float64 `yaml:"ai_start_inset"`     // Distance of the AI spawn from the right edge
}

// AIThrowCooldown returns the AI throw cooldown as a duration.
func (r RulesConfig) AIThrowCooldown() time.Duration {
	return time.Duration(r.AIThrowCooldownMS) * time.Millisecond
}

// AssetsConfig names the images the game loads.
type AssetsConfig struct {
	Dir             string   `yaml:"dir"`
	HumanFrames     string   `yaml:"human_frames"` // Prefix; frames are <prefix>_<i>.png
	HumanFrameCount int      `yaml:"human_frame_count"`
	AIImage         string   `yaml:"ai_image"`
	ProjectileImage string   `yaml:"projectile_image"`
	Backgrounds     []string `yaml:"backgrounds"`
}

// KeysConfig maps logical keys to terminal key names (Bubble Tea notation).
type KeysConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Throw   []string `yaml:"throw"`
	Confirm []string `yaml:"confirm"`
	Back    []string `yaml:"back"`
	Quit    []string `yaml:"quit"`
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %dx%d", c.Playfield.Width, c.Playfield.Height))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Limits.MinSpeed < 1 || c.Limits.MinSize < 1 {
		errs = append(errs, errors.New("limits must be at least 1"))
	}
	if c.Settings.HumanSpeed < c.Limits.MinSpeed || c.Settings.AISpeed < c.Limits.MinSpeed {
		errs = append(errs, fmt.Errorf("speeds must be at least %d", c.Limits.MinSpeed))
	}
	if c.Settings.HumanSize < c.Limits.MinSize || c.Settings.AISize < c.Limits.MinSize {
		errs = append(errs, fmt.Errorf("sizes must be at least %d", c.Limits.MinSize))
	}
	if c.Rules.HumanBalls < 0 || c.Rules.AIBalls < 0 {
		errs = append(errs, errors.New("ball counts must not be negative"))
	}
	if c.Rules.ProjectileSpeed <= 0 || c.Rules.ProjectileSize <= 0 {
		errs = append(errs, errors.New("projectile speed and size must be positive"))
	}
	if c.Rules.AnimationInterval <= 0 {
		errs = append(errs, errors.New("animation_interval must be positive"))
	}
	if c.Assets.HumanFrameCount <= 0 {
		errs = append(errs, fmt.Errorf("human_frame_count must be positive, got %d", c.Assets.HumanFrameCount))
	}
	if len(c.Assets.Backgrounds) == 0 {
		errs = append(errs, errors.New("at least one background is required"))
	} else if c.Settings.Background < 0 || c.Settings.Background >= len(c.Assets.Backgrounds) {
		errs = append(errs, fmt.Errorf("background index %d out of range", c.Settings.Background))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named AI difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts AI speed and throw cooldown for a preset.
// Normal and unknown presets leave the config unchanged.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Settings.AISpeed = max(cfg.Limits.MinSpeed, cfg.Settings.AISpeed/2)
		cfg.Rules.AIThrowCooldownMS *= 2
	case DifficultyHard:
		cfg.Settings.AISpeed += cfg.Settings.AISpeed / 2
		cfg.Rules.AIThrowCooldownMS /= 2
		cfg.Rules.AIBalls *= 2
	}
}
