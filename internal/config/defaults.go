package config

import (
	_ "embed"
)

//go:embed defaults/dodgeball.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Playfield: PlayfieldConfig{Width: 800, Height: 600},
		TickRate:  60,
		Settings: SettingsConfig{
			HumanSpeed: 20,
			AISpeed:    20,
			HumanSize:  50,
			AISize:     50,
			Background: 0,
		},
		Limits: LimitsConfig{
			MinSpeed: 1,
			MinSize:  10,
		},
		Rules: RulesConfig{
			HumanBalls:        100,
			AIBalls:           10,
			ProjectileSpeed:   7,
			ProjectileSize:    20,
			AIThrowCooldownMS: 2000,
			AIJitter:          1,
			AnimationInterval: 0.1,
			HumanStartX:       100,
			AIStartInset:      100,
		},
		Assets: AssetsConfig{
			Dir:             "assets",
			HumanFrames:     "skeleton-run",
			HumanFrameCount: 21,
			AIImage:         "ai.png",
			ProjectileImage: "fireball.png",
			Backgrounds:     []string{"background.png", "background2.png", "background3.png"},
		},
		Keys: KeysConfig{
			Up:      []string{"up", "w"},
			Down:    []string{"down", "s"},
			Left:    []string{"left", "a"},
			Right:   []string{"right", "d"},
			Throw:   []string{" ", "f"},
			Confirm: []string{"enter"},
			Back:    []string{"esc", "b"},
			Quit:    []string{"ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
