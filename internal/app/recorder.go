package app

import (
	"time"

	"github.com/vovakirdan/dodgeball/internal/dodgeball"
)

// RoundSummary describes a finished round and the settings it was played with.
type RoundSummary struct {
	Outcome    dodgeball.Outcome
	Duration   time.Duration
	HumanBalls int
	AIBalls    int
	HumanSpeed int
	AISpeed    int
	HumanSize  int
	AISize     int
}

// RoundRecorder persists finished rounds.
// Implemented by storage.Store; failures are logged and never end the game.
type RoundRecorder interface {
	RecordRound(sum RoundSummary) error
}
