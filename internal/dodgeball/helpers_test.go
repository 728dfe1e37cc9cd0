package dodgeball

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/core"
)

type testImage struct {
	name string
	size core.Size
}

func (i testImage) Size() core.Size { return i.size }

var (
	testField = core.NewBox(0, 0, 800, 600)
	testStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
)

func testSprites() Sprites {
	frames := make([]core.Image, 21)
	for i := range frames {
		frames[i] = testImage{name: "skeleton-run", size: core.Square(50)}
	}
	return Sprites{
		HumanFrames: frames,
		AI:          testImage{name: "ai.png", size: core.Square(50)},
		Projectile:  testImage{name: "fireball.png", size: core.Square(20)},
	}
}

func newTestRound(mutate func(*config.Config)) *Round {
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewRound(NewSettings(cfg), RulesFromConfig(cfg), testField, testSprites(), testStart, rand.New(rand.NewSource(42)))
}
