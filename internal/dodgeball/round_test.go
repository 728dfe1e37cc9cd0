package dodgeball

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/core"
)

// slowAI keeps the AI nearly still so hand-placed projectiles stay on target.
func slowAI(cfg *config.Config) {
	cfg.Settings.AISpeed = 1
	cfg.Rules.AIJitter = 0
}

type drawCall struct {
	img core.Image
	pos core.Vec2
}

type recordingRenderer struct {
	images []drawCall
}

func (r *recordingRenderer) DrawImage(img core.Image, pos core.Vec2) {
	r.images = append(r.images, drawCall{img: img, pos: pos})
}
func (r *recordingRenderer) DrawRect(core.Box, core.Color) {}
func (r *recordingRenderer) DrawText(string, core.Color, core.Vec2) core.Vec2 { return core.Vec2{} }
func (r *recordingRenderer) MeasureText(string) core.Vec2 { return core.Vec2{} }
func (r *recordingRenderer) Present() error { return nil }

func TestNewRoundSpawns(t *testing.T) {
	r := newTestRound(nil)

	assert.Equal(t, core.V(100, 300), r.Human.Pos)
	assert.Equal(t, core.V(700, 300), r.AI.Pos)
	assert.Equal(t, 100, r.Human.Balls)
	assert.Equal(t, 10, r.AI.Balls)
	assert.Equal(t, InProgress, r.State.Outcome())
	assert.Empty(t, r.Projectiles)
	assert.Equal(t, testField, r.Field())
}

func TestNewRoundUsesSettings(t *testing.T) {
	r := newTestRound(func(cfg *config.Config) {
		cfg.Settings.HumanSpeed = 5
		cfg.Settings.AISize = 80
	})

	assert.Equal(t, 5.0, r.Human.Speed)
	assert.Equal(t, 80, r.AI.Size)
}

func TestOversizedAvatarsSpawnInsideField(t *testing.T) {
	r := newTestRound(func(cfg *config.Config) {
		cfg.Settings.HumanSize = 250
		cfg.Settings.AISize = 250
	})

	assert.True(t, r.Human.Box().Inside(r.Field()))
	assert.True(t, r.AI.Box().Inside(r.Field()))
	assert.Equal(t, core.V(125, 300), r.Human.Pos)
	assert.Equal(t, core.V(675, 300), r.AI.Pos)

	r.Step(Controls{}, testStart, 1.0/60)
	assert.True(t, r.Human.Box().Inside(r.Field()))
}

func TestHumanHitsAI(t *testing.T) {
	r := newTestRound(slowAI)
	r.Projectiles = append(r.Projectiles, &Projectile{Pos: r.AI.Pos, Owner: SideHuman, Size: 20})

	hitAt := testStart.Add(time.Second)
	r.Step(Controls{}, hitAt, 1.0/60)

	assert.Equal(t, HumanWins, r.State.Outcome())
	assert.Equal(t, "Human Player", r.State.Outcome().Winner())
	assert.Empty(t, r.Projectiles, "the scoring projectile is removed")
	assert.Equal(t, time.Second, r.State.Elapsed(testStart.Add(10*time.Second)), "elapsed time freezes at the hit")
}

func TestAIHitsHuman(t *testing.T) {
	r := newTestRound(slowAI)
	r.Projectiles = append(r.Projectiles, &Projectile{Pos: r.Human.Pos, Owner: SideAI, Size: 20})

	r.Step(Controls{}, testStart.Add(time.Second), 1.0/60)

	assert.Equal(t, AIWins, r.State.Outcome())
	assert.Equal(t, "AI Opponent", r.State.Outcome().Winner())
}

func TestProjectileNeverHitsOwner(t *testing.T) {
	r := newTestRound(slowAI)
	own := &Projectile{Pos: r.Human.Pos, Owner: SideHuman, Size: 20}
	r.Projectiles = append(r.Projectiles, own)

	r.Step(Controls{}, testStart.Add(time.Second), 1.0/60)

	assert.Equal(t, InProgress, r.State.Outcome())
	require.Len(t, r.Projectiles, 1)
	assert.Same(t, own, r.Projectiles[0])
}

func TestSimultaneousHitsResolveInThrowOrder(t *testing.T) {
	tests := []struct {
		name       string
		humanFirst bool
		want       Outcome
	}{
		{"human projectile first", true, HumanWins},
		{"ai projectile first", false, AIWins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRound(slowAI)
			onAI := &Projectile{Pos: r.AI.Pos, Owner: SideHuman, Size: 20}
			onHuman := &Projectile{Pos: r.Human.Pos, Owner: SideAI, Size: 20}
			if tt.humanFirst {
				r.Projectiles = []*Projectile{onAI, onHuman}
			} else {
				r.Projectiles = []*Projectile{onHuman, onAI}
			}

			r.Step(Controls{}, testStart.Add(time.Second), 1.0/60)

			assert.Equal(t, tt.want, r.State.Outcome())
			assert.Len(t, r.Projectiles, 1, "only the scoring projectile is removed")
		})
	}
}

func TestOutOfBoundsProjectileRemovedWithinOneTick(t *testing.T) {
	r := newTestRound(slowAI)
	r.Projectiles = append(r.Projectiles, &Projectile{Pos: core.V(805, 100), Velocity: core.V(7, 0), Owner: SideHuman, Size: 20})

	r.Step(Controls{}, testStart.Add(time.Second), 1.0/60)

	assert.Empty(t, r.Projectiles)
	assert.Equal(t, InProgress, r.State.Outcome())
}

func TestProjectileFliesStraight(t *testing.T) {
	r := newTestRound(slowAI)
	require.True(t, r.HumanThrow())
	require.Len(t, r.Projectiles, 1)

	for range 10 {
		r.Step(Controls{}, testStart.Add(time.Second), 1.0/60)
	}

	require.Len(t, r.Projectiles, 1)
	assert.Equal(t, core.V(170, 300), r.Projectiles[0].Pos)
}

func TestDrawWhenEveryoneIsOut(t *testing.T) {
	r := newTestRound(nil)
	r.Human.Balls = 0
	r.AI.Balls = 0

	at := testStart.Add(1500 * time.Millisecond)
	r.Step(Controls{}, at, 1.0/60)

	assert.Equal(t, Draw, r.State.Outcome())
	assert.Equal(t, "No one", r.State.Outcome().Winner())
	assert.Equal(t, 1500*time.Millisecond, r.State.Elapsed(at.Add(time.Minute)))
}

func TestNoDrawWhileProjectileInFlight(t *testing.T) {
	r := newTestRound(slowAI)
	r.Human.Balls = 0
	r.AI.Balls = 0
	r.Projectiles = append(r.Projectiles, &Projectile{Pos: core.V(400, 50), Velocity: core.V(1, 0), Owner: SideHuman, Size: 20})

	r.Step(Controls{}, testStart.Add(time.Second), 1.0/60)

	assert.Equal(t, InProgress, r.State.Outcome())
}

func TestFinishedRoundIsFrozen(t *testing.T) {
	r := newTestRound(nil)
	r.Human.Balls = 0
	r.AI.Balls = 0
	r.Step(Controls{}, testStart, 1.0/60)
	require.Equal(t, Draw, r.State.Outcome())

	humanPos, aiPos := r.Human.Pos, r.AI.Pos
	r.Step(Controls{Up: true, Left: true}, testStart.Add(time.Minute), 1.0/60)

	assert.Equal(t, humanPos, r.Human.Pos)
	assert.Equal(t, aiPos, r.AI.Pos)
	assert.False(t, r.HumanThrow())
	assert.False(t, r.State.Finish(HumanWins, testStart.Add(time.Hour)))
	assert.Equal(t, Draw, r.State.Outcome())
}

func TestRoundStateFinishOnce(t *testing.T) {
	s := NewRoundState(testStart)

	assert.False(t, s.Finish(InProgress, testStart.Add(time.Second)))
	assert.False(t, s.Over())
	assert.Equal(t, 3*time.Second, s.Elapsed(testStart.Add(3*time.Second)))

	assert.True(t, s.Finish(AIWins, testStart.Add(4*time.Second)))
	assert.False(t, s.Finish(HumanWins, testStart.Add(5*time.Second)))
	assert.Equal(t, AIWins, s.Outcome())
	assert.Equal(t, 4*time.Second, s.Elapsed(testStart.Add(time.Hour)))
}

func TestBallCountsNeverIncrease(t *testing.T) {
	r := newTestRound(nil)
	now := testStart
	humanPrev, aiPrev := r.Human.Balls, r.AI.Balls

	for tick := range 1200 {
		now = now.Add(time.Second / 60)
		r.HumanThrow()
		r.Step(Controls{Down: tick%40 < 20, Up: tick%40 >= 20}, now, 1.0/60)

		require.LessOrEqual(t, r.Human.Balls, humanPrev)
		require.LessOrEqual(t, r.AI.Balls, aiPrev)
		require.GreaterOrEqual(t, r.Human.Balls, 0)
		require.GreaterOrEqual(t, r.AI.Balls, 0)
		humanPrev, aiPrev = r.Human.Balls, r.AI.Balls
	}
}

func TestAIThrowsAfterCooldown(t *testing.T) {
	r := newTestRound(slowAI)

	r.Step(Controls{}, testStart.Add(2*time.Second), 1.0/60)
	assert.Equal(t, 10, r.AI.Balls)

	r.Step(Controls{}, testStart.Add(2*time.Second+time.Millisecond), 1.0/60)
	assert.Equal(t, 9, r.AI.Balls)
	require.Len(t, r.Projectiles, 1)
	assert.Equal(t, SideAI, r.Projectiles[0].Owner)
	assert.Less(t, r.Projectiles[0].Velocity.X, 0.0, "aimed left at the human")
}

func TestRoundDrawOrder(t *testing.T) {
	r := newTestRound(nil)
	require.True(t, r.HumanThrow())

	var dst recordingRenderer
	r.Draw(&dst)

	require.Len(t, dst.images, 3)
	assert.Equal(t, r.Human.Image(), dst.images[0].img)
	assert.Equal(t, core.V(75, 275), dst.images[0].pos)
	assert.Equal(t, r.AI.Image(), dst.images[1].img)
	assert.Equal(t, core.V(675, 275), dst.images[1].pos)
	assert.Equal(t, core.V(90, 290), dst.images[2].pos)
}
