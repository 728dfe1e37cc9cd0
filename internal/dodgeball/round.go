package dodgeball

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/core"
)

// Outcome is the result of a round.
type Outcome int

const (
	InProgress Outcome = iota
	HumanWins
	AIWins
	Draw
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case HumanWins:
		return "human_wins"
	case AIWins:
		return "ai_wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Winner returns the name shown in the "<winner> wins!" banner.
func (o Outcome) Winner() string {
	switch o {
	case HumanWins:
		return "Human Player"
	case AIWins:
		return "AI Opponent"
	case Draw:
		return "No one"
	default:
		return ""
	}
}

// outcomeFor maps the side that scored a hit to the outcome.
func outcomeFor(winner Side) Outcome {
	if winner == SideHuman {
		return HumanWins
	}
	return AIWins
}

// RoundState tracks round timing and outcome. The outcome moves forward
// exactly once, from InProgress to a terminal value.
type RoundState struct {
	start   time.Time
	end     time.Time
	outcome Outcome
}

// NewRoundState starts a round at start.
func NewRoundState(start time.Time) RoundState {
	return RoundState{start: start, outcome: InProgress}
}

// Finish records a terminal outcome at the given time.
// Returns false, changing nothing, when the round already ended.
func (s *RoundState) Finish(o Outcome, at time.Time) bool {
	if s.outcome != InProgress || o == InProgress {
		return false
	}
	s.outcome = o
	s.end = at
	return true
}

// Outcome returns the current outcome.
func (s RoundState) Outcome() Outcome {
	return s.outcome
}

// Over reports whether the round reached a terminal outcome.
func (s RoundState) Over() bool {
	return s.outcome != InProgress
}

// Elapsed returns the running time, frozen at the end time once over.
func (s RoundState) Elapsed(now time.Time) time.Duration {
	if s.Over() {
		return s.end.Sub(s.start)
	}
	return now.Sub(s.start)
}

// Rules are the fixed per-round parameters.
type Rules struct {
	HumanBalls        int
	AIBalls           int
	ProjectileSpeed   float64
	ProjectileSize    float64
	AIThrowCooldown   time.Duration
	AIJitter          float64
	AnimationInterval float64
	HumanStartX       float64
	AIStartInset      float64
}

// RulesFromConfig extracts the round rules from the game config.
func RulesFromConfig(cfg config.Config) Rules {
	r := cfg.Rules
	return Rules{
		HumanBalls:        r.HumanBalls,
		AIBalls:           r.AIBalls,
		ProjectileSpeed:   r.ProjectileSpeed,
		ProjectileSize:    float64(r.ProjectileSize),
		AIThrowCooldown:   r.AIThrowCooldown(),
		AIJitter:          r.AIJitter,
		AnimationInterval: r.AnimationInterval,
		HumanStartX:       r.HumanStartX,
		AIStartInset:      r.AIStartInset,
	}
}

// Sprites are the images a round draws with.
type Sprites struct {
	HumanFrames []core.Image
	AI          core.Image
	Projectile  core.Image
}

// Round is one play-through: both avatars, the live projectiles and the
// round state.
type Round struct {
	Human       *Avatar
	AI          *Avatar
	Projectiles []*Projectile
	State       RoundState

	field      core.Box
	rules      Rules
	sprites    Sprites
	collisions *CollisionSystem
	rng        *rand.Rand
}

// NewRound creates a round from the current settings. Avatars spawn on the
// vertical center line, the human near the left edge and the AI near the right,
// shifted inward when their size would cross the field edge.
func NewRound(s *Settings, rules Rules, field core.Box, sprites Sprites, now time.Time, rng *rand.Rand) *Round {
	midY := field.Y + field.H/2
	hs, as := float64(s.HumanSize), float64(s.AISize)
	humanPos := field.ClampCenter(core.V(field.X+rules.HumanStartX, midY), hs, hs)
	aiPos := field.ClampCenter(core.V(field.Right()-rules.AIStartInset, midY), as, as)
	human := NewHuman(humanPos, s.HumanSpeed, s.HumanSize, rules.HumanBalls, sprites.HumanFrames)
	ai := NewAI(aiPos, s.AISpeed, s.AISize, rules.AIBalls, sprites.AI, now)

	return &Round{
		Human:      human,
		AI:         ai,
		State:      NewRoundState(now),
		field:      field,
		rules:      rules,
		sprites:    sprites,
		collisions: NewCollisionSystem(field),
		rng:        rng,
	}
}

// Field returns the playfield rectangle.
func (r *Round) Field() core.Box {
	return r.field
}

// HumanThrow throws one human ball along the human's facing.
// Returns false when the round is over or the human has no balls.
func (r *Round) HumanThrow() bool {
	if r.State.Over() {
		return false
	}
	p, ok := r.Human.Throw(r.AI.Pos, r.rules.ProjectileSpeed, r.rules.ProjectileSize, r.sprites.Projectile)
	if ok {
		r.Projectiles = append(r.Projectiles, p)
	}
	return ok
}

// Step advances the round by one tick: human move, AI move, AI throw,
// projectile flight, hit detection, then the draw check. A finished round
// does not change.
func (r *Round) Step(in Controls, now time.Time, dt float64) {
	if r.State.Over() {
		return
	}

	r.Human.Move(HumanDisplacement(in, r.Human.Speed), r.field)
	r.Human.Animate(dt, r.rules.AnimationInterval)

	r.AI.Move(AIDisplacement(r.AI.Pos, r.Human.Pos, r.AI.Speed, r.rules.AIJitter, r.rng), r.field)
	if p, ok := r.AI.TryThrow(now, r.rules.AIThrowCooldown, r.Human.Pos, r.rules.ProjectileSpeed, r.rules.ProjectileSize, r.sprites.Projectile); ok {
		r.Projectiles = append(r.Projectiles, p)
	}

	for _, p := range r.Projectiles {
		p.Update(r.field)
	}
	r.prune()

	if hit, ok := r.collisions.Resolve(r.Human, r.AI, r.Projectiles); ok {
		r.State.Finish(outcomeFor(hit.Winner()), now)
		hit.Projectile.dead = true
		r.prune()
		return
	}

	if r.Human.Balls == 0 && r.AI.Balls == 0 && len(r.Projectiles) == 0 {
		r.State.Finish(Draw, now)
	}
}

// prune removes dead projectiles, keeping creation order.
func (r *Round) prune() {
	r.Projectiles = slices.DeleteFunc(r.Projectiles, func(p *Projectile) bool {
		if p.Dead() {
			r.collisions.Forget(p)
			return true
		}
		return false
	})
}

// Draw renders the avatars and projectiles.
func (r *Round) Draw(dst core.Renderer) {
	for _, a := range []*Avatar{r.Human, r.AI} {
		if img := a.Image(); img != nil {
			b := a.Box()
			dst.DrawImage(img, core.V(b.X, b.Y))
		}
	}
	for _, p := range r.Projectiles {
		if p.Image != nil {
			b := p.Box()
			dst.DrawImage(p.Image, core.V(b.X, b.Y))
		}
	}
}
