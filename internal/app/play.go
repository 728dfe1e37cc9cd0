package app

import (
	"fmt"
	"time"

	"github.com/vovakirdan/dodgeball/internal/core"
	"github.com/vovakirdan/dodgeball/internal/dodgeball"
)

const hudMargin = 10

type playScreen struct {
	field   core.Box
	restart Button
}

func newPlayScreen(field core.Box) playScreen {
	return playScreen{
		field:   field,
		restart: Button{Label: "Restart", Box: core.NewBox(field.X+field.W/2-50, field.Y+field.H/2+50, 100, 50)},
	}
}

func (p playScreen) handle(a *App, ev core.Event, now time.Time) error {
	r := a.round
	if r == nil {
		return nil
	}
	if !r.State.Over() {
		if pressed(ev, core.KeyThrow) {
			r.HumanThrow()
		}
		return nil
	}
	if pressed(ev, core.KeyConfirm) {
		return a.startRound(now)
	}
	if pos, ok := clicked(ev); ok && p.restart.Hit(pos) {
		return a.startRound(now)
	}
	return nil
}

func (p playScreen) draw(dst core.Renderer, r *dodgeball.Round, now time.Time) {
	if r == nil {
		return
	}
	r.Draw(dst)

	f := p.field
	dst.DrawText(fmt.Sprintf("Your Balls: %d", r.Human.Balls), textColor, core.V(f.X+hudMargin, f.Y+hudMargin))

	aiText := fmt.Sprintf("AI Balls: %d", r.AI.Balls)
	aiSize := dst.MeasureText(aiText)
	dst.DrawText(aiText, textColor, core.V(f.Right()-aiSize.X-hudMargin, f.Y+hudMargin))

	drawCenteredX(dst, f, fmt.Sprintf("Time: %.2fs", r.State.Elapsed(now).Seconds()), f.Y+hudMargin)

	if !r.State.Over() {
		return
	}
	result := r.State.Outcome().Winner() + " wins!"
	size := dst.MeasureText(result)
	drawCenteredX(dst, f, result, f.Y+f.H/2-size.Y/2)
	p.restart.Draw(dst)
}
