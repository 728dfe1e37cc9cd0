package app

import (
	"time"

	"github.com/vovakirdan/dodgeball/internal/core"
)

const homeTitle = "Dodgeball Game"

type homeScreen struct {
	field    core.Box
	begin    Button
	settings Button
}

func newHomeScreen(field core.Box) homeScreen {
	cx := field.X + field.W/2
	return homeScreen{
		field:    field,
		begin:    Button{Label: "Begin", Box: core.NewBox(cx-100, field.Y+250, 200, 50)},
		settings: Button{Label: "Settings", Box: core.NewBox(cx-100, field.Y+320, 200, 50)},
	}
}

func (h homeScreen) handle(a *App, ev core.Event, now time.Time) error {
	if pressed(ev, core.KeyConfirm) {
		return a.startRound(now)
	}
	p, ok := clicked(ev)
	if !ok {
		return nil
	}
	switch {
	case h.begin.Hit(p):
		return a.startRound(now)
	case h.settings.Hit(p):
		a.show(ScreenSettings)
	}
	return nil
}

func (h homeScreen) draw(dst core.Renderer) {
	drawCenteredX(dst, h.field, homeTitle, h.field.Y+100)
	h.begin.Draw(dst)
	h.settings.Draw(dst)
}
