package app

import (
	"fmt"

	"github.com/vovakirdan/dodgeball/internal/core"
	"github.com/vovakirdan/dodgeball/internal/dodgeball"
)

const (
	settingsTitle   = "Settings"
	settingsRowTop  = 150
	settingsRowStep = 60
	settingsLabelX  = 100
	settingsMinusX  = 400
	settingsPlusX   = 500
	settingsButtonW = 50
	settingsButtonH = 40
)

// settingsRow is one adjustable field with its minus and plus buttons.
type settingsRow struct {
	field dodgeball.Field
	label core.Vec2
	minus Button
	plus  Button
}

type settingsScreen struct {
	field core.Box
	rows  []settingsRow
	back  Button
}

func newSettingsScreen(field core.Box) settingsScreen {
	s := settingsScreen{
		field: field,
		back:  Button{Label: "Back", Box: core.NewBox(field.X+field.W/2-50, field.Y+500, 100, 50)},
	}
	for i, f := range dodgeball.Fields {
		y := field.Y + settingsRowTop + float64(i*settingsRowStep)
		s.rows = append(s.rows, settingsRow{
			field: f,
			label: core.V(field.X+settingsLabelX, y),
			minus: Button{Label: "-", Box: core.NewBox(field.X+settingsMinusX, y, settingsButtonW, settingsButtonH)},
			plus:  Button{Label: "+", Box: core.NewBox(field.X+settingsPlusX, y, settingsButtonW, settingsButtonH)},
		})
	}
	return s
}

func (s settingsScreen) handle(a *App, ev core.Event) {
	if pressed(ev, core.KeyBack) {
		a.show(ScreenHome)
		return
	}
	p, ok := clicked(ev)
	if !ok {
		return
	}
	if s.back.Hit(p) {
		a.show(ScreenHome)
		return
	}
	for _, row := range s.rows {
		delta := 0
		switch {
		case row.minus.Hit(p):
			delta = -1
		case row.plus.Hit(p):
			delta = 1
		default:
			continue
		}
		if a.settings.Adjust(row.field, delta) {
			a.logger.Debug("setting changed", "field", row.field, "value", a.settings.Value(row.field))
		}
		return
	}
}

func (s settingsScreen) draw(dst core.Renderer, settings *dodgeball.Settings, backgrounds []string) {
	drawCenteredX(dst, s.field, settingsTitle, s.field.Y+50)
	for _, row := range s.rows {
		dst.DrawText(rowLabel(row.field, settings, backgrounds), textColor, row.label)
		row.minus.Draw(dst)
		row.plus.Draw(dst)
	}
	s.back.Draw(dst)
}

// rowLabel renders "<Label>: <value>"; the background row shows the file name.
func rowLabel(f dodgeball.Field, settings *dodgeball.Settings, backgrounds []string) string {
	v := settings.Value(f)
	if f == dodgeball.FieldBackground && v >= 0 && v < len(backgrounds) {
		return fmt.Sprintf("%s: %s", f, backgrounds[v])
	}
	return fmt.Sprintf("%s: %d", f, v)
}
