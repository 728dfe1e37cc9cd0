package app

import "github.com/vovakirdan/dodgeball/internal/core"

const (
	textColor        = core.ColorWhite
	buttonColor      = core.ColorLightGray
	buttonLabelColor = core.ColorBlack
)

// Button is a clickable labelled rectangle.
type Button struct {
	Label string
	Box   core.Box
}

// Hit reports whether a click at p lands on the button.
func (b Button) Hit(p core.Vec2) bool {
	return b.Box.Contains(p)
}

// Draw fills the button and centers its label inside.
func (b Button) Draw(dst core.Renderer) {
	dst.DrawRect(b.Box, buttonColor)
	size := dst.MeasureText(b.Label)
	dst.DrawText(b.Label, buttonLabelColor, core.V(
		b.Box.X+(b.Box.W-size.X)/2,
		b.Box.Y+(b.Box.H-size.Y)/2,
	))
}

// drawCenteredX draws text horizontally centered on the field at height y.
func drawCenteredX(dst core.Renderer, field core.Box, text string, y float64) {
	size := dst.MeasureText(text)
	dst.DrawText(text, textColor, core.V(field.X+(field.W-size.X)/2, y))
}

// clicked returns the click position of a mouse event.
func clicked(ev core.Event) (core.Vec2, bool) {
	if ev.Kind != core.EventMouseClicked {
		return core.Vec2{}, false
	}
	return ev.Pos, true
}

// pressed reports whether ev is a press of k.
func pressed(ev core.Event, k core.Key) bool {
	return ev.Kind == core.EventKeyPressed && ev.Key == k
}
