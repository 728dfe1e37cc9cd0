package tui

import (
	"unicode/utf8"

	"github.com/vovakirdan/dodgeball/internal/core"
)

// Renderer draws into a back buffer of cells and swaps it to the front
// buffer on Present. View always shows the last presented frame.
type Renderer struct {
	vp    *Viewport
	back  *core.Screen
	front *core.Screen
}

// NewRenderer creates a renderer sized to the viewport.
func NewRenderer(vp *Viewport) *Renderer {
	return &Renderer{
		vp:    vp,
		back:  core.NewScreen(vp.Cols(), vp.Rows()),
		front: core.NewScreen(vp.Cols(), vp.Rows()),
	}
}

// Resize changes the viewport and both buffers.
func (r *Renderer) Resize(cols, rows int) {
	r.vp.Resize(cols, rows)
	r.back.Resize(r.vp.Cols(), r.vp.Rows())
	r.back.Clear()
	r.front.Resize(r.vp.Cols(), r.vp.Rows())
}

// Front returns the last presented frame.
func (r *Renderer) Front() *core.Screen {
	return r.front
}

// DrawImage fills the cells under img with its glyph. Images from other
// stores are ignored.
func (r *Renderer) DrawImage(img core.Image, pos core.Vec2) {
	g, ok := img.(Glyph)
	if !ok {
		return
	}
	size := g.Size()
	rect := r.vp.Rect(core.NewBox(pos.X, pos.Y, float64(size.W), float64(size.H)))
	r.back.DrawRectColored(rect, g.Rune, g.Color)
}

// DrawRect paints the cells under b with background color c.
func (r *Renderer) DrawRect(b core.Box, c core.Color) {
	r.back.Paint(r.vp.Rect(b), c)
}

// DrawText writes text starting in the cell containing pos.
func (r *Renderer) DrawText(text string, c core.Color, pos core.Vec2) core.Vec2 {
	col, row := r.vp.ToCell(pos)
	r.back.DrawTextColored(col, row, text, c)
	return r.MeasureText(text)
}

// MeasureText returns the playfield size of text, one cell per rune.
func (r *Renderer) MeasureText(text string) core.Vec2 {
	return r.vp.TextSize(utf8.RuneCountInString(text))
}

// Present copies the back buffer to the front and clears it for the next frame.
func (r *Renderer) Present() error {
	r.front.CopyFrom(r.back)
	r.back.Clear()
	return nil
}
