package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/dodgeball/internal/core"
)

const fontSize = 24

var colors = map[core.Color]color.RGBA{
	core.ColorDefault:       {255, 255, 255, 255},
	core.ColorRed:           {200, 0, 0, 255},
	core.ColorGreen:         {0, 200, 0, 255},
	core.ColorYellow:        {200, 200, 0, 255},
	core.ColorBlue:          {0, 0, 200, 255},
	core.ColorMagenta:       {200, 0, 200, 255},
	core.ColorCyan:          {0, 200, 200, 255},
	core.ColorWhite:         {255, 255, 255, 255},
	core.ColorBrightRed:     {255, 80, 80, 255},
	core.ColorBrightGreen:   {80, 255, 80, 255},
	core.ColorBrightYellow:  {255, 255, 80, 255},
	core.ColorBrightBlue:    {80, 80, 255, 255},
	core.ColorBrightMagenta: {255, 80, 255, 255},
	core.ColorBrightCyan:    {80, 255, 255, 255},
	core.ColorBrightWhite:   {255, 255, 255, 255},
	core.ColorOrange:        {255, 140, 0, 255},
	core.ColorGray:          {128, 128, 128, 255},
	core.ColorLightGray:     {200, 200, 200, 255},
	core.ColorBlack:         {0, 0, 0, 255},
}

// Renderer draws onto the screen image ebiten hands to Draw.
type Renderer struct {
	target *ebiten.Image
	face   font.Face
}

// NewRenderer creates a renderer using the Go Regular font.
func NewRenderer() (*Renderer, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("gui: parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return nil, fmt.Errorf("gui: create font face: %w", err)
	}
	return &Renderer{face: face}, nil
}

func (r *Renderer) setTarget(screen *ebiten.Image) {
	r.target = screen
}

// DrawImage draws a sprite loaded by Store. Other images are ignored.
func (r *Renderer) DrawImage(img core.Image, pos core.Vec2) {
	sprite, ok := img.(Image)
	if !ok || r.target == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	r.target.DrawImage(sprite.img, op)
}

// DrawRect fills b with c.
func (r *Renderer) DrawRect(b core.Box, c core.Color) {
	if r.target == nil {
		return
	}
	vector.DrawFilledRect(r.target, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colors[c], false)
}

// DrawText draws text with its top-left corner at pos.
func (r *Renderer) DrawText(s string, c core.Color, pos core.Vec2) core.Vec2 {
	if r.target != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pos.X, pos.Y+float64(r.face.Metrics().Ascent.Ceil()))
		op.ColorScale.ScaleWithColor(colors[c])
		text.DrawWithOptions(r.target, s, r.face, op)
	}
	return r.MeasureText(s)
}

// MeasureText returns the advance width and line height of s.
func (r *Renderer) MeasureText(s string) core.Vec2 {
	w := font.MeasureString(r.face, s).Ceil()
	h := r.face.Metrics().Height.Ceil()
	return core.V(float64(w), float64(h))
}

// Present is a no-op: ebiten shows the screen image after Draw returns.
func (r *Renderer) Present() error {
	return nil
}
