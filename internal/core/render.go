package core

import (
	"errors"
	"fmt"
)

// ErrAssetLoad is returned by an AssetStore when an image cannot be loaded.
var ErrAssetLoad = errors.New("asset load failed")

// Size is a target size in playfield units.
type Size struct {
	W, H int
}

// Square returns a size x size Size.
func Square(size int) Size {
	return Size{W: size, H: size}
}

// Image is an opaque handle produced by an AssetStore and consumed by the
// Renderer of the same platform.
type Image interface {
	Size() Size
}

// Renderer draws onto a 2D surface in playfield coordinates.
type Renderer interface {
	// DrawImage draws img with its top-left corner at pos.
	DrawImage(img Image, pos Vec2)
	// DrawRect fills b with c.
	DrawRect(b Box, c Color)
	// DrawText draws text with its top-left corner at pos and returns its size.
	DrawText(text string, c Color, pos Vec2) Vec2
	// MeasureText returns the size text would occupy without drawing it.
	MeasureText(text string) Vec2
	// Present flushes the frame.
	Present() error
}

// AssetStore loads images by name, scaled to a requested size.
type AssetStore interface {
	LoadImage(name string, size Size) (Image, error)
	LoadAnimationFrames(prefix string, count int, size Size) ([]Image, error)
}

// FrameName returns the file name of frame i of an animation.
func FrameName(prefix string, i int) string {
	return fmt.Sprintf("%s_%d.png", prefix, i)
}
