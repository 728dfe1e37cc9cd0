// Package assets reads the PNG sprites of the window front end and writes
// placeholder sprites for a fresh install.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/dodgeball/internal/core"
)

// Load decodes dir/name and scales it to size.
// Every failure wraps core.ErrAssetLoad.
func Load(dir, name string, size core.Size) (*image.RGBA, error) {
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("assets: %s: invalid size %dx%d: %w", name, size.W, size.H, core.ErrAssetLoad)
	}

	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", name, errors.Join(core.ErrAssetLoad, err))
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, errors.Join(core.ErrAssetLoad, err))
	}
	return Scale(src, size), nil
}

// Scale resamples src to size with Catmull-Rom filtering.
func Scale(src image.Image, size core.Size) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Save encodes img as dir/name, creating dir if needed.
func Save(dir, name string, img image.Image) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("assets: create directory: %w", err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("assets: create %s: %w", name, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("assets: encode %s: %w", name, err)
	}
	return f.Close()
}
