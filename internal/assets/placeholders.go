package assets

import (
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/core"
)

// Placeholder sprite sizes. Sprites are scaled on load, so these only set
// the detail level.
const (
	avatarPixels     = 64
	projectilePixels = 32
)

var (
	skinColor   = color.RGBA{230, 230, 210, 255}
	boneColor   = color.RGBA{60, 60, 60, 255}
	aiColor     = color.RGBA{200, 40, 40, 255}
	aiEdgeColor = color.RGBA{90, 10, 10, 255}
	fireColor   = color.RGBA{255, 140, 0, 255}
	coreColor   = color.RGBA{255, 230, 120, 255}
)

var backgroundColors = [][2]color.RGBA{
	{{30, 60, 30, 255}, {40, 80, 40, 255}},
	{{30, 40, 70, 255}, {45, 60, 100, 255}},
	{{70, 50, 30, 255}, {95, 70, 45, 255}},
}

// Placeholders returns a generated image for every configured asset name.
// Backgrounds are drawn at the playfield size.
func Placeholders(cfg config.Config) map[string]image.Image {
	a := cfg.Assets
	out := make(map[string]image.Image)
	for i := range a.HumanFrameCount {
		out[core.FrameName(a.HumanFrames, i)] = runnerFrame(i, a.HumanFrameCount)
	}
	out[a.AIImage] = aiSprite()
	out[a.ProjectileImage] = fireball()
	for i, name := range a.Backgrounds {
		out[name] = background(i, cfg.Playfield.Width, cfg.Playfield.Height)
	}
	return out
}

// WritePlaceholders saves the placeholders of every asset not already in
// dir and returns the names written. Existing files are left alone unless
// overwrite is set.
func WritePlaceholders(dir string, cfg config.Config, overwrite bool) ([]string, error) {
	var written []string
	for name, img := range Placeholders(cfg) {
		if !overwrite {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				continue
			}
		}
		if err := Save(dir, name, img); err != nil {
			return written, err
		}
		written = append(written, name)
	}
	return written, nil
}

// runnerFrame draws a pale figure whose legs swing over the animation.
func runnerFrame(i, count int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, avatarPixels, avatarPixels))
	c := avatarPixels / 2

	fillCircle(img, c, 14, 10, skinColor)
	fillRect(img, c-4, 24, 8, 20, skinColor)

	phase := 2 * math.Pi * float64(i) / float64(max(count, 1))
	swing := int(10 * math.Sin(phase))
	fillRect(img, c-6+swing, 44, 5, 18, boneColor)
	fillRect(img, c+1-swing, 44, 5, 18, boneColor)
	fillRect(img, c-14-swing/2, 28, 28, 4, boneColor)
	return img
}

func aiSprite() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, avatarPixels, avatarPixels))
	fillRect(img, 0, 0, avatarPixels, avatarPixels, aiEdgeColor)
	fillRect(img, 4, 4, avatarPixels-8, avatarPixels-8, aiColor)
	fillRect(img, 16, 20, 10, 10, aiEdgeColor)
	fillRect(img, avatarPixels-26, 20, 10, 10, aiEdgeColor)
	return img
}

func fireball() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, projectilePixels, projectilePixels))
	c := projectilePixels / 2
	fillCircle(img, c, c, c-1, fireColor)
	fillCircle(img, c, c, c/2, coreColor)
	return img
}

// background draws a checkerboard in the palette of background i.
func background(i, w, h int) image.Image {
	const tile = 50
	colors := backgroundColors[i%len(backgroundColors)]
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y += tile {
		for x := 0; x < w; x += tile {
			fillRect(img, x, y, tile, tile, colors[(x/tile+y/tile)%2])
		}
	}
	return img
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(img.Bounds())
	xdraw.Draw(img, r, image.NewUniform(c), image.Point{}, xdraw.Src)
}

func fillCircle(img *image.RGBA, cx, cy, radius int, c color.Color) {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius && image.Pt(x, y).In(img.Bounds()) {
				img.Set(x, y, c)
			}
		}
	}
}
