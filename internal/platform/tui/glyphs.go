package tui

import (
	"fmt"

	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/core"
)

// Glyph is the terminal stand-in for an image: a rune repeated over the
// cells the image covers.
type Glyph struct {
	Name  string
	Rune  rune
	Color core.Color
	size  core.Size
}

// Size returns the size the glyph was loaded at, in playfield units.
func (g Glyph) Size() core.Size {
	return g.size
}

var (
	humanRunes      = []rune{'◐', '◓', '◑', '◒'}
	backgroundRunes = []rune{' ', '·', '░'}
)

// GlyphStore is an AssetStore that knows every configured asset name.
type GlyphStore struct {
	glyphs map[string]Glyph
}

// NewGlyphStore registers a glyph for each configured asset.
func NewGlyphStore(assets config.AssetsConfig) *GlyphStore {
	s := &GlyphStore{glyphs: make(map[string]Glyph)}
	for i := range assets.HumanFrameCount {
		s.add(core.FrameName(assets.HumanFrames, i), humanRunes[i%len(humanRunes)], core.ColorBrightCyan)
	}
	s.add(assets.AIImage, '█', core.ColorBrightRed)
	s.add(assets.ProjectileImage, '●', core.ColorOrange)
	for i, name := range assets.Backgrounds {
		s.add(name, backgroundRunes[i%len(backgroundRunes)], core.ColorGray)
	}
	return s
}

func (s *GlyphStore) add(name string, r rune, c core.Color) {
	s.glyphs[name] = Glyph{Name: name, Rune: r, Color: c}
}

// LoadImage returns the glyph registered under name at the requested size.
func (s *GlyphStore) LoadImage(name string, size core.Size) (core.Image, error) {
	g, ok := s.glyphs[name]
	if !ok {
		return nil, fmt.Errorf("tui: glyph %q: %w", name, core.ErrAssetLoad)
	}
	g.size = size
	return g, nil
}

// LoadAnimationFrames loads count frames named <prefix>_<i>.png.
func (s *GlyphStore) LoadAnimationFrames(prefix string, count int, size core.Size) ([]core.Image, error) {
	frames := make([]core.Image, 0, count)
	for i := range count {
		img, err := s.LoadImage(core.FrameName(prefix, i), size)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return frames, nil
}
