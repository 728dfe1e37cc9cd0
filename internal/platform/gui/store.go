// Package gui is the window front end: ebiten drives the tick, draws PNG
// sprites and reads keyboard and mouse state.
package gui

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dodgeball/internal/assets"
	"github.com/vovakirdan/dodgeball/internal/core"
)

// Image is a sprite uploaded to the GPU at its final size.
type Image struct {
	img  *ebiten.Image
	size core.Size
}

// Size returns the size the sprite was scaled to.
func (i Image) Size() core.Size {
	return i.size
}

// Store loads PNG sprites from a directory. Scaled sprites are cached per
// name and size, so changing a size in the settings loads each size once.
type Store struct {
	dir    string
	logger *log.Logger
	cache  map[string]Image
}

// NewStore creates a store reading from dir.
func NewStore(dir string, logger *log.Logger) *Store {
	return &Store{dir: dir, logger: logger, cache: make(map[string]Image)}
}

// LoadImage returns name scaled to size.
func (s *Store) LoadImage(name string, size core.Size) (core.Image, error) {
	key := fmt.Sprintf("%s@%dx%d", name, size.W, size.H)
	if img, ok := s.cache[key]; ok {
		return img, nil
	}

	rgba, err := assets.Load(s.dir, name, size)
	if err != nil {
		return nil, fmt.Errorf("gui: %w", err)
	}
	img := Image{img: ebiten.NewImageFromImage(rgba), size: size}
	s.cache[key] = img
	s.logger.Debug("asset loaded", "name", name, "w", size.W, "h", size.H)
	return img, nil
}

// LoadAnimationFrames loads count frames named <prefix>_<i>.png.
func (s *Store) LoadAnimationFrames(prefix string, count int, size core.Size) ([]core.Image, error) {
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
