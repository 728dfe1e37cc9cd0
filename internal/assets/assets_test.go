package assets

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/core"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(img, 0, 0, w, h, c)
	return img
}

func TestLoadScales(t *testing.T) {
	dir := t.TempDir()
	red := color.RGBA{255, 0, 0, 255}
	if err := Save(dir, "ai.png", solid(64, 64, red)); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	img, err := Load(dir, "ai.png", core.Square(50))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("bounds = %v, expected 50x50", b)
	}
	if got := img.RGBAAt(25, 25); got.R < 250 || got.G > 5 || got.B > 5 || got.A < 250 {
		t.Errorf("center pixel = %v, expected about %v", got, red)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		file string
		size core.Size
	}{
		{"missing file", "missing.png", core.Square(10)},
		{"not a png", "broken.png", core.Square(10)},
		{"zero size", "broken.png", core.Size{W: 0, H: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(dir, tt.file, tt.size)
			if !errors.Is(err, core.ErrAssetLoad) {
				t.Errorf("Load() error = %v, expected ErrAssetLoad", err)
			}
		})
	}
}

func TestLoadMissingKeepsCause(t *testing.T) {
	_, err := Load(t.TempDir(), "missing.png", core.Square(10))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, expected to wrap os.ErrNotExist", err)
	}
}

func TestPlaceholdersCoverConfig(t *testing.T) {
	cfg := config.Default()
	imgs := Placeholders(cfg)

	want := cfg.Assets.HumanFrameCount + 2 + len(cfg.Assets.Backgrounds)
	if len(imgs) != want {
		t.Fatalf("expected %d placeholders, got %d", want, len(imgs))
	}
	for _, name := range []string{"skeleton-run_0.png", "skeleton-run_20.png", "ai.png", "fireball.png", "background3.png"} {
		if imgs[name] == nil {
			t.Errorf("missing placeholder %s", name)
		}
	}
	if b := imgs["background.png"].Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("background bounds = %v, expected playfield size", b)
	}
}

func TestWritePlaceholders(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()

	written, err := WritePlaceholders(dir, cfg, false)
	if err != nil {
		t.Fatalf("WritePlaceholders() failed: %v", err)
	}
	if len(written) != len(Placeholders(cfg)) {
		t.Errorf("wrote %d files, expected %d", len(written), len(Placeholders(cfg)))
	}

	// Every written file loads back
	sort.Strings(written)
	for _, name := range written {
		if _, err := Load(dir, name, core.Square(10)); err != nil {
			t.Errorf("Load(%s) failed: %v", name, err)
		}
	}

	again, err := WritePlaceholders(dir, cfg, false)
	if err != nil {
		t.Fatalf("second WritePlaceholders() failed: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("existing files should be kept, rewrote %v", again)
	}

	forced, err := WritePlaceholders(dir, cfg, true)
	if err != nil {
		t.Fatalf("forced WritePlaceholders() failed: %v", err)
	}
	if len(forced) != len(written) {
		t.Errorf("overwrite wrote %d files, expected %d", len(forced), len(written))
	}
}

func TestRunnerFramesDiffer(t *testing.T) {
	a := runnerFrame(0, 21).(*image.RGBA)
	b := runnerFrame(5, 21).(*image.RGBA)
	if string(a.Pix) == string(b.Pix) {
		t.Error("animation frames should differ")
	}
}
