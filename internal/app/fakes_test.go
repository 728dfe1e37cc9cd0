package app

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/core"
)

var testStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type fakeImage struct {
	name string
	size core.Size
}

func (i fakeImage) Size() core.Size { return i.size }

type fakeAssets struct {
	missing map[string]bool
	loads   []string
}

func (s *fakeAssets) LoadImage(name string, size core.Size) (core.Image, error) {
	s.loads = append(s.loads, name)
	if s.missing[name] {
		return nil, fmt.Errorf("%s: %w", name, core.ErrAssetLoad)
	}
	return fakeImage{name: name, size: size}, nil
}

func (s *fakeAssets) LoadAnimationFrames(prefix string, count int, size core.Size) ([]core.Image, error) {
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

type fakeInput struct {
	down   map[core.Key]bool
	events []core.Event
}

func newFakeInput() *fakeInput {
	return &fakeInput{down: make(map[core.Key]bool)}
}

func (in *fakeInput) IsKeyDown(k core.Key) bool { return in.down[k] }
func (in *fakeInput) MousePosition() core.Vec2 { return core.Vec2{} }

func (in *fakeInput) PollEvents() []core.Event {
	events := in.events
	in.events = nil
	return events
}

func (in *fakeInput) push(events ...core.Event) {
	in.events = append(in.events, events...)
}

type textCall struct {
	text string
	pos  core.Vec2
}

// fakeRenderer measures text at 10 units per rune and 20 units tall.
type fakeRenderer struct {
	images   []core.Image
	rects    []core.Box
	texts    []textCall
	presents int
}

func (r *fakeRenderer) DrawImage(img core.Image, pos core.Vec2) { r.images = append(r.images, img) }
func (r *fakeRenderer) DrawRect(b core.Box, c core.Color) { r.rects = append(r.rects, b) }

func (r *fakeRenderer) DrawText(text string, c core.Color, pos core.Vec2) core.Vec2 {
	r.texts = append(r.texts, textCall{text: text, pos: pos})
	return r.MeasureText(text)
}

func (r *fakeRenderer) MeasureText(text string) core.Vec2 {
	return core.V(float64(10*len([]rune(text))), 20)
}

func (r *fakeRenderer) Present() error {
	r.presents++
	return nil
}

func (r *fakeRenderer) hasText(text string) bool {
	for _, t := range r.texts {
		if t.text == text {
			return true
		}
	}
	return false
}

func (r *fakeRenderer) textWithPrefix(prefix string) (textCall, bool) {
	for _, t := range r.texts {
		if strings.HasPrefix(t.text, prefix) {
			return t, true
		}
	}
	return textCall{}, false
}

type fakeRecorder struct {
	rounds []RoundSummary
	err    error
}

func (r *fakeRecorder) RecordRound(sum RoundSummary) error {
	r.rounds = append(r.rounds, sum)
	return r.err
}

type harness struct {
	app      *App
	loop     *Loop
	clock    *core.ManualClock
	input    *fakeInput
	assets   *fakeAssets
	recorder *fakeRecorder
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		clock:    core.NewManualClock(testStart),
		input:    newFakeInput(),
		assets:   &fakeAssets{},
		recorder: &fakeRecorder{},
	}
	a, err := New(Options{
		Config:   config.Default(),
		Assets:   h.assets,
		Clock:    h.clock,
		Rand:     rand.New(rand.NewSource(3)),
		Recorder: h.recorder,
	})
	require.NoError(t, err)
	h.app = a
	h.loop = NewLoop(a, h.input, h.clock)
	return h
}

// tick pushes events and runs one loop update.
func (h *harness) tick(t *testing.T, events ...core.Event) {
	t.Helper()
	h.input.push(events...)
	require.NoError(t, h.loop.Update())
}

func (h *harness) frame() *fakeRenderer {
	var r fakeRenderer
	h.loop.Draw(&r)
	return &r
}
