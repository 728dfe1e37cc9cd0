package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/dodgeball/internal/core"
)

var testStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestInputHoldWindow(t *testing.T) {
	clock := core.NewManualClock(testStart)
	in := NewInput(testViewport(), clock)

	in.Press(core.KeyLeft)
	if !in.IsKeyDown(core.KeyLeft) {
		t.Fatal("key should be down right after the press")
	}

	clock.Advance(100 * time.Millisecond)
	if !in.IsKeyDown(core.KeyLeft) {
		t.Error("key should still be held inside the hold window")
	}

	// Auto-repeat extends the hold
	in.Press(core.KeyLeft)
	clock.Advance(100 * time.Millisecond)
	if !in.IsKeyDown(core.KeyLeft) {
		t.Error("repeat should extend the hold window")
	}

	clock.Advance(50 * time.Millisecond)
	if in.IsKeyDown(core.KeyLeft) {
		t.Error("key should be released after the hold window")
	}
}

func TestInputOppositeCancels(t *testing.T) {
	tests := []struct {
		first, second core.Key
	}{
		{core.KeyLeft, core.KeyRight},
		{core.KeyRight, core.KeyLeft},
		{core.KeyUp, core.KeyDown},
		{core.KeyDown, core.KeyUp},
	}
	for _, tt := range tests {
		t.Run(tt.second.String(), func(t *testing.T) {
			in := NewInput(testViewport(), core.NewManualClock(testStart))
			in.Press(tt.first)
			in.Press(tt.second)
			if in.IsKeyDown(tt.first) {
				t.Errorf("%v should be released by %v", tt.first, tt.second)
			}
			if !in.IsKeyDown(tt.second) {
				t.Errorf("%v should be down", tt.second)
			}
		})
	}
}

func TestInputDiagonalHold(t *testing.T) {
	in := NewInput(testViewport(), core.NewManualClock(testStart))
	in.Press(core.KeyUp)
	in.Press(core.KeyRight)
	if !in.IsKeyDown(core.KeyUp) || !in.IsKeyDown(core.KeyRight) {
		t.Error("perpendicular keys should be held together")
	}
}

func TestInputEvents(t *testing.T) {
	in := NewInput(testViewport(), core.NewManualClock(testStart))

	in.Press(core.KeyNone)
	in.Press(core.KeyThrow)
	in.Click(10, 10)
	in.Quit()

	events := in.PollEvents()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d: %+v", len(events), events)
	}
	if events[0] != core.KeyEvent(core.KeyThrow) {
		t.Errorf("events[0] = %+v, expected throw", events[0])
	}
	if events[1] != core.ClickEvent(core.V(105, 262.5)) {
		t.Errorf("events[1] = %+v, expected click at the cell center", events[1])
	}
	if events[2] != core.QuitEvent() {
		t.Errorf("events[2] = %+v, expected quit", events[2])
	}

	if in.IsKeyDown(core.KeyThrow) {
		t.Error("throw is edge-triggered and should never be held")
	}
	if len(in.PollEvents()) != 0 {
		t.Error("PollEvents should clear the queue")
	}
}

func TestInputThrowAutoRepeat(t *testing.T) {
	clock := core.NewManualClock(testStart)
	in := NewInput(testViewport(), clock)

	// A held key repeats roughly every 33ms
	for i := 0; i < 10; i++ {
		in.Press(core.KeyThrow)
		clock.Advance(33 * time.Millisecond)
	}
	if got := len(in.PollEvents()); got != 1 {
		t.Fatalf("held throw queued %d events, expected 1", got)
	}
	if in.IsKeyDown(core.KeyThrow) {
		t.Error("throw should never be held")
	}

	clock.Advance(keyHold)
	in.Press(core.KeyThrow)
	if got := len(in.PollEvents()); got != 1 {
		t.Errorf("fresh throw after release queued %d events, expected 1", got)
	}
}

func TestInputMovementRepeatsStillQueue(t *testing.T) {
	clock := core.NewManualClock(testStart)
	in := NewInput(testViewport(), clock)

	in.Press(core.KeyUp)
	clock.Advance(33 * time.Millisecond)
	in.Press(core.KeyUp)
	if got := len(in.PollEvents()); got != 2 {
		t.Errorf("movement repeats queued %d events, expected 2", got)
	}
}

func TestInputMouse(t *testing.T) {
	in := NewInput(testViewport(), core.NewManualClock(testStart))
	in.MoveMouse(40, 4)
	if got := in.MousePosition(); got != core.V(405, 112.5) {
		t.Errorf("MousePosition() = %v, expected (405, 112.5)", got)
	}
	if len(in.PollEvents()) != 0 {
		t.Error("moving the mouse should not queue events")
	}
}
