package core

// Key is a logical key, abstracted from physical key codes.
// Platforms translate their own key events into these.
type Key int

const (
	KeyNone    Key = iota
	KeyUp          // Move up
	KeyDown        // Move down
	KeyLeft        // Move left
	KeyRight       // Move right
	KeyThrow       // Throw a ball
	KeyConfirm     // Enter - begin round / restart
	KeyBack        // Esc - leave the settings screen
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyThrow:
		return "Throw"
	case KeyConfirm:
		return "Confirm"
	case KeyBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// EventKind identifies a discrete input event.
type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyPressed
	EventMouseClicked
)

// Event is an edge-triggered input event. Key is set for EventKeyPressed,
// Pos (playfield units) for EventMouseClicked.
type Event struct {
	Kind EventKind
	Key  Key
	Pos  Vec2
}

// QuitEvent returns a quit event.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyEvent returns a key-pressed event.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKeyPressed, Key: k}
}

// ClickEvent returns a mouse click at p.
func ClickEvent(p Vec2) Event {
	return Event{Kind: EventMouseClicked, Pos: p}
}

// InputSource polls keyboard and mouse state.
//
// IsKeyDown is level-triggered and drives movement. PollEvents drains the
// edge-triggered events accumulated since the previous call.
type InputSource interface {
	IsKeyDown(k Key) bool
	PollEvents() []Event
	MousePosition() Vec2
}
