package dodgeball

import "github.com/vovakirdan/dodgeball/internal/config"

// Field identifies one adjustable value on the settings screen.
type Field int

const (
	FieldHumanSpeed Field = iota
	FieldAISpeed
	FieldHumanSize
	FieldAISize
	FieldBackground
)

// String returns the label shown on the settings screen.
func (f Field) String() string {
	switch f {
	case FieldHumanSpeed:
		return "Player Speed"
	case FieldAISpeed:
		return "AI Speed"
	case FieldHumanSize:
		return "Player Size"
	case FieldAISize:
		return "AI Size"
	case FieldBackground:
		return "Background"
	default:
		return "Unknown"
	}
}

// Fields lists the adjustable fields in display order.
var Fields = []Field{FieldHumanSpeed, FieldAISpeed, FieldHumanSize, FieldAISize, FieldBackground}

// Settings is the mutable configuration edited on the settings screen and
// read whenever a new round is created.
type Settings struct {
	HumanSpeed int
	AISpeed    int
	HumanSize  int
	AISize     int
	Background int // Index into the background list

	minSpeed    int
	minSize     int
	backgrounds int
}

// NewSettings creates settings from the configured initial values and floors.
func NewSettings(cfg config.Config) *Settings {
	return &Settings{
		HumanSpeed:  cfg.Settings.HumanSpeed,
		AISpeed:     cfg.Settings.AISpeed,
		HumanSize:   cfg.Settings.HumanSize,
		AISize:      cfg.Settings.AISize,
		Background:  cfg.Settings.Background,
		minSpeed:    cfg.Limits.MinSpeed,
		minSize:     cfg.Limits.MinSize,
		backgrounds: len(cfg.Assets.Backgrounds),
	}
}

// Adjust moves a field by delta. Speeds and sizes stop at their floors, the
// background index wraps around the background list in both directions.
// Returns false when the value did not change.
func (s *Settings) Adjust(f Field, delta int) bool {
	switch f {
	case FieldHumanSpeed:
		return adjustFloor(&s.HumanSpeed, delta, s.minSpeed)
	case FieldAISpeed:
		return adjustFloor(&s.AISpeed, delta, s.minSpeed)
	case FieldHumanSize:
		return adjustFloor(&s.HumanSize, delta, s.minSize)
	case FieldAISize:
		return adjustFloor(&s.AISize, delta, s.minSize)
	case FieldBackground:
		if s.backgrounds <= 1 {
			return false
		}
		s.Background = ((s.Background+delta)%s.backgrounds + s.backgrounds) % s.backgrounds
		return true
	}
	return false
}

// Value returns the current value of a field.
func (s *Settings) Value(f Field) int {
	switch f {
	case FieldHumanSpeed:
		return s.HumanSpeed
	case FieldAISpeed:
		return s.AISpeed
	case FieldHumanSize:
		return s.HumanSize
	case FieldAISize:
		return s.AISize
	case FieldBackground:
		return s.Background
	}
	return 0
}

func adjustFloor(v *int, delta, floor int) bool {
	next := max(*v+delta, floor)
	if next == *v {
		return false
	}
	*v = next
	return true
}
