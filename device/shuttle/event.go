package shuttle

import "fmt"

// EventKind enumerates the edge types a Tracker can emit.
type EventKind uint8

const (
	EventJog EventKind = iota
	EventWheelLeft
	EventWheelRight
	EventButtonDown
	EventButtonUp
)

// Event is one edge-triggered change between two consecutive reports.
// Jog is only meaningful for EventJog (the new absolute deflection, not a
// delta); Button only for EventButtonDown/EventButtonUp (bit index 0..14).
type Event struct {
	Kind   EventKind
	Jog    int8
	Button uint8
}

func (e Event) String() string {
	switch e.Kind {
	case EventJog:
		return fmt.Sprintf("jog %+d", e.Jog)
	case EventWheelLeft:
		return "wheel left"
	case EventWheelRight:
		return "wheel right"
	case EventButtonDown:
		return fmt.Sprintf("button %d down", e.Button)
	case EventButtonUp:
		return fmt.Sprintf("button %d up", e.Button)
	default:
		return fmt.Sprintf("unknown event kind %d", e.Kind)
	}
}
