// Package actions maps decoded shuttle events onto host-side actions.
// The mapping is policy: everything here can be re-bound through the
// configuration layer without touching the decoder.
package actions

import "fmt"

// ActionKind enumerates the host-side effects a mapped event can request.
type ActionKind uint8

const (
	// ActionKeyTap taps (press + release) a named key.
	ActionKeyTap ActionKind = iota
	// ActionHScroll emits horizontal scroll pulses.
	ActionHScroll
	// ActionNotice shows a short user-facing notification.
	ActionNotice
)

// Action is one requested host-side effect. Key is set for ActionKeyTap,
// Dir/Steps for ActionHScroll (Dir -1 scrolls left, +1 right), Title/Text
// for ActionNotice.
type Action struct {
	Kind  ActionKind
	Key   string
	Dir   int
	Steps int
	Title string
	Text  string
}

func (a Action) String() string {
	switch a.Kind {
	case ActionKeyTap:
		return fmt.Sprintf("key %s", a.Key)
	case ActionHScroll:
		side := "right"
		if a.Dir < 0 {
			side = "left"
		}
		return fmt.Sprintf("hscroll %s x%d", side, a.Steps)
	case ActionNotice:
		return fmt.Sprintf("notice %q %q", a.Title, a.Text)
	default:
		return fmt.Sprintf("unknown action kind %d", a.Kind)
	}
}

// Executor delivers actions to the host. Implementations own all
// OS-specific plumbing; the mapper never touches the OS.
type Executor interface {
	Execute(a Action) error
}
