package actions

import (
	"fmt"

	"github.com/Alia5/shuttlectl/device/shuttle"
)

// Bindings configures how events translate into actions. Field tags follow
// the kong conventions so the struct can be embedded into a command and
// overridden from flags, env, or config files; the toml tags serve the
// live-reloadable bindings file.
type Bindings struct {
	JogLeftKey    string  `help:"Key tapped when the jog deflects negative" default:"bracketleft" env:"SHUTTLECTL_JOG_LEFT_KEY" toml:"jog_left_key"`
	JogRightKey   string  `help:"Key tapped when the jog deflects positive" default:"bracketright" env:"SHUTTLECTL_JOG_RIGHT_KEY" toml:"jog_right_key"`
	PlayPauseKey  string  `help:"Key tapped by the play/pause button" default:"space" env:"SHUTTLECTL_PLAY_PAUSE_KEY" toml:"play_pause_key"`
	SpeedResetKey string  `help:"Key tapped by the speed-reset buttons" default:"plus" env:"SHUTTLECTL_SPEED_RESET_KEY" toml:"speed_reset_key"`
	PlayPause     uint8   `help:"Button index bound to play/pause" default:"6" toml:"play_pause"`
	SpeedButtons  uint8   `help:"Buttons 0..n select the scroll speed on release" default:"3" toml:"speed_buttons"`
	ResetButtons  []uint8 `help:"Buttons that tap the speed-reset key on release" default:"13,14" toml:"reset_buttons"`
}

// Mapper turns shuttle events into actions. It owns the scroll speed index:
// a wheel event yields 1<<speed scroll pulses, and releasing one of the
// speed buttons selects that index. The mapper mutates only in response to
// events and expects the same external serialization as the tracker.
type Mapper struct {
	bindings Bindings
	speed    uint8
}

// NewMapper returns a Mapper with speed index 0 (single scroll pulses).
func NewMapper(b Bindings) *Mapper {
	return &Mapper{bindings: b}
}

// Speed returns the current scroll speed index.
func (m *Mapper) Speed() uint8 {
	return m.speed
}

// SetBindings swaps the bindings, keeping the speed index. Used when the
// config file changes while running.
func (m *Mapper) SetBindings(b Bindings) {
	m.bindings = b
}

// Map translates one event into zero or more actions.
func (m *Mapper) Map(ev shuttle.Event) []Action {
	switch ev.Kind {
	case shuttle.EventJog:
		if ev.Jog < 0 {
			return []Action{{Kind: ActionKeyTap, Key: m.bindings.JogLeftKey}}
		}
		if ev.Jog > 0 {
			return []Action{{Kind: ActionKeyTap, Key: m.bindings.JogRightKey}}
		}
		// Spring returned to center.
		return nil
	case shuttle.EventWheelLeft:
		return []Action{{Kind: ActionHScroll, Dir: -1, Steps: 1 << m.speed}}
	case shuttle.EventWheelRight:
		return []Action{{Kind: ActionHScroll, Dir: 1, Steps: 1 << m.speed}}
	case shuttle.EventButtonUp:
		return m.mapButtonUp(ev.Button)
	case shuttle.EventButtonDown:
		// All button policy triggers on release.
		return nil
	default:
		return nil
	}
}

func (m *Mapper) mapButtonUp(button uint8) []Action {
	if button <= m.bindings.SpeedButtons {
		m.speed = button
		return []Action{{
			Kind:  ActionNotice,
			Title: "Info",
			Text:  fmt.Sprintf("Scroll speed %d", 1<<m.speed),
		}}
	}
	if button == m.bindings.PlayPause {
		return []Action{{Kind: ActionKeyTap, Key: m.bindings.PlayPauseKey}}
	}
	for _, b := range m.bindings.ResetButtons {
		if button == b {
			return []Action{
				{Kind: ActionKeyTap, Key: m.bindings.SpeedResetKey},
				{Kind: ActionNotice, Title: "Info", Text: "Playback speed normal"},
			}
		}
	}
	return nil
}
