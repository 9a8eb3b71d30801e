package actions

import (
	"fmt"
	"log/slog"
	"os/exec"
)

// LogExecutor logs actions instead of delivering them. Used for dry runs
// and for the offline decode command.
type LogExecutor struct {
	Logger *slog.Logger
}

func (e *LogExecutor) Execute(a Action) error {
	e.Logger.Info("action", "action", a.String())
	return nil
}

// XdotoolExecutor delivers actions through the xdotool and notify-send
// command line utilities. Horizontal scrolling uses X11 buttons 6 and 7.
// Only useful on systems where those tools exist; the run command falls
// back to a LogExecutor when they don't.
type XdotoolExecutor struct {
	Logger *slog.Logger
}

// Available reports whether the required tools are on PATH.
func (e *XdotoolExecutor) Available() bool {
	_, err := exec.LookPath("xdotool")
	return err == nil
}

func (e *XdotoolExecutor) Execute(a Action) error {
	switch a.Kind {
	case ActionKeyTap:
		return e.run("xdotool", "key", a.Key)
	case ActionHScroll:
		button := "7"
		if a.Dir < 0 {
			button = "6"
		}
		for i := 0; i < a.Steps; i++ {
			if err := e.run("xdotool", "click", button); err != nil {
				return err
			}
		}
		return nil
	case ActionNotice:
		if _, err := exec.LookPath("notify-send"); err != nil {
			e.Logger.Info(a.Text, "title", a.Title)
			return nil
		}
		return e.run("notify-send", a.Title, a.Text)
	default:
		return fmt.Errorf("unknown action kind %d", a.Kind)
	}
}

func (e *XdotoolExecutor) run(name string, args ...string) error {
	if err := exec.Command(name, args...).Run(); err != nil {
		return fmt.Errorf("%s %v: %w", name, args, err)
	}
	return nil
}
