//go:build windows

package util

import (
	"log/slog"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
	procShowWindow       = user32.NewProc("ShowWindow")
	procFreeConsole      = kernel32.NewProc("FreeConsole")
)

// IsRunFromGUI reports whether the process was started without an inherited
// console, which is what double-clicking the binary looks like.
func IsRunFromGUI() bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	return hwnd == 0
}

func HideConsoleWindow() {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		slog.Debug("HideConsoleWindow: no console window found")
		return
	}

	_, _, _ = procShowWindow.Call(hwnd, windows.SW_HIDE)
	_, _, _ = procFreeConsole.Call()
}
