//go:build !windows

package util

func IsRunFromGUI() bool {
	// Only Windows users tend to double-click the binary; everywhere else
	// the console stays where it is.
	return false
}

func HideConsoleWindow() {
	// No-op on non-Windows platforms
}
