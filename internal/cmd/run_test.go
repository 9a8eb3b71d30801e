package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Alia5/shuttlectl/internal/actions"
	"github.com/stretchr/testify/assert"
)

func TestLoadBindingsOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.toml")
	assert.NoError(t, os.WriteFile(path, []byte(
		"jog_left_key = \"comma\"\nplay_pause = 5\n",
	), 0o644))

	r := &Run{Bind: actions.Bindings{
		JogLeftKey:   "bracketleft",
		JogRightKey:  "bracketright",
		PlayPauseKey: "space",
		PlayPause:    6,
	}}

	b, err := r.loadBindings(path)
	assert.NoError(t, err)
	// Overridden by the file.
	assert.Equal(t, "comma", b.JogLeftKey)
	assert.Equal(t, uint8(5), b.PlayPause)
	// Untouched fields keep the flag-provided values.
	assert.Equal(t, "bracketright", b.JogRightKey)
	assert.Equal(t, "space", b.PlayPauseKey)
}

func TestLoadBindingsMissingFile(t *testing.T) {
	r := &Run{Bind: actions.Bindings{JogLeftKey: "bracketleft"}}
	b, err := r.loadBindings(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, r.Bind, b)
}

func TestLoadBindingsBadToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.toml")
	assert.NoError(t, os.WriteFile(path, []byte("jog_left_key = [broken"), 0o644))

	r := &Run{Bind: actions.Bindings{JogLeftKey: "bracketleft"}}
	b, err := r.loadBindings(path)
	assert.Error(t, err)
	assert.Equal(t, r.Bind, b)
}
