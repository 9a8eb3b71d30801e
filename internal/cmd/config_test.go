package cmd

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigTemplateFromRun(t *testing.T) {
	root := buildMapFromStruct(reflect.TypeOf(Run{}))

	assert.Equal(t, "shuttlepro", root["model"])
	assert.Equal(t, false, root["dryRun"])

	bind, ok := root["bind"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "bracketleft", bind["jogLeftKey"])
	assert.Equal(t, uint64(6), bind["playPause"])
	assert.Equal(t, []any{uint64(13), uint64(14)}, bind["resetButtons"])
}
