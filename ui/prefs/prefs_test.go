package prefs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "preferences.json")

	p := LoadFrom(path)
	p.SetFloat(KeyWindowWidth, 1280)
	p.SetBool(KeyMarkers, false)
	p.SetString(KeySaveDir, "/tmp/graphs")
	require.NoError(t, p.Save())

	q := LoadFrom(path)
	assert.Equal(t, 1280.0, q.Float(KeyWindowWidth, 0))
	assert.False(t, q.Bool(KeyMarkers, true))
	assert.Equal(t, "/tmp/graphs", q.String(KeySaveDir))
}

func TestFallbacks(t *testing.T) {
	p := LoadFrom(filepath.Join(t.TempDir(), "preferences.json"))
	assert.Equal(t, 720.0, p.Float(KeyWindowHeight, 720))
	assert.True(t, p.Bool(KeyLines, true))
	assert.Equal(t, "", p.String(KeySaveDir))
}
