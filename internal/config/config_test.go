package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("CLASSBOARD_CONFIG", "")
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Our Class Board", c.UI.Title)
	assert.Equal(t, "2006-01-02 15:04:05", c.UI.ClockFormat)
	assert.True(t, c.UI.Mouse)
	assert.Equal(t, 5, c.Timer.DefaultMinutes)
	assert.Equal(t, "bell", c.Sound.Mode)
	assert.Equal(t, "info", c.Log.Level)
	assert.Empty(t, c.Log.File)
	assert.Equal(t, "keybindings.toml", filepath.Base(c.Keys.File))
}

func TestLoadReadsDefaultDir(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "classboard", "config.toml"), `
[ui]
title = "5-2"
mouse = false

[timer]
default_minutes = 10
`)
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "5-2", c.UI.Title)
	assert.False(t, c.UI.Mouse)
	assert.Equal(t, 10, c.Timer.DefaultMinutes)
}

func TestLoadExplicitPathAndEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, "[sound]\nmode = \"notify\"\n")
	t.Setenv("CLASSBOARD_TIMER_DEFAULT_MINUTES", "15")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "notify", c.Sound.Mode)
	assert.Equal(t, 15, c.Timer.DefaultMinutes)
}

func TestLoadConfigEnvVar(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "from-env.toml")
	writeFile(t, path, "[log]\nlevel = \"debug\"\n")
	t.Setenv("CLASSBOARD_CONFIG", path)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.toml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.toml")
	writeFile(t, path, "[timer]\ndefault_minutes = 500\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	writeFile(t, path, "[sound]\nmode = \"trumpet\"\n")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadKeyOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keybindings.toml")
	writeFile(t, path, `
[keys]
vote-reveal = ["v", " "]
dice-roll = ["R"]
empty = []
`)
	got, err := LoadKeyOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"vote-reveal": {"v"},
		"dice-roll":   {"R"},
	}, got)
}

func TestLoadKeyOverridesMissingFile(t *testing.T) {
	got, err := LoadKeyOverrides(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = LoadKeyOverrides("")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoadKeyOverridesBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	writeFile(t, path, "[keys\n")
	_, err := LoadKeyOverrides(path)
	assert.Error(t, err)
}
