package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	_, err = os.Stat(GetConfigFilePath())
	require.NoError(t, err)
}

func TestLoadConfigFillsMissingSections(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "arcanaview", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`default_deck = "thoth"

[render]
reversed_class = "card-reversed"
`), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "thoth", cfg.DefaultDeck)
	require.Equal(t, "card-reversed", cfg.Render.ReversedClass)
	require.Equal(t, DefaultCardSelector, cfg.Render.CardSelector)
	require.Equal(t, DefaultSpreadSize, cfg.Server.SpreadSize)
	require.Equal(t, DefaultTextBottom, cfg.Reverse.TextBottom)
}

func TestSetDefaultDeck(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, SetDefaultDeck("marseille"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "marseille", cfg.DefaultDeck)
}

func TestGetDeckPath(t *testing.T) {
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)

	libDeck := filepath.Join(data, "tarot", "decks", "rws")
	require.NoError(t, os.MkdirAll(libDeck, 0755))

	path, err := GetDeckPath("rws")
	require.NoError(t, err)
	require.Equal(t, libDeck, path)

	local := t.TempDir()
	path, err = GetDeckPath(local)
	require.NoError(t, err)
	require.Equal(t, local, path)

	_, err = GetDeckPath("does-not-exist")
	require.Error(t, err)
}
