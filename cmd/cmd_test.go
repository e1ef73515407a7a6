package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcanaland/arcanaview/internal/decktest"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestScanCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "reading.html")
	require.NoError(t, os.WriteFile(file, []byte(`<main id="spread">
<div class="card"><img src="/img/ace.png"></div>
<div class="card"><img src="/img/king.png" class="reversed"></div>
<div class="card"><img src="/img/queen.png"></div>
</main>`), 0644))

	stdout, stderr, err := execute(t, "scan", file)
	require.NoError(t, err)
	require.Equal(t, "1 reversed cards\n", stdout)
	require.Equal(t, 1, strings.Count(stderr, "Found reversed card:"))
	require.Contains(t, stderr, `<img src="/img/king.png" class="reversed"/>`)
}

func TestRenderCommand(t *testing.T) {
	dir := decktest.Write(t, t.TempDir(), "major_arcana.16")

	stdout, _, err := execute(t, "render", "--deck", dir, "--reversed", "--base", "/static/", "major_arcana.16")
	require.NoError(t, err)
	require.Equal(t,
		`<img src="/static/h750/major_arcana/16.png" alt="The Tower" data-card-id="major_arcana.16" class="reversed"/>`+"\n",
		stdout)
}

func TestReverseCommand(t *testing.T) {
	dir := decktest.Write(t, t.TempDir(), "major_arcana.00")

	stdout, _, err := execute(t, "reverse", "--deck", dir, "--top", "0", "--bottom", "0")
	require.NoError(t, err)
	require.Contains(t, stdout, "1 created, 0 already reversed, 0 failed")

	_, err = os.Stat(filepath.Join(dir, "h750", "major_arcana", "00-r.png"))
	require.NoError(t, err)
}

func TestWrapText(t *testing.T) {
	require.Equal(t, []string{""}, wrapText("   ", 20))
	require.Equal(t,
		[]string{"The fool steps", "off the cliff"},
		wrapText("The fool steps off the cliff", 14))
}
