package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"tada"}, args...))
	return out.String(), err
}

func TestCommandsRegistered(t *testing.T) {
	app := newApp()
	for _, name := range []string{"tui", "serve", "repl", "mcp"} {
		assert.NotNil(t, app.Command(name), name)
	}
}

func TestInvalidThemeIsUsageError(t *testing.T) {
	_, err := runApp(t, "--theme", "sepia", "mcp")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}

func TestMissingConfigIsUsageError(t *testing.T) {
	_, err := runApp(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "serve")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New("boom")))
	assert.Equal(t, 2, exitCode(cli.Exit("usage", 2)))
}

func TestHelp(t *testing.T) {
	out, err := runApp(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "repl")
	assert.Contains(t, out, "serve")
}
