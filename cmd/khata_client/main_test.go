package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := rootCmd()
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "login", "logout", "whoami", "theme", "offline", "version"}, names)

	offline, _, err := cmd.Find([]string{"offline", "sync"})
	require.NoError(t, err)
	assert.Equal(t, "sync", offline.Name())
}

func TestVersionCmd(t *testing.T) {
	t.Setenv("STORAGE_PATH", t.TempDir()+"/storage.json")
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "khata_client version dev\n", out.String())
}

func TestNewLogger_Level(t *testing.T) {
	logger := newLogger(false, "warn")
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))

	assert.True(t, newLogger(true, "debug").Enabled(context.Background(), slog.LevelDebug))
}

type countingNotifier struct{ calls int }

func (n *countingNotifier) Success(string) int64 { n.calls++; return int64(n.calls) }
func (n *countingNotifier) Error(string) int64   { n.calls++; return int64(n.calls) }
func (n *countingNotifier) Info(string) int64    { n.calls++; return int64(n.calls) }

func TestEchoNotifier(t *testing.T) {
	var out bytes.Buffer
	next := &countingNotifier{}
	n := &echoNotifier{next: next, out: &out}

	assert.Equal(t, int64(1), n.Success("Login successful!"))
	n.Error("Invalid email or password")

	assert.Equal(t, "[success] Login successful!\n[error] Invalid email or password\n", out.String())
	assert.Equal(t, 2, next.calls)
}
