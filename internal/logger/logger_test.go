package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Init_Disabled(t *testing.T) {
	closeFn, err := Init(Options{Enabled: false})
	require.NoError(t, err)
	require.NoError(t, closeFn())
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func Test_Init_Writer(t *testing.T) {
	var buf bytes.Buffer
	closeFn, err := Init(Options{Enabled: true, Level: slog.LevelInfo, Writer: &buf})
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = Init(Options{}) })
	defer closeFn()

	Debug("hidden")
	Info("comparison started", "rounds", 5)
	Warn("slow")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=\"comparison started\" rounds=5")
	assert.Contains(t, out, "level=WARN")
}

func Test_Init_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pcbctl.log")
	closeFn, err := Init(Options{Enabled: true, Level: slog.LevelDebug, File: path})
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = Init(Options{}) })

	Debug("variant measured", "variant", "linked")
	Error("comparison failed")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "variant measured", rec["msg"])
	assert.Equal(t, "linked", rec["variant"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func Test_Init_DisableAfterEnable(t *testing.T) {
	var buf bytes.Buffer
	_, err := Init(Options{Enabled: true, Level: slog.LevelDebug, Writer: &buf})
	require.NoError(t, err)

	_, err = Init(Options{})
	require.NoError(t, err)
	assert.False(t, L.Enabled(t.Context(), slog.LevelDebug))
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))

	Error("dropped")
	assert.Empty(t, buf.String())
}
