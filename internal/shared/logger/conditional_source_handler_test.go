package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opolancoh/employee-permissions/internal/shared/config"
)

func TestConditionalSourceHandler(t *testing.T) {
	prodLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	debugLevels := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

	tests := []struct {
		name             string
		level            slog.Level
		showSourceLevels []slog.Level
		shouldHaveSource bool
	}{
		{"info in production", slog.LevelInfo, prodLevels, false},
		{"warn in production", slog.LevelWarn, prodLevels, true},
		{"error in production", slog.LevelError, prodLevels, true},
		{"info in debug mode", slog.LevelInfo, debugLevels, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewConditionalSourceHandler(base, tt.showSourceLevels...))

			log.Log(context.Background(), tt.level, "permission stored")

			assert.Equal(t, tt.shouldHaveSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
		})
	}
}

func TestConditionalSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewConditionalSourceHandler(base, slog.LevelError)).
		With("employee_id", "f47ac10b").
		WithGroup("request")

	log.Info("listing permissions", "path", "/api/permissions")

	out := buf.String()
	assert.NotContains(t, out, "source=")
	assert.Contains(t, out, "employee_id=f47ac10b")
	assert.Contains(t, out, "request.path=/api/permissions")
}

func TestConditionalSourceHandler_Enabled(t *testing.T) {
	base := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})
	handler := NewConditionalSourceHandler(base, slog.LevelError)

	assert.True(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestInit_WritesJSONToFile(t *testing.T) {
	path := t.TempDir() + "/app.log"
	t.Cleanup(func() { Logger = nil })

	require.NoError(t, Init(config.LoggerConfig{Level: "info", Format: "json", OutputPath: path}, "release"))
	NewLogger().Infow("Permission successfully added in the database", "employee_id", "abc")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	data := string(raw)
	assert.Contains(t, data, `"msg":"Permission successfully added in the database"`)
	assert.Contains(t, data, `"employee_id":"abc"`)
}
