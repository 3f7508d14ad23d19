package xlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BuildAndLog(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New().SetOutput(&buf).SetFormat("json").SetLevel(LevelWarn).Build()
	require.NoError(t, err)

	logger.Info(context.Background(), "should be filtered out")
	assert.Empty(t, buf.String())

	logger.Warn(context.Background(), "prefix skipped", slog.String("reason", "bad hex"))
	assert.Contains(t, buf.String(), "prefix skipped")
	assert.Contains(t, buf.String(), "bad hex")
}

func TestBuilder_UnknownFormat(t *testing.T) {
	_, err := New().SetFormat("yaml").Build()
	assert.Error(t, err)
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New().SetOutput(&buf).SetFormat("text").Build()
	require.NoError(t, err)

	derived := logger.With(slog.String("component", "registry"))
	derived.Warn(context.Background(), "hello")
	assert.True(t, strings.Contains(buf.String(), "component=registry"))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warn ", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseLevel("trace")
	assert.Error(t, err)
}

func TestDefaultAndSetDefault(t *testing.T) {
	var buf bytes.Buffer
	custom, err := New().SetOutput(&buf).Build()
	require.NoError(t, err)

	SetDefault(custom)
	Warn(context.Background(), "via global")
	assert.Contains(t, buf.String(), "via global")

	SetDefault(nil)
	assert.NotNil(t, Default(), "SetDefault(nil) must be a no-op")
}
