package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope(t *testing.T) {
	tests := []struct {
		name  string
		scope string
	}{
		{"basic scope", "server"},
		{"nested scope", "handlers.signup"},
		{"empty scope", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Scope(tt.scope)
			assert.Equal(t, "scope", attr.Key)
			assert.Equal(t, tt.scope, attr.Value.String())
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"simple error", errors.New("something went wrong")},
		{"nil error", nil},
		{"joined error", errors.Join(errors.New("outer"), errors.New("inner"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Error(tt.err)
			assert.Equal(t, "error", attr.Key)
			assert.Equal(t, tt.err, attr.Value.Any())
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		raw      string
		enabled  slog.Level
		disabled *slog.Level
	}{
		{raw: "", enabled: slog.LevelInfo, disabled: levelPtr(slog.LevelDebug)},
		{raw: "debug", enabled: slog.LevelDebug},
		{raw: "DeBuG", enabled: slog.LevelDebug},
		{raw: "warn", enabled: slog.LevelWarn, disabled: levelPtr(slog.LevelInfo)},
		{raw: "warning", enabled: slog.LevelWarn, disabled: levelPtr(slog.LevelInfo)},
		{raw: "error", enabled: slog.LevelError, disabled: levelPtr(slog.LevelWarn)},
		{raw: "invalid", enabled: slog.LevelInfo, disabled: levelPtr(slog.LevelDebug)},
	}

	for _, tt := range tests {
		t.Run("LOG_LEVEL="+tt.raw, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.raw)
			t.Setenv("GO_ENV", "")

			log := NewLogger()
			require.NotNil(t, log)

			assert.True(t, log.Enabled(context.Background(), tt.enabled))
			if tt.disabled != nil {
				assert.False(t, log.Enabled(context.Background(), *tt.disabled))
			}
		})
	}
}

func TestNewLogger_ProductionJSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GO_ENV", "production")

	log := NewLogger()
	require.NotNil(t, log)

	_, isJSON := log.Handler().(*slog.JSONHandler)
	assert.True(t, isJSON, "production should log JSON")
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
}

func TestDiscard(t *testing.T) {
	log := Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}

func levelPtr(l slog.Level) *slog.Level { return &l }
