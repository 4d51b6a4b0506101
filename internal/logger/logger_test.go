package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionUsesJSON(t *testing.T) {
	logger := New("production", slog.LevelInfo)
	require.NotNil(t, logger)

	_, ok := logger.Handler().(*slog.JSONHandler)
	assert.True(t, ok, "production should log JSON")
}

func TestNew_DevelopmentUsesText(t *testing.T) {
	logger := New("development", slog.LevelInfo)
	require.NotNil(t, logger)

	_, ok := logger.Handler().(*slog.TextHandler)
	assert.True(t, ok, "non-production should log text")
}

func TestNew_LevelApplies(t *testing.T) {
	logger := New("development", slog.LevelWarn)

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.True(t, logger.Enabled(ctx, slog.LevelWarn))
}
