package db

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryHook_LogsAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	hook := NewQueryHook(logger)

	ctx, err := hook.BeforeQuery(context.Background(), &pg.QueryEvent{})
	require.NoError(t, err)

	err = hook.AfterQuery(ctx, &pg.QueryEvent{Query: "SELECT 1", StartTime: time.Now()})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "SELECT 1")
}
