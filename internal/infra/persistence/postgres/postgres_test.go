package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"docs/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_RequiresPostgresConfig(t *testing.T) {
	_, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    slog.Default(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres configuration is required")
}

func TestPoolMonitor_Report(t *testing.T) {
	var buf bytes.Buffer
	m := &poolMonitor{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	m.report(context.Background(), sql.DBStats{}, sql.DBStats{})
	assert.Empty(t, buf.String())

	m.report(context.Background(), sql.DBStats{}, sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")

	buf.Reset()
	m.report(context.Background(), sql.DBStats{}, sql.DBStats{WaitCount: 1, WaitDuration: time.Second})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waitCountDelta=1")
}

func TestPoolMonitor_StopWithoutStart(t *testing.T) {
	m := &poolMonitor{}
	m.start()
	m.stop()
}
