package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	deliverycontext "addresssync/internal/delivery/context"
	"addresssync/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newBufferedLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlAndRows() (string, int64) {
	return `SELECT * FROM "addresses"`, 2
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		elapsed  time.Duration
		err      error
		contains []string
		empty    bool
	}{
		{name: "failed query", err: errors.New("boom"), contains: []string{"level=ERROR", "Query failed", "error=boom"}},
		{name: "not found is quiet", err: gorm.ErrRecordNotFound, empty: true},
		{name: "slow query", elapsed: time.Second, contains: []string{"level=WARN", "Slow query", "rows=2"}},
		{name: "fast query outside debug", empty: true},
		{name: "fast query in debug", debug: true, contains: []string{"level=DEBUG", "Query executed", "component=gorm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newGormSlogLogger(newBufferedLogger(&buf), tt.debug)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlAndRows, tt.err)

			if tt.empty {
				assert.Empty(t, buf.String())

				return
			}
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&base), true)
	ctx, _ := deliverycontext.WithRequestScope(context.Background(), "req-7", newBufferedLogger(&scoped))

	l.Trace(ctx, time.Now(), sqlAndRows, nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-7")
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&buf), true).LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))
	l.Error(context.Background(), "ignored %d", 1)

	assert.Empty(t, buf.String())
}

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond}

	_, _, waited := poolWait(prev, prev)
	assert.False(t, waited)

	level, attrs, waited := poolWait(prev, sql.DBStats{WaitCount: 4, WaitDuration: 20 * time.Millisecond})
	assert.True(t, waited)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, int64(2), attrs[0].Value.Int64())
	assert.Equal(t, 5*time.Millisecond, attrs[2].Value.Duration())

	level, _, _ = poolWait(prev, sql.DBStats{WaitCount: 3, WaitDuration: 110 * time.Millisecond})
	assert.Equal(t, slog.LevelWarn, level)
}
