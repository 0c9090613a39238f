package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"recruit/config"
	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowStatementThreshold = 200 * time.Millisecond

// sqlLogger sends gorm output to the logger of the request that issued the
// statement, so SQL lines carry the same request_id as the handler's.
type sqlLogger struct {
	fallback      *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newSQLLogger(fallback *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	if fallback == nil {
		fallback = slog.Default()
	}

	return &sqlLogger{
		fallback:      fallback,
		level:         level,
		slowThreshold: slowStatementThreshold,
	}
}

func (l *sqlLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.fallback)
}

func (l *sqlLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *sqlLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *sqlLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *sqlLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *sqlLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold {
		return
	}

	l.from(ctx).LogAttrs(ctx, level, "Database notice", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace reports one executed statement. Lookups that find nothing and
// statements cut short by a cancelled request are expected outcomes and are
// only visible at debug level.
func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	statement := func() []slog.Attr {
		sql, rows := fc()

		return []slog.Attr{
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		}
	}

	switch {
	case err != nil && l.level >= logger.Error:
		level := slog.LevelError
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, context.Canceled) {
			level = slog.LevelDebug
		}
		l.from(ctx).LogAttrs(ctx, level, "Database statement failed",
			append(statement(), slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.from(ctx).LogAttrs(ctx, slog.LevelWarn, "Slow database statement",
			append(statement(), slog.Duration("threshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		l.from(ctx).LogAttrs(ctx, slog.LevelInfo, "Database statement", statement()...)
	}
}
