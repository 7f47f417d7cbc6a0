// Package postgres implements the profile store on PostgreSQL through GORM.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"scout/config"
	"scout/internal/domain/lifecycle"
	"scout/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the connection pool, verifies it on startup, and keeps a
// background watch on pool contention.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// The profile store is a single-document-per-user table; every
		// operation is a single statement, so the implicit per-statement
		// transaction only adds round trips.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// monitorDBPool samples pool statistics and logs intervals in which
// connections had to wait. Sustained waits mean the pool is undersized for
// the traffic.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			logPoolWait(ctx, logger, prev, cur)
			prev = cur
		}
	}
}

func logPoolWait(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta == 0 {
		return
	}
	waitDurationDelta := cur.WaitDuration - prev.WaitDuration

	attrs := []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
		slog.Int64("waitCountTotal", cur.WaitCount),
		slog.Duration("waitDurationTotal", cur.WaitDuration),
	}

	level := slog.LevelDebug
	if waitDurationDelta >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}
	logger.LogAttrs(ctx, level, "Postgres pool wait detected", attrs...)
}
