package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"sanctum/internal/logging"
)

const (
	dbPingTimeout  = 5 * time.Second
	dbFirstBackoff = 500 * time.Millisecond
	dbMaxBackoff   = 5 * time.Second
)

// openDatabase opens the pool and waits for the instance to answer pings,
// backing off between attempts until cfg.DBConnectWait runs out. Retries are
// logged so a slow-starting database is visible during boot.
func openDatabase(ctx context.Context, cfg Config, logger *logging.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	deadline := time.Now().Add(cfg.DBConnectWait)
	backoff := dbFirstBackoff

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
		err = db.PingContext(pingCtx)
		cancel()
		if err == nil {
			return db, nil
		}
		if ctx.Err() != nil || !time.Now().Add(backoff).Before(deadline) {
			break
		}

		logger.Warn(fmt.Sprintf("database not ready (attempt %d), retrying in %s", attempt, backoff))
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			_ = db.Close()
			return nil, fmt.Errorf("ping database: %w", ctx.Err())
		}
		if backoff *= 2; backoff > dbMaxBackoff {
			backoff = dbMaxBackoff
		}
	}

	_ = db.Close()
	return nil, fmt.Errorf("ping database: %w", err)
}
