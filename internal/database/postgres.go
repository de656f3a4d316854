// Package database owns the PostgreSQL connection pool and the SQL
// migrations runner used at startup.
package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect builds a pgx pool and verifies it with a ping, retrying a few
// times so the server survives the database coming up after it.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	poolCfg.MaxConns = 25
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	var pool *pgxpool.Pool
	const maxRetries = 5
	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = pool.Ping(pingCtx)
			cancel()
			if err == nil {
				return pool, nil
			}
			pool.Close()
		}
		if i < maxRetries-1 {
			wait := time.Duration(i+1) * 2 * time.Second
			log.Printf("[db] connect failed (%v), retrying in %s", err, wait)
			time.Sleep(wait)
		}
	}
	return nil, fmt.Errorf("connect to postgres after %d attempts: %w", maxRetries, err)
}
