package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const createEventsTable = `
CREATE TABLE IF NOT EXISTS guard_events (
	id           UUID PRIMARY KEY,
	ts           TIMESTAMPTZ NOT NULL,
	user_id      TEXT NOT NULL,
	chat_id      TEXT,
	severity     TEXT NOT NULL,
	action       TEXT NOT NULL,
	categories   TEXT[],
	rate_limited BOOLEAN NOT NULL DEFAULT FALSE,
	fingerprint  TEXT NOT NULL
)`

const insertEvent = `
INSERT INTO guard_events
	(id, ts, user_id, chat_id, severity, action, categories, rate_limited, fingerprint)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// PostgresSink writes events to a guard_events table. The table is
// created on startup so a fresh database works without migrations.
type PostgresSink struct {
	pool *pgxpool.Pool
}

// NewPostgresSink connects to dsn and ensures the events table exists.
func NewPostgresSink(ctx context.Context, dsn string) (*PostgresSink, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("audit postgres: %w", err)
	}

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if _, err := pool.Exec(initCtx, createEventsTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("audit postgres init: %w", err)
	}
	return &PostgresSink{pool: pool}, nil
}

func (s *PostgresSink) Name() string { return "postgres" }

func (s *PostgresSink) Deliver(ctx context.Context, event Event) error {
	_, err := s.pool.Exec(ctx, insertEvent,
		event.ID,
		event.Timestamp,
		event.UserID,
		nullable(event.ChatID),
		event.Severity,
		event.Action,
		event.Categories,
		event.RateLimited,
		event.Fingerprint,
	)
	return err
}

func (s *PostgresSink) Close() error {
	s.pool.Close()
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
