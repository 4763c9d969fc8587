package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq"
)

// OpenFunc dials the database and returns a verified handle.
type OpenFunc func(ctx context.Context, dsn string) (*sql.DB, error)

type attempt struct {
	done chan struct{}
	db   *sql.DB
	err  error
}

// Connector lazily establishes a single shared *sql.DB. Concurrent
// first-time callers all await the same in-flight dial instead of
// starting their own. A failed dial clears the in-flight slot so the
// next call retries from scratch; the resolved handle is never set on
// failure. Once resolved, the handle is kept for the process lifetime.
type Connector struct {
	dsn  string
	open OpenFunc

	mu       sync.Mutex
	db       *sql.DB
	inflight *attempt
}

// NewConnector returns a Connector for the given connection string.
// A nil open uses the default lib/pq dial with a connectivity ping.
func NewConnector(dsn string, open OpenFunc) *Connector {
	if open == nil {
		open = defaultOpen
	}
	return &Connector{dsn: dsn, open: open}
}

// DB returns the shared database handle, dialing on first use. The ctx
// bounds only this caller's wait; the dial itself is shared and keeps
// running for the other waiters.
func (c *Connector) DB(ctx context.Context) (*sql.DB, error) {
	c.mu.Lock()
	if c.db != nil {
		db := c.db
		c.mu.Unlock()
		return db, nil
	}
	if c.inflight == nil {
		c.inflight = &attempt{done: make(chan struct{})}
		go c.dial(c.inflight)
	}
	a := c.inflight
	c.mu.Unlock()

	select {
	case <-a.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return a.db, a.err
}

func (c *Connector) dial(a *attempt) {
	db, err := c.open(context.Background(), c.dsn)
	c.mu.Lock()
	if err == nil {
		c.db = db
	}
	c.inflight = nil
	c.mu.Unlock()
	a.db, a.err = db, err
	close(a.done)
}

// defaultOpen opens a lib/pq handle and pings it so a bad target fails
// the attempt immediately instead of deferring the error to the first
// query.
func defaultOpen(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}
