package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"users-api/internal/customerrors"
)

const createUsersTable = `
	CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(255) PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
`

// OpenFunc opens a database handle. sql.Open satisfies it.
type OpenFunc func(driverName, dataSourceName string) (*sql.DB, error)

// Provisioner hands out one fresh connection per request. Nothing is shared
// between acquisitions, so a frozen or recycled process never sees stale state.
type Provisioner struct {
	databaseURL    string
	connectTimeout time.Duration
	open           OpenFunc
}

// Option configures a Provisioner
type Option func(*Provisioner)

// WithOpener replaces sql.Open, mainly for tests
func WithOpener(open OpenFunc) Option {
	return func(p *Provisioner) {
		p.open = open
	}
}

// WithConnectTimeout bounds the connect + schema check performed by Acquire
func WithConnectTimeout(timeout time.Duration) Option {
	return func(p *Provisioner) {
		p.connectTimeout = timeout
	}
}

// NewProvisioner creates a provisioner for databaseURL
func NewProvisioner(databaseURL string, opts ...Option) *Provisioner {
	p := &Provisioner{
		databaseURL:    databaseURL,
		connectTimeout: 5 * time.Second,
		open:           sql.Open,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Acquire opens a connection and makes sure the users table exists.
// Failures wrap customerrors.ErrConnectivity and leave nothing open.
func (p *Provisioner) Acquire(ctx context.Context) (*Session, error) {
	db, err := p.open("postgres", p.databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %v", customerrors.ErrConnectivity, err)
	}

	// A single connection per request; no pooling.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	setupCtx, cancel := context.WithTimeout(ctx, p.connectTimeout)
	defer cancel()

	if err := db.PingContext(setupCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %v", customerrors.ErrConnectivity, err)
	}

	if _, err := db.ExecContext(setupCtx, createUsersTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to ensure users table: %v", customerrors.ErrConnectivity, err)
	}

	return &Session{db: db}, nil
}

// Session is a request-scoped connection
type Session struct {
	db       *sql.DB
	once     sync.Once
	closeErr error
}

// DB returns the handle queries should run on
func (s *Session) DB() *sql.DB {
	return s.db
}

// Release closes the connection. Only the first call does any work.
func (s *Session) Release() error {
	s.once.Do(func() {
		s.closeErr = s.db.Close()
	})
	return s.closeErr
}
