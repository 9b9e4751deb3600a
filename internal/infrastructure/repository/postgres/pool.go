package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const driverName = "postgres"

// ErrPoolClosed is returned by every operation on a pool that was never opened
// or has already been closed.
var ErrPoolClosed = errors.New("database pool is closed")

type PoolConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (c PoolConfig) validate() error {
	if strings.TrimSpace(c.URL) == "" {
		return fmt.Errorf("database url is required")
	}
	if c.MaxOpenConns < 0 || c.MaxIdleConns < 0 {
		return fmt.Errorf("connection limits must not be negative")
	}
	return nil
}

type openFunc func(driverName, dsn string, opts ...otelsql.Option) (*sqlx.DB, error)

// Pool owns the process-wide connection pool. It is created once at startup,
// opened before the first request and closed at shutdown. The underlying
// database/sql pool bounds concurrent connections; callers past the limit wait
// inside it.
type Pool struct {
	cfg    PoolConfig
	logger *logging.Logger
	open   openFunc

	mu     sync.Mutex
	db     *sqlx.DB
	closed bool
}

func NewPool(cfg PoolConfig, logger *logging.Logger) (*Pool, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid pool config: %w", err)
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Pool{
		cfg:    cfg,
		logger: logger.Named("postgres"),
		open:   otelsqlx.Open,
	}, nil
}

// NewPoolFromDB wraps an already opened handle.
func NewPoolFromDB(db *sqlx.DB, logger *logging.Logger) *Pool {
	if logger == nil {
		logger = logging.Default()
	}
	return &Pool{
		logger: logger.Named("postgres"),
		open:   otelsqlx.Open,
		db:     db,
	}
}

// Open connects and pings the database. Calling Open on an open pool is a no-op.
func (p *Pool) Open(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPoolClosed
	}
	if p.db != nil {
		return nil
	}

	db, err := p.open(driverName, p.cfg.URL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(p.cfg.URL)),
		otelsql.WithQueryFormatter(formatQueryForTrace),
	)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if p.cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(p.cfg.MaxOpenConns)
	}
	if p.cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(p.cfg.MaxIdleConns)
	}
	if p.cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(p.cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping database: %w", err)
	}

	p.db = db
	p.logger.InfoContext(ctx, "database pool opened",
		"db_name", dbNameFromURL(p.cfg.URL),
		"max_open_conns", p.cfg.MaxOpenConns,
	)
	return nil
}

// DB returns the open handle or ErrPoolClosed.
func (p *Pool) DB() (*sqlx.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.db == nil {
		return nil, ErrPoolClosed
	}
	return p.db, nil
}

func (p *Pool) Ping(ctx context.Context) error {
	db, err := p.DB()
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// Close releases every connection. Closing twice reports ErrPoolClosed.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.db == nil {
		p.logger.Warn("close called on a pool that is not open")
		return ErrPoolClosed
	}

	p.closed = true
	err := p.db.Close()
	p.db = nil
	if err != nil {
		p.logger.Error("close database pool failed", "error", err)
		return fmt.Errorf("close database: %w", err)
	}

	p.logger.Info("database pool closed")
	return nil
}

// fail logs a store failure with its operation and wraps it with that context.
func (p *Pool) fail(ctx context.Context, op string, err error) error {
	p.logger.ErrorContext(ctx, "database operation failed", "operation", op, "error", err)
	return crerr.Wrap(err, op)
}
