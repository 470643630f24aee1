// Package pgxnative implements native.IDriver with one dedicated pgx connection per session.
package pgxnative

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/n-r-w/db2itx/native"
)

const (
	sqlBegin    = "BEGIN"
	sqlCommit   = "COMMIT"
	sqlRollback = "ROLLBACK"
)

// Option option for Driver.
type Option func(*Driver)

// WithConfigFunc sets a function that adjusts the parsed connection config before connecting.
func WithConfigFunc(f func(*pgx.ConnConfig)) Option {
	return func(d *Driver) {
		d.configFunc = f
	}
}

// Driver opens PostgreSQL sessions. Implements native.IDriver.
type Driver struct {
	configFunc func(*pgx.ConnConfig)
	connect    func(ctx context.Context, cfg *pgx.ConnConfig) (IConn, error)
}

var _ native.IDriver = (*Driver)(nil)

// New creates a new Driver.
func New(opt ...Option) *Driver {
	d := &Driver{
		connect: connectPgx,
	}

	for _, o := range opt {
		o(d)
	}

	return d
}

func connectPgx(ctx context.Context, cfg *pgx.ConnConfig) (IConn, error) {
	return pgx.ConnectConfig(ctx, cfg)
}

// Open connects to the database described by connStr.
func (d *Driver) Open(ctx context.Context, connStr string) (native.IConnection, error) {
	cfg, err := pgx.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	if d.configFunc != nil {
		d.configFunc(cfg)
	}

	conn, err := d.connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Host, err)
	}

	return newConnection(conn), nil
}

// Connection is a session over a single pgx connection. Implements native.IConnection.
type Connection struct {
	conn IConn
}

var _ native.IConnection = (*Connection)(nil)

func newConnection(conn IConn) *Connection {
	return &Connection{conn: conn}
}

// BeginTransaction executes BEGIN.
func (c *Connection) BeginTransaction(ctx context.Context) error {
	return c.exec(ctx, sqlBegin)
}

// SetIsolationLevel executes SET TRANSACTION ISOLATION LEVEL for the code.
// PostgreSQL accepts it only before the first query of the transaction.
func (c *Connection) SetIsolationLevel(ctx context.Context, code native.IsolationCode) error {
	sql, err := native.SetIsolationSQL(code)
	if err != nil {
		return err
	}

	return c.exec(ctx, sql)
}

// CommitTransaction executes COMMIT.
func (c *Connection) CommitTransaction(ctx context.Context) error {
	return c.exec(ctx, sqlCommit)
}

// RollbackTransaction executes ROLLBACK.
func (c *Connection) RollbackTransaction(ctx context.Context) error {
	return c.exec(ctx, sqlRollback)
}

// Close closes the pgx connection.
func (c *Connection) Close(ctx context.Context) error {
	return c.conn.Close(ctx)
}

// Conn returns the underlying connection for running statements inside the transaction.
func (c *Connection) Conn() IConn {
	return c.conn
}

func (c *Connection) exec(ctx context.Context, sql string) error {
	if _, err := c.conn.Exec(ctx, sql); err != nil {
		return fmt.Errorf("%s: %w", sql, err)
	}
	return nil
}
