// Package sqlnative implements native.IDriver on top of database/sql.
// Every session is a dedicated *sql.Conn taken from a *sql.DB opened once per connection string.
package sqlnative

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx postgres driver
	"github.com/n-r-w/db2itx/native"
)

// DefaultDriverName is the database/sql driver registered by pgx/v5/stdlib.
const DefaultDriverName = "pgx"

const (
	sqlBegin    = "BEGIN"
	sqlCommit   = "COMMIT"
	sqlRollback = "ROLLBACK"
)

// Option option for Driver.
type Option func(*Driver)

// WithDriverName sets the database/sql driver name.
func WithDriverName(name string) Option {
	return func(d *Driver) {
		d.driverName = name
	}
}

// WithMaxIdleConns limits idle connections kept by each *sql.DB.
// Zero makes Close of a session close the physical connection.
func WithMaxIdleConns(n int) Option {
	return func(d *Driver) {
		d.maxIdleConns = &n
	}
}

// Driver opens sessions through database/sql. Implements native.IDriver.
type Driver struct {
	driverName   string
	maxIdleConns *int

	mu  sync.Mutex
	dbs map[string]*sql.DB

	conn func(ctx context.Context, db *sql.DB) (IConn, error)
}

var _ native.IDriver = (*Driver)(nil)

// New creates a new Driver.
func New(opt ...Option) *Driver {
	d := &Driver{
		driverName: DefaultDriverName,
		dbs:        make(map[string]*sql.DB),
		conn:       sqlConn,
	}

	for _, o := range opt {
		o(d)
	}

	return d
}

func sqlConn(ctx context.Context, db *sql.DB) (IConn, error) {
	return db.Conn(ctx)
}

// Open takes a dedicated connection for connStr.
func (d *Driver) Open(ctx context.Context, connStr string) (native.IConnection, error) {
	db, err := d.db(connStr)
	if err != nil {
		return nil, err
	}

	conn, err := d.conn(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("get connection: %w", err)
	}

	return newConnection(conn), nil
}

// Close closes every *sql.DB opened by the driver.
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var errs []error
	for connStr, db := range d.dbs {
		errs = append(errs, db.Close())
		delete(d.dbs, connStr)
	}

	return errors.Join(errs...)
}

func (d *Driver) db(connStr string) (*sql.DB, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if db, ok := d.dbs[connStr]; ok {
		return db, nil
	}

	db, err := sql.Open(d.driverName, connStr)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", d.driverName, err)
	}

	if d.maxIdleConns != nil {
		db.SetMaxIdleConns(*d.maxIdleConns)
	}

	d.dbs[connStr] = db

	return db, nil
}

// Connection is a session over a single *sql.Conn. Implements native.IConnection.
type Connection struct {
	conn IConn
	// inTx is set once BEGIN was sent and cleared by a successful COMMIT or ROLLBACK.
	inTx bool
}

var _ native.IConnection = (*Connection)(nil)

func newConnection(conn IConn) *Connection {
	return &Connection{conn: conn}
}

// BeginTransaction executes BEGIN.
func (c *Connection) BeginTransaction(ctx context.Context) error {
	c.inTx = true
	return c.exec(ctx, sqlBegin)
}

// SetIsolationLevel executes SET TRANSACTION ISOLATION LEVEL for the code.
func (c *Connection) SetIsolationLevel(ctx context.Context, code native.IsolationCode) error {
	query, err := native.SetIsolationSQL(code)
	if err != nil {
		return err
	}

	return c.exec(ctx, query)
}

// CommitTransaction executes COMMIT.
func (c *Connection) CommitTransaction(ctx context.Context) error {
	return c.finish(ctx, sqlCommit)
}

// RollbackTransaction executes ROLLBACK.
func (c *Connection) RollbackTransaction(ctx context.Context) error {
	return c.finish(ctx, sqlRollback)
}

// Close returns the connection to database/sql.
// A transaction that may still be open is rolled back first. If the rollback fails,
// the physical connection is discarded so the pool never hands out a session inside a stale transaction.
func (c *Connection) Close(ctx context.Context) error {
	if c.inTx {
		if err := c.finish(ctx, sqlRollback); err != nil {
			return c.discard()
		}
	}

	return c.conn.Close()
}

// Conn returns the underlying connection for running statements inside the transaction.
func (c *Connection) Conn() IConn {
	return c.conn
}

func (c *Connection) finish(ctx context.Context, query string) error {
	if err := c.exec(ctx, query); err != nil {
		return err
	}

	c.inTx = false
	return nil
}

// discard closes the physical connection instead of returning it to the pool.
func (c *Connection) discard() error {
	if err := c.conn.Raw(func(any) error { return driver.ErrBadConn }); err != nil && !errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("discard connection: %w", err)
	}

	// Raw with driver.ErrBadConn already released the *sql.Conn.
	if err := c.conn.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		return err
	}

	return nil
}

func (c *Connection) exec(ctx context.Context, query string) error {
	if _, err := c.conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%s: %w", query, err)
	}
	return nil
}
