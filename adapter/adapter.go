// Package adapter maps begin/commit/rollback onto a native driver.
//
// Every transaction gets its own connection: BeginTransaction opens it, a successful Commit or Rollback closes it.
// Native errors are returned as db2itx.Error values tagged with the failed step, the native error itself
// stays reachable through errors.Is/As.
package adapter

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v5"
	"github.com/n-r-w/db2itx"
	"github.com/n-r-w/db2itx/native"
	"github.com/n-r-w/db2itx/txmgr"
	"github.com/samber/lo"
)

// ErrNilTx is returned when a nil handle is passed to Commit, Rollback or Release.
var ErrNilTx = errors.New("nil transaction handle")

// isolationCodes maps txmgr levels to native codes. Everything else uses native.IsolationReadCommitted.
var isolationCodes = map[txmgr.TransactionLevel]native.IsolationCode{ //nolint:gochecknoglobals // constant table
	txmgr.TxReadUncommitted: native.IsolationReadUncommitted,
	txmgr.TxReadCommitted:   native.IsolationReadCommitted,
	txmgr.TxSerializable:    native.IsolationSerializable,
	txmgr.TxRepeatableRead:  native.IsolationRepeatableRead,
}

// IsolationCode returns the native code for level.
func IsolationCode(level txmgr.TransactionLevel) native.IsolationCode {
	return lo.ValueOr(isolationCodes, level, native.IsolationReadCommitted)
}

// Adapter runs transactions on a native driver. Implements ITransactionAdapter,
// txmgr.ITransactionBeginner, txmgr.ITransactionInformer and bootstrap.IService.
type Adapter struct {
	name          string
	connStr       string
	driver        native.IDriver
	restartPolicy []backoff.RetryOption

	afterStartFunc func(context.Context, *Adapter) error

	logger db2itx.ILogger
}

var _ ITransactionAdapter = (*Adapter)(nil)

// New creates a new Adapter over driver.
func New(driver native.IDriver, opt ...Option) *Adapter {
	if driver == nil {
		panic("nil native driver")
	}

	a := &Adapter{
		driver: driver,
	}

	for _, o := range opt {
		o(a)
	}

	if a.name == "" {
		a.name = "db2itx"
	}

	if a.logger == nil {
		a.logger = db2itx.NopLogger{}
	}

	return a
}

// Tx is the handle of a transaction: the connection enrolled in it.
// A handle is committed or rolled back successfully exactly once, afterwards every operation returns db2itx.ErrTxDone.
// Handles are not safe for concurrent use.
type Tx struct {
	conn  native.IConnection
	level txmgr.TransactionLevel
	done  bool
}

func newTx(conn native.IConnection, level txmgr.TransactionLevel) *Tx {
	return &Tx{
		conn:  conn,
		level: level,
	}
}

// Conn returns the native connection. It identifies the transaction.
func (t *Tx) Conn() native.IConnection {
	return t.conn
}

// Level returns the requested isolation level.
func (t *Tx) Level() txmgr.TransactionLevel {
	return t.level
}

// Done reports whether the handle was finished.
func (t *Tx) Done() bool {
	return t.done
}

// BeginTransaction opens a connection and starts a native transaction on it.
// For any level except txmgr.TxLevelDefault the native isolation code is applied after the native begin,
// also when the begin failed.
//
// An open error is returned as a db2itx.KindConnectionOpen error with a nil handle.
// A begin (or isolation) error is returned as a db2itx.KindTransactionBegin error together with the handle:
// its connection stays open and must be closed with Release.
func (a *Adapter) BeginTransaction(ctx context.Context, level txmgr.TransactionLevel) (*Tx, error) {
	a.logger.Debugf(ctx, "begin transaction: isolation level %s", level)

	conn, err := a.driver.Open(ctx, a.connStr)
	if err != nil {
		return nil, db2itx.NewError(db2itx.KindConnectionOpen, err)
	}

	beginErr := conn.BeginTransaction(ctx)

	// The level is applied regardless of beginErr.
	var isoErr error
	if level != txmgr.TxLevelDefault {
		isoErr = conn.SetIsolationLevel(ctx, IsolationCode(level))
	}

	tx := newTx(conn, level)

	if beginErr != nil {
		a.logger.Warningf(ctx, "begin transaction failed: %v", beginErr)
		return tx, db2itx.NewError(db2itx.KindTransactionBegin, beginErr)
	}

	if isoErr != nil {
		a.logger.Warningf(ctx, "set isolation level %s failed: %v", level, isoErr)
		return tx, db2itx.NewError(db2itx.KindTransactionBegin, isoErr)
	}

	return tx, nil
}

// Commit commits the transaction and closes its connection.
// If the native commit fails the error is returned and the connection stays open:
// the caller may retry, roll back or Release.
// Otherwise the result of closing the connection is returned.
func (a *Adapter) Commit(ctx context.Context, tx *Tx) error {
	a.logger.Debugf(ctx, "commit transaction")

	return a.finish(ctx, tx, native.IConnection.CommitTransaction, db2itx.KindCommit)
}

// Rollback rolls back the transaction and closes its connection.
// Failures are handled the same way as in Commit.
func (a *Adapter) Rollback(ctx context.Context, tx *Tx) error {
	a.logger.Debugf(ctx, "rollback transaction")

	return a.finish(ctx, tx, native.IConnection.RollbackTransaction, db2itx.KindRollback)
}

// Release closes the connection of a handle without finishing the transaction,
// e.g. after a begin error or a failed commit. The driver decides what happens to the open transaction.
func (a *Adapter) Release(ctx context.Context, tx *Tx) error {
	if tx == nil {
		return ErrNilTx
	}
	if tx.done {
		return db2itx.ErrTxDone
	}

	a.logger.Debugf(ctx, "release connection")

	tx.done = true
	return db2itx.NewError(db2itx.KindClose, tx.conn.Close(ctx))
}

func (a *Adapter) finish(ctx context.Context, tx *Tx,
	op func(native.IConnection, context.Context) error, kind db2itx.ErrorKind,
) error {
	if tx == nil {
		return ErrNilTx
	}
	if tx.done {
		return db2itx.ErrTxDone
	}

	if err := op(tx.conn, ctx); err != nil {
		a.logger.Warningf(ctx, "%s failed, connection left open: %v", kind, err)
		return db2itx.NewError(kind, err)
	}

	tx.done = true

	if err := tx.conn.Close(ctx); err != nil {
		a.logger.Warningf(ctx, "close connection after %s: %v", kind, err)
		return db2itx.NewError(db2itx.KindClose, err)
	}

	return nil
}
