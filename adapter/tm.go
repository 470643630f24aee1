package adapter

import (
	"context"
	"fmt"

	"github.com/n-r-w/db2itx"
	"github.com/n-r-w/db2itx/native"
	"github.com/n-r-w/db2itx/txmgr"
)

var (
	_ txmgr.ITransactionBeginner = (*Adapter)(nil)
	_ txmgr.ITransactionInformer = (*Adapter)(nil)
	_ db2itx.ITransactionStarter = (*Adapter)(nil)
)

// Begin runs a function within a transaction.
func (a *Adapter) Begin(ctx context.Context, f func(ctxTr context.Context) error, opts txmgr.Options) error {
	return db2itx.BeginFunc(ctx, a, opts, f)
}

// BeginTx begins a new transaction with the provided options.
// Unlike BeginTransaction, a failed begin releases the connection.
func (a *Adapter) BeginTx(ctx context.Context, opts txmgr.Options) (context.Context, txmgr.ITransactionFinisher, error) {
	tx, err := a.BeginTransaction(ctx, opts.Level)
	if err != nil {
		if tx != nil {
			if errRelease := a.Release(ctx, tx); errRelease != nil {
				err = fmt.Errorf("%w (release error: %v)", err, errRelease) //nolint:errorlint // ok for 2 errors
			}
		}
		return nil, nil, err
	}

	// Create transaction object and put it in context
	tCtx := newTransaction(a, tx, opts).toContext(ctx)

	return tCtx, &transactionFinisher{
		a:  a,
		tx: tx,
	}, nil
}

// InTransaction returns true if transaction is started.
func (a *Adapter) InTransaction(ctx context.Context) bool {
	_, ok := a.txFromContext(ctx)
	return ok
}

// TransactionOptions returns transaction parameters. If transaction is not started, returns zero Options.
func (a *Adapter) TransactionOptions(ctx context.Context) txmgr.Options {
	t, ok := a.txFromContext(ctx)
	if !ok {
		return txmgr.Options{}
	}

	return t.opts
}

// WithoutTransaction returns context without transaction.
func (a *Adapter) WithoutTransaction(ctx context.Context) context.Context {
	return WithoutTransaction(ctx)
}

// Connection returns the native connection of the transaction stored in ctx.
// Use only at repository level.
func (a *Adapter) Connection(ctx context.Context) (native.IConnection, bool) {
	t, ok := a.txFromContext(ctx)
	if !ok {
		return nil, false
	}

	return t.tx.Conn(), true
}

func (a *Adapter) txFromContext(ctx context.Context) (*transaction, bool) {
	t, ok := txFromContext(ctx)
	if !ok || t.a != a {
		return nil, false
	}

	return t, true
}

type txKeyType int

// txKey key for storing transaction in context.
const txKey txKeyType = 0

// transaction stores transaction information.
type transaction struct {
	a    *Adapter
	tx   *Tx
	opts txmgr.Options
}

func newTransaction(a *Adapter, tx *Tx, opts txmgr.Options) *transaction {
	if a == nil || tx == nil {
		panic("invalid arguments") // just in case
	}

	return &transaction{
		a:    a,
		tx:   tx,
		opts: opts,
	}
}

// toContext puts transaction in context.
func (t *transaction) toContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey, t)
}

// txFromContext extracts transaction from context.
func txFromContext(ctx context.Context) (*transaction, bool) {
	it, ok := ctx.Value(txKey).(*transaction)

	if !ok || it == nil {
		return nil, false
	}

	return it, true
}

// WithoutTransaction returns context without transaction.
func WithoutTransaction(ctx context.Context) context.Context {
	if _, ok := txFromContext(ctx); !ok {
		return ctx
	}

	return context.WithValue(ctx, txKey, (*transaction)(nil))
}

// transactionFinisher implements txmgr.ITransactionFinisher.
type transactionFinisher struct {
	a  *Adapter
	tx *Tx
}

// Commit commits the transaction.
func (t *transactionFinisher) Commit(ctx context.Context) error {
	return t.a.Commit(ctx, t.tx)
}

// Rollback rolls back the transaction.
func (t *transactionFinisher) Rollback(ctx context.Context) error {
	return t.a.Rollback(ctx, t.tx)
}

// Release closes the connection if neither Commit nor Rollback succeeded.
func (t *transactionFinisher) Release(ctx context.Context) error {
	return t.a.Release(ctx, t.tx)
}
