// Package txmgr implements a driver-agnostic transaction manager.
package txmgr

import (
	"context"
	"fmt"
)

// Options represents transaction manager configuration options.
type Options struct {
	// Level defines the transaction isolation level.
	Level TransactionLevel
}

// Option transaction manager option function.
type Option func(*Options)

// WithTransactionLevel sets the transaction isolation level.
func WithTransactionLevel(level TransactionLevel) Option {
	return func(opts *Options) {
		opts.Level = level
	}
}

// TransactionManager handles database transactions.
type TransactionManager struct {
	tmBeginner ITransactionBeginner
	tmInformer ITransactionInformer
}

var _ ITransactionManager = (*TransactionManager)(nil)

// New creates a new TransactionManager.
func New(tmBeginner ITransactionBeginner, tmInformer ITransactionInformer) *TransactionManager {
	return &TransactionManager{
		tmBeginner: tmBeginner,
		tmInformer: tmInformer,
	}
}

// Begin starts a new transaction and executes the function.
// Inside a running transaction f is executed directly, the requested level must match the running one.
// Levels outside the enumeration are passed to the beginner unchanged; the adapter runs them at its default level.
func (tm *TransactionManager) Begin(ctx context.Context, f func(ctxTr context.Context) error, opts ...Option) error {
	tmOpts := &Options{
		Level: TxLevelDefault,
	}
	for _, opt := range opts {
		opt(tmOpts)
	}

	if tm.tmInformer.InTransaction(ctx) { // transaction is already started
		cOpt := tm.tmInformer.TransactionOptions(ctx)

		// we cannot change transaction level
		if cOpt.Level != tmOpts.Level {
			return fmt.Errorf("transaction level mismatch: %s != %s", cOpt.Level, tmOpts.Level)
		}

		return f(ctx)
	}

	return tm.tmBeginner.Begin(ctx, f, *tmOpts)
}

// WithoutTransaction returns context without transaction.
func (tm *TransactionManager) WithoutTransaction(ctx context.Context) context.Context {
	return tm.tmBeginner.WithoutTransaction(ctx)
}
