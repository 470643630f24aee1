package db2itx

import (
	"context"
	"errors"
	"fmt"

	"github.com/n-r-w/db2itx/txmgr"
)

// BeginFunc starts a transaction, executes the callback function, and handles commit/rollback automatically.
// If the callback returns an error, the transaction is rolled back. Otherwise, it is committed.
// A failed commit leaves the connection open, so it is followed by a rollback that releases it.
// If rollback fails, the connection is released and the rollback error is appended to the error returned by f.
func BeginFunc(ctx context.Context, starter ITransactionStarter, opts txmgr.Options,
	f func(ctxTr context.Context) error,
) (err error) {
	ctxTr, tx, err := starter.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	// If panic occurs, rollback the transaction.
	defer func() {
		if p := recover(); p != nil {
			_ = rollback(ctx, tx)
			panic(p) // Re-throw panic after rollback.
		}
	}()

	if err = f(ctxTr); err != nil {
		if rbErr := rollback(ctx, tx); rbErr != nil {
			return fmt.Errorf("%w (rollback error: %v)", err, rbErr) //nolint:errorlint // ok for 2 errors
		}
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		rbErr := rollback(ctx, tx)
		if rbErr != nil && !errors.Is(rbErr, ErrTxDone) {
			return fmt.Errorf("%w (rollback error: %v)", err, rbErr) //nolint:errorlint // ok for 2 errors
		}
		return err
	}

	return nil
}

// rollback rolls back tx. A failed rollback leaves the connection open, so it is released.
func rollback(ctx context.Context, tx txmgr.ITransactionFinisher) error {
	rbErr := tx.Rollback(ctx)
	if rbErr == nil || errors.Is(rbErr, ErrTxDone) {
		return rbErr
	}

	if relErr := tx.Release(ctx); relErr != nil && !errors.Is(relErr, ErrTxDone) {
		return fmt.Errorf("%w (release error: %v)", rbErr, relErr) //nolint:errorlint // ok for 2 errors
	}

	return rbErr
}
