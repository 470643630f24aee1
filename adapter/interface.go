package adapter

import (
	"context"

	"github.com/n-r-w/db2itx/txmgr"
)

// ITransactionAdapter begin/commit/rollback contract of Adapter.
type ITransactionAdapter interface {
	BeginTransaction(ctx context.Context, level txmgr.TransactionLevel) (*Tx, error)
	Commit(ctx context.Context, tx *Tx) error
	Rollback(ctx context.Context, tx *Tx) error
	Release(ctx context.Context, tx *Tx) error
}

// IStartStopAdapter ITransactionAdapter that can be started and stopped.
type IStartStopAdapter interface {
	ITransactionAdapter
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
