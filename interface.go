package db2itx

//go:generate mockgen -source interface.go -destination interface_mock.go -package db2itx

import (
	"context"

	"github.com/n-r-w/db2itx/txmgr"
)

// ITransactionStarter starts a transaction and returns a context carrying it. Implemented in adapter package.
type ITransactionStarter interface {
	BeginTx(ctx context.Context, opts txmgr.Options) (context.Context, txmgr.ITransactionFinisher, error)
}
