package txmgr

//go:generate mockgen -source interface.go -destination interface_mock.go -package txmgr

import "context"

// ITransactionInformer interface for transaction information. Implemented in adapter package.
type ITransactionInformer interface {
	// InTransaction returns true if transaction is started.
	InTransaction(ctx context.Context) bool
	// TransactionOptions returns transaction parameters.
	TransactionOptions(ctx context.Context) Options
}

// ITransactionBeginner interface for starting transactions. Implemented in adapter package.
type ITransactionBeginner interface {
	Begin(ctx context.Context, f func(ctxTr context.Context) error, opts Options) error

	// WithoutTransaction returns context without transaction.
	WithoutTransaction(ctx context.Context) context.Context
}

// ITransactionFinisher finishes a transaction started without a callback.
// Exactly one of Commit or Rollback must succeed.
// If neither can, Release closes the connection without finishing the transaction.
type ITransactionFinisher interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Release(ctx context.Context) error
}

// ITransactionManager interface for managing database transactions.
// Located here at the implementation point for convenient use in other packages.
type ITransactionManager interface {
	// Begin starts a transaction. If transaction is already started - just runs f.
	Begin(ctx context.Context, f func(ctxTr context.Context) error, opts ...Option) error

	// WithoutTransaction returns context without transaction.
	WithoutTransaction(ctx context.Context) context.Context
}
