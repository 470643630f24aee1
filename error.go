package db2itx

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrTxDone is returned by operations on a transaction that was already committed or rolled back.
var ErrTxDone = errors.New("transaction has already been committed or rolled back")

// ErrorKind tells which step of a transaction operation failed.
type ErrorKind int

// Error kinds.
const (
	KindConnectionOpen ErrorKind = iota + 1
	KindTransactionBegin
	KindCommit
	KindRollback
	KindClose
)

// String returns the step name.
func (k ErrorKind) String() string {
	switch k {
	case KindConnectionOpen:
		return "open connection"
	case KindTransactionBegin:
		return "begin transaction"
	case KindCommit:
		return "commit transaction"
	case KindRollback:
		return "rollback transaction"
	case KindClose:
		return "close connection"
	default:
		return "unknown"
	}
}

// Error is a native driver error tagged with the step that produced it.
// The native error is kept as is and is reachable through errors.Is/As.
type Error struct {
	Kind ErrorKind
	Err  error
}

// NewError tags err with kind. Returns nil for nil err.
func NewError(kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}

	return &Error{
		Kind: kind,
		Err:  err,
	}
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first Error in the chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsConnectionError checks if opening the connection failed.
func IsConnectionError(err error) bool {
	return isKind(err, KindConnectionOpen)
}

// IsBeginError checks if the native begin (or isolation level setup) failed.
func IsBeginError(err error) bool {
	return isKind(err, KindTransactionBegin)
}

// IsCommitError checks if the native commit failed. The connection is still open in this case.
func IsCommitError(err error) bool {
	return isKind(err, KindCommit)
}

// IsRollbackError checks if the native rollback failed. The connection is still open in this case.
func IsRollbackError(err error) bool {
	return isKind(err, KindRollback)
}

// IsCloseError checks if the transaction finished but closing the connection failed.
func IsCloseError(err error) bool {
	return isKind(err, KindClose)
}

func isKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// Helpers for classifying errors of PostgreSQL-backed native drivers.
// https://www.postgresql.org/docs/16/errcodes-appendix.html

// IsSerializationFailure checks if the error is a serialization failure (SERIALIZABLE / REPEATABLE READ conflicts).
func IsSerializationFailure(err error) bool {
	if pgErr, ok := toPgError(err); ok {
		return pgErr.Code == pgerrcode.SerializationFailure
	}
	return false
}

// IsDeadlock checks if the error is a detected deadlock.
func IsDeadlock(err error) bool {
	if pgErr, ok := toPgError(err); ok {
		return pgErr.Code == pgerrcode.DeadlockDetected
	}
	return false
}

// IsTransactionRollback checks if the server rolled the transaction back by itself (class 40).
func IsTransactionRollback(err error) bool {
	if pgErr, ok := toPgError(err); ok {
		return pgerrcode.IsTransactionRollback(pgErr.Code)
	}
	return false
}

func toPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}
