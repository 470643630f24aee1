// Package native describes the vendor driver the adapter delegates to.
// Implementations live in subpackages, tests use the generated mocks.
package native

//go:generate mockgen -source native.go -destination native_mock.go -package native

import (
	"context"
	"errors"
	"fmt"
)

// IsolationCode is the driver-specific numeric isolation level.
type IsolationCode int

// Native isolation codes understood by IConnection.SetIsolationLevel.
const (
	IsolationReadUncommitted IsolationCode = 1
	IsolationReadCommitted   IsolationCode = 2 // driver default
	IsolationSerializable    IsolationCode = 4
	IsolationRepeatableRead  IsolationCode = 8
)

// String returns the name of the code.
func (c IsolationCode) String() string {
	switch c {
	case IsolationReadUncommitted:
		return "READ UNCOMMITTED"
	case IsolationReadCommitted:
		return "READ COMMITTED"
	case IsolationSerializable:
		return "SERIALIZABLE"
	case IsolationRepeatableRead:
		return "REPEATABLE READ"
	default:
		return "UNKNOWN"
	}
}

// IDriver opens sessions.
type IDriver interface {
	// Open opens a new session described by connStr.
	Open(ctx context.Context, connStr string) (IConnection, error)
}

// IConnection is one open session. It is owned by a single goroutine at a time.
type IConnection interface {
	// BeginTransaction switches the session into a transaction.
	BeginTransaction(ctx context.Context) error
	// SetIsolationLevel applies the isolation code to the session.
	SetIsolationLevel(ctx context.Context, code IsolationCode) error
	// CommitTransaction commits the running transaction.
	CommitTransaction(ctx context.Context) error
	// RollbackTransaction rolls back the running transaction.
	RollbackTransaction(ctx context.Context) error
	// Close releases the session.
	Close(ctx context.Context) error
}

// ErrUnknownIsolationCode is returned for codes outside the native table.
var ErrUnknownIsolationCode = errors.New("unknown isolation code")

// setIsolationSQL statements for SQL-speaking drivers.
var setIsolationSQL = map[IsolationCode]string{ //nolint:gochecknoglobals // constant table
	IsolationReadUncommitted: "SET TRANSACTION ISOLATION LEVEL READ UNCOMMITTED",
	IsolationReadCommitted:   "SET TRANSACTION ISOLATION LEVEL READ COMMITTED",
	IsolationSerializable:    "SET TRANSACTION ISOLATION LEVEL SERIALIZABLE",
	IsolationRepeatableRead:  "SET TRANSACTION ISOLATION LEVEL REPEATABLE READ",
}

// SetIsolationSQL returns the statement that applies code to the running transaction.
func SetIsolationSQL(code IsolationCode) (string, error) {
	sql, ok := setIsolationSQL[code]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownIsolationCode, code)
	}
	return sql, nil
}
