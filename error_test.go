package db2itx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	t.Parallel()

	require.NoError(t, NewError(KindCommit, nil))

	nativeErr := errors.New("SQL0913 row or object in use")
	err := fmt.Errorf("transfer: %w", NewError(KindCommit, nativeErr))

	require.ErrorIs(t, err, nativeErr)
	require.Equal(t, "transfer: commit transaction: SQL0913 row or object in use", err.Error())

	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindCommit, kind)

	require.True(t, IsCommitError(err))
	require.False(t, IsRollbackError(err))
	require.False(t, IsConnectionError(nativeErr))

	_, ok = KindOf(nativeErr)
	require.False(t, ok)
	require.Equal(t, "unknown", ErrorKind(0).String())
}

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	checks := map[ErrorKind]func(error) bool{
		KindConnectionOpen:   IsConnectionError,
		KindTransactionBegin: IsBeginError,
		KindCommit:           IsCommitError,
		KindRollback:         IsRollbackError,
		KindClose:            IsCloseError,
	}

	for kind := range checks {
		err := NewError(kind, errors.New("native"))
		for otherKind, otherCheck := range checks {
			require.Equal(t, kind == otherKind, otherCheck(err), "%s vs %s", kind, otherKind)
		}
	}
}

func TestPgErrors(t *testing.T) {
	t.Parallel()

	serialization := NewError(KindCommit, &pgconn.PgError{Code: pgerrcode.SerializationFailure})
	require.True(t, IsSerializationFailure(serialization))
	require.True(t, IsTransactionRollback(serialization))
	require.False(t, IsDeadlock(serialization))

	deadlock := fmt.Errorf("COMMIT: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	require.True(t, IsDeadlock(deadlock))
	require.True(t, IsTransactionRollback(deadlock))

	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	require.False(t, IsTransactionRollback(unique))
	require.False(t, IsSerializationFailure(errors.New("plain")))
}
