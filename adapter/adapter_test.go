package adapter

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/n-r-w/db2itx"
	"github.com/n-r-w/db2itx/native"
	"github.com/n-r-w/db2itx/txmgr"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testConnStr = "DSN=*LOCAL;UID=tester"

func newTestAdapter(t *testing.T) (*Adapter, *native.MockIDriver, *native.MockIConnection) {
	t.Helper()

	ctrl := gomock.NewController(t)
	driver := native.NewMockIDriver(ctrl)
	conn := native.NewMockIConnection(ctrl)

	return New(driver, WithConnString(testConnStr)), driver, conn
}

func TestIsolationCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level txmgr.TransactionLevel
		want  native.IsolationCode
	}{
		{txmgr.TxReadUncommitted, 1},
		{txmgr.TxReadCommitted, 2},
		{txmgr.TxSerializable, 4},
		{txmgr.TxRepeatableRead, 8},
		{txmgr.TxLevelDefault, 2},
		{txmgr.TransactionLevel(42), 2},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, IsolationCode(tt.level), tt.level.String())
	}
}

func TestAdapter_BeginTransaction_Levels(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	for _, level := range []txmgr.TransactionLevel{
		txmgr.TxReadUncommitted,
		txmgr.TxReadCommitted,
		txmgr.TxRepeatableRead,
		txmgr.TxSerializable,
	} {
		t.Run(level.String(), func(t *testing.T) {
			t.Parallel()

			a, driver, conn := newTestAdapter(t)
			gomock.InOrder(
				driver.EXPECT().Open(ctx, testConnStr).Return(conn, nil),
				conn.EXPECT().BeginTransaction(ctx).Return(nil),
				conn.EXPECT().SetIsolationLevel(ctx, IsolationCode(level)).Return(nil),
			)

			tx, err := a.BeginTransaction(ctx, level)
			require.NoError(t, err)
			require.Same(t, conn, tx.Conn())
			require.Equal(t, level, tx.Level())
			require.False(t, tx.Done())
		})
	}
}

func TestAdapter_BeginTransaction_DefaultLevel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a, driver, conn := newTestAdapter(t)

	// no SetIsolationLevel call: the driver keeps its default
	driver.EXPECT().Open(ctx, testConnStr).Return(conn, nil)
	conn.EXPECT().BeginTransaction(ctx).Return(nil)

	tx, err := a.BeginTransaction(ctx, txmgr.TxLevelDefault)
	require.NoError(t, err)
	require.NotNil(t, tx)
}

func TestAdapter_BeginTransaction_OpenError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a, driver, _ := newTestAdapter(t)
	openErr := errors.New("SQL30081N communication error")

	driver.EXPECT().Open(ctx, testConnStr).Return(nil, openErr)

	tx, err := a.BeginTransaction(ctx, txmgr.TxSerializable)
	require.Nil(t, tx)
	require.ErrorIs(t, err, openErr)
	require.True(t, db2itx.IsConnectionError(err))
}

func TestAdapter_BeginTransaction_BeginError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a, driver, conn := newTestAdapter(t)
	beginErr := errors.New("begin failed")

	gomock.InOrder(
		driver.EXPECT().Open(ctx, testConnStr).Return(conn, nil),
		conn.EXPECT().BeginTransaction(ctx).Return(beginErr),
		// isolation is still applied after a failed begin
		conn.EXPECT().SetIsolationLevel(ctx, native.IsolationReadUncommitted).Return(nil),
		conn.EXPECT().Close(ctx).Return(nil),
	)

	tx, err := a.BeginTransaction(ctx, txmgr.TxReadUncommitted)
	require.ErrorIs(t, err, beginErr)
	require.True(t, db2itx.IsBeginError(err))

	// the handle owns the open connection
	require.NotNil(t, tx)
	require.Same(t, conn, tx.Conn())
	require.NoError(t, a.Release(ctx, tx))
	require.True(t, tx.Done())
	require.ErrorIs(t, a.Release(ctx, tx), db2itx.ErrTxDone)
}

func TestAdapter_BeginTransaction_IsolationError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a, driver, conn := newTestAdapter(t)
	isoErr := errors.New("isolation not supported")

	driver.EXPECT().Open(ctx, testConnStr).Return(conn, nil)
	conn.EXPECT().BeginTransaction(ctx).Return(nil)
	conn.EXPECT().SetIsolationLevel(ctx, native.IsolationRepeatableRead).Return(isoErr)

	tx, err := a.BeginTransaction(ctx, txmgr.TxRepeatableRead)
	require.ErrorIs(t, err, isoErr)
	require.True(t, db2itx.IsBeginError(err))
	require.NotNil(t, tx)
}

func TestAdapter_CommitClosesConnection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a, driver, conn := newTestAdapter(t)

	gomock.InOrder(
		driver.EXPECT().Open(ctx, testConnStr).Return(conn, nil),
		conn.EXPECT().BeginTransaction(ctx).Return(nil),
		conn.EXPECT().SetIsolationLevel(ctx, native.IsolationSerializable).Return(nil),
		conn.EXPECT().CommitTransaction(ctx).Return(nil),
		conn.EXPECT().Close(ctx).Return(nil).Times(1),
	)

	tx, err := a.BeginTransaction(ctx, txmgr.TxSerializable)
	require.NoError(t, err)
	require.NoError(t, a.Commit(ctx, tx))
	require.True(t, tx.Done())

	// finished handle
	require.ErrorIs(t, a.Commit(ctx, tx), db2itx.ErrTxDone)
	require.ErrorIs(t, a.Rollback(ctx, tx), db2itx.ErrTxDone)
}

func TestAdapter_CommitErrorKeepsConnection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a, driver, conn := newTestAdapter(t)
	commitErr := errors.New("SQL0913 object in use")

	driver.EXPECT().Open(ctx, testConnStr).Return(conn, nil)
	conn.EXPECT().BeginTransaction(ctx).Return(nil)
	conn.EXPECT().CommitTransaction(ctx).Return(commitErr)

	tx, err := a.BeginTransaction(ctx, txmgr.TxLevelDefault)
	require.NoError(t, err)

	// Close is not expected here
	err = a.Commit(ctx, tx)
	require.ErrorIs(t, err, commitErr)
	require.True(t, db2itx.IsCommitError(err))
	require.False(t, tx.Done())

	// the handle is still usable
	gomock.InOrder(
		conn.EXPECT().RollbackTransaction(ctx).Return(nil),
		conn.EXPECT().Close(ctx).Return(nil),
	)
	require.NoError(t, a.Rollback(ctx, tx))
	require.True(t, tx.Done())
}

func TestAdapter_Rollback(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("closes connection", func(t *testing.T) {
		t.Parallel()

		a, _, conn := newTestAdapter(t)
		gomock.InOrder(
			conn.EXPECT().RollbackTransaction(ctx).Return(nil),
			conn.EXPECT().Close(ctx).Return(nil),
		)

		tx := newTx(conn, txmgr.TxReadCommitted)
		require.NoError(t, a.Rollback(ctx, tx))
		require.True(t, tx.Done())
	})

	t.Run("error keeps connection", func(t *testing.T) {
		t.Parallel()

		a, _, conn := newTestAdapter(t)
		rollbackErr := errors.New("rollback failed")
		conn.EXPECT().RollbackTransaction(ctx).Return(rollbackErr)

		tx := newTx(conn, txmgr.TxReadCommitted)
		err := a.Rollback(ctx, tx)
		require.ErrorIs(t, err, rollbackErr)
		require.True(t, db2itx.IsRollbackError(err))
		require.False(t, tx.Done())
	})

	t.Run("close error", func(t *testing.T) {
		t.Parallel()

		a, _, conn := newTestAdapter(t)
		closeErr := errors.New("close failed")
		conn.EXPECT().RollbackTransaction(ctx).Return(nil)
		conn.EXPECT().Close(ctx).Return(closeErr)

		tx := newTx(conn, txmgr.TxReadCommitted)
		err := a.Rollback(ctx, tx)
		require.ErrorIs(t, err, closeErr)
		require.True(t, db2itx.IsCloseError(err))
		// the transaction itself is finished
		require.True(t, tx.Done())
	})

	t.Run("nil handle", func(t *testing.T) {
		t.Parallel()

		a, _, _ := newTestAdapter(t)
		require.ErrorIs(t, a.Rollback(ctx, nil), ErrNilTx)
		require.ErrorIs(t, a.Commit(ctx, nil), ErrNilTx)
		require.ErrorIs(t, a.Release(ctx, nil), ErrNilTx)
	})
}

func TestAdapter_Logging(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	driver := native.NewMockIDriver(ctrl)

	var buf bytes.Buffer
	logger, err := db2itx.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), "db2itx")
	require.NoError(t, err)

	a := New(driver, WithLogger(logger))
	driver.EXPECT().Open(ctx, "").Return(nil, errors.New("refused"))

	_, err = a.BeginTransaction(ctx, txmgr.TxSerializable)
	require.Error(t, err)
	require.Contains(t, buf.String(), "begin transaction: isolation level SERIALIZABLE")
}
