package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/n-r-w/db2itx"
	"github.com/n-r-w/db2itx/native"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type closingDriver struct {
	*native.MockIDriver
	closed   bool
	closeErr error
}

func (d *closingDriver) Close() error {
	d.closed = true
	return d.closeErr
}

func TestAdapter_Service(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("start and stop", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		driver := &closingDriver{MockIDriver: native.NewMockIDriver(ctrl)}
		conn := native.NewMockIConnection(ctrl)

		afterStart := false
		a := New(driver,
			WithName("orders"),
			WithConnString(testConnStr),
			WithRestartPolicy(backoff.WithMaxTries(3)),
			WithAfterStartFunc(func(_ context.Context, got *Adapter) error {
				afterStart = true
				require.Equal(t, "orders", got.Info().Name)
				return nil
			}),
		)

		require.Len(t, a.Info().RestartPolicy, 1)

		driver.EXPECT().Open(ctx, testConnStr).Return(conn, nil)
		conn.EXPECT().Close(ctx).Return(nil)

		require.NoError(t, a.Start(ctx))
		require.True(t, afterStart)

		require.NoError(t, a.Stop(ctx))
		require.True(t, driver.closed)
	})

	t.Run("start error", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		driver := native.NewMockIDriver(ctrl)
		openErr := errors.New("host unreachable")

		a := New(driver, WithAfterStartFunc(func(context.Context, *Adapter) error {
			t.Fatal("after start function must not run")
			return nil
		}))
		require.Equal(t, "db2itx", a.Info().Name)

		driver.EXPECT().Open(ctx, "").Return(nil, openErr)

		err := a.Start(ctx)
		require.ErrorIs(t, err, openErr)
		require.True(t, db2itx.IsConnectionError(err))

		// plain drivers have nothing to close
		require.NoError(t, a.Stop(ctx))
	})

	t.Run("after start error", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		driver := native.NewMockIDriver(ctrl)
		conn := native.NewMockIConnection(ctrl)

		a := New(driver, WithAfterStartFunc(func(context.Context, *Adapter) error {
			return errors.New("migration failed")
		}))

		driver.EXPECT().Open(ctx, "").Return(conn, nil)
		conn.EXPECT().Close(ctx).Return(nil)

		require.ErrorContains(t, a.Start(ctx), "failed to run after start function")
	})

	t.Run("stop error", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		driver := &closingDriver{MockIDriver: native.NewMockIDriver(ctrl), closeErr: errors.New("busy")}

		ctxStop, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()

		require.ErrorContains(t, New(driver).Stop(ctxStop), "failed to close native driver")
	})
}

func TestNew_NilDriver(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		New(nil)
	})
}
