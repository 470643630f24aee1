package adapter

import (
	"context"
	"fmt"

	"github.com/n-r-w/bootstrap"
	"github.com/n-r-w/db2itx"
)

var (
	_ bootstrap.IService = (*Adapter)(nil)
	_ IStartStopAdapter  = (*Adapter)(nil)
)

// driverCloser is implemented by native drivers that hold resources of their own.
type driverCloser interface {
	Close() error
}

// Start checks that a connection can be opened.
func (a *Adapter) Start(ctx context.Context) (err error) {
	a.logger.Debugf(ctx, "starting adapter %s", a.name)

	defer func() {
		if err == nil && a.afterStartFunc != nil {
			err = a.afterStartFunc(ctx, a)
			if err != nil {
				err = fmt.Errorf("failed to run after start function: %w", err)
			}
		}
	}()

	conn, err := a.driver.Open(ctx, a.connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to database %s: %w", a.name, db2itx.NewError(db2itx.KindConnectionOpen, err))
	}

	if err = conn.Close(ctx); err != nil {
		return fmt.Errorf("failed to close probe connection to database %s: %w", a.name, db2itx.NewError(db2itx.KindClose, err))
	}

	a.logger.Debugf(ctx, "connected to database %s", a.name)

	return nil
}

// Stop stops the service. Closes the native driver if it holds resources.
func (a *Adapter) Stop(ctx context.Context) error {
	a.logger.Debugf(ctx, "stopping adapter %s", a.name)

	if c, ok := a.driver.(driverCloser); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("failed to close native driver of %s: %w", a.name, err)
		}
	}

	return nil
}

// Info returns service information.
func (a *Adapter) Info() bootstrap.Info {
	return bootstrap.Info{
		Name:          a.name,
		RestartPolicy: a.restartPolicy,
	}
}
