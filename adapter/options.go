package adapter

import (
	"context"

	"github.com/cenkalti/backoff/v5"
	"github.com/n-r-w/db2itx"
)

// Option option for Adapter.
type Option func(*Adapter)

// WithName sets service name.
func WithName(name string) Option {
	return func(a *Adapter) {
		a.name = name
	}
}

// WithConnString sets the connection string passed to the native driver on every open.
func WithConnString(connStr string) Option {
	return func(a *Adapter) {
		a.connStr = connStr
	}
}

// WithRestartPolicy sets service restart policy on error.
// Only works when using https://github.com/n-r-w/bootstrap
func WithRestartPolicy(policy ...backoff.RetryOption) Option {
	return func(a *Adapter) {
		a.restartPolicy = policy
	}
}

// WithAfterStartFunc sets a function that will be called after successful service start.
func WithAfterStartFunc(f func(context.Context, *Adapter) error) Option {
	return func(a *Adapter) {
		a.afterStartFunc = f
	}
}

// WithLogger sets the logger.
func WithLogger(logger db2itx.ILogger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}
